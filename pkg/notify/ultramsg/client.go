package ultramsg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultBaseURL = "https://api.ultramsg.com"

// Client sends WhatsApp messages through the UltraMsg REST API.
// One instance ID plus token pair authenticates a single WhatsApp line.
type Client struct {
	baseURL    string
	instanceID string
	token      string
	httpClient *http.Client
}

// NewClient creates an UltraMsg client. baseURL is overridable for tests.
func NewClient(instanceID, token, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		instanceID: instanceID,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ID returns the provider identifier "ultramsg".
func (c *Client) ID() string {
	return "ultramsg"
}

// Send posts a chat message to the UltraMsg instance. The API replies
// 200 even for some failures, signalling them in the JSON body, so both
// the status code and the payload are checked.
func (c *Client) Send(ctx context.Context, to string, body string) error {
	endpoint := fmt.Sprintf("%s/%s/messages/chat", c.baseURL, c.instanceID)

	form := url.Values{}
	form.Set("token", c.token)
	form.Set("to", to)
	form.Set("body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build ultramsg request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ultramsg request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ultramsg returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var apiResp struct {
		Sent  string              `json:"sent"`
		Error jsoniter.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(respBody, &apiResp); err == nil && len(apiResp.Error) > 0 && string(apiResp.Error) != "null" {
		return fmt.Errorf("ultramsg rejected message: %s", string(apiResp.Error))
	}

	return nil
}
