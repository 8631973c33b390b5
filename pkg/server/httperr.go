package server

import (
	"net/http"
	"strings"

	"neuronest/pkg/api"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializes v with the proper content type. Encoding failures
// are swallowed; headers are already gone by then.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	w.Write(data)
}

// writeDetail emits the uniform error body {"detail": "..."}.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, api.ErrorResponse{Detail: detail})
}

// decodeBody parses the request body into dst, answering 400 itself on
// malformed JSON. Returns false when the caller should bail out.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// missingDetail formats the validation detail for absent fields.
func missingDetail(fields []string) string {
	return "Missing required field(s): " + strings.Join(fields, ", ")
}
