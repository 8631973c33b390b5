package reminder

import (
	"context"
	"testing"
	"time"
)

type mockNotifier struct {
	SendFunc func(ctx context.Context, to, body string) error
}

func (m *mockNotifier) ID() string { return "mock" }

func (m *mockNotifier) Send(ctx context.Context, to, body string) error {
	return m.SendFunc(ctx, to, body)
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{"08:00", 8, 0, false},
		{"23:59", 23, 59, false},
		{"00:00", 0, 0, false},
		{"2pm", 0, 0, true},
		{"25:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"-1:30", 0, 0, true},
		{"12", 0, 0, true},
		{"12:30:00", 0, 0, true},
		{"ab:cd", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, c := range cases {
		hour, minute, err := ParseClock(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", c.in, err)
			continue
		}
		if hour != c.hour || minute != c.minute {
			t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", c.in, hour, minute, c.hour, c.minute)
		}
	}
}

func TestMessageFor(t *testing.T) {
	got := MessageFor("Paracetamol")
	want := "💊 Reminder: Time to take your Paracetamol!"
	if got != want {
		t.Errorf("MessageFor = %q, want %q", got, want)
	}
}

func TestScheduler_RejectsInvalidTime(t *testing.T) {
	s := NewScheduler(&mockNotifier{}, nil, time.Second)

	if err := s.Schedule("+923001112233", "Aspirin", "2pm"); err == nil {
		t.Fatal("expected error for non HH:MM time")
	}
	if s.Jobs() != 0 {
		t.Errorf("invalid time must not register a job, got %d", s.Jobs())
	}
}

func TestScheduler_ReplacesDuplicateEntry(t *testing.T) {
	s := NewScheduler(&mockNotifier{}, nil, time.Second)

	if err := s.Schedule("+923001112233", "Aspirin", "08:00"); err != nil {
		t.Fatalf("first Schedule failed: %v", err)
	}
	if err := s.Schedule("+923001112233", "Aspirin", "08:00"); err != nil {
		t.Fatalf("second Schedule failed: %v", err)
	}

	if s.Jobs() != 1 {
		t.Errorf("re-scheduling the same reminder must replace, got %d entries", s.Jobs())
	}
}

func TestScheduler_DistinctRemindersCoexist(t *testing.T) {
	s := NewScheduler(&mockNotifier{}, nil, time.Second)

	entries := [][3]string{
		{"+923001112233", "Aspirin", "08:00"},
		{"+923001112233", "Aspirin", "20:00"},
		{"+923001112233", "Ibuprofen", "08:00"},
		{"+15551234567", "Aspirin", "08:00"},
	}
	for _, e := range entries {
		if err := s.Schedule(e[0], e[1], e[2]); err != nil {
			t.Fatalf("Schedule(%v) failed: %v", e, err)
		}
	}

	if s.Jobs() != len(entries) {
		t.Errorf("expected %d entries, got %d", len(entries), s.Jobs())
	}
}

func TestScheduler_FireDeliversReminder(t *testing.T) {
	var gotTo, gotBody string
	notifier := &mockNotifier{
		SendFunc: func(ctx context.Context, to, body string) error {
			gotTo, gotBody = to, body
			return nil
		},
	}

	s := NewScheduler(notifier, nil, time.Second)
	s.fire("+923001112233", "Paracetamol")

	if gotTo != "+923001112233" {
		t.Errorf("reminder sent to %q", gotTo)
	}
	if gotBody != MessageFor("Paracetamol") {
		t.Errorf("reminder body = %q", gotBody)
	}
}
