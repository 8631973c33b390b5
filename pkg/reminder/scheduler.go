package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"neuronest/pkg/monitor"
	"neuronest/pkg/notify"

	"github.com/robfig/cron/v3"
)

// MessageFor formats the reminder text sent to the patient.
func MessageFor(medicine string) string {
	return fmt.Sprintf("💊 Reminder: Time to take your %s!", medicine)
}

// ParseClock validates a 24-hour "HH:MM" string and returns its parts.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("time must be in HH:MM (24-hour) format")
	}
	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time must be in HH:MM (24-hour) format")
	}
	return hour, minute, nil
}

// Scheduler registers daily medicine reminders as in-process cron entries.
// Entries are not persisted: a restart loses every scheduled reminder.
type Scheduler struct {
	cron     *cron.Cron
	notifier notify.Notifier
	monitor  monitor.Monitor
	timeout  time.Duration
	jobs     map[string]cron.EntryID
	mu       sync.Mutex
}

// NewScheduler builds a scheduler that delivers through the given notifier.
// The monitor is optional.
func NewScheduler(notifier notify.Notifier, mon monitor.Monitor, sendTimeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		notifier: notifier,
		monitor:  mon,
		timeout:  sendTimeout,
		jobs:     make(map[string]cron.EntryID),
	}
}

// Start activates the cron loop.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the cron loop and waits for a running callback to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Schedule registers a daily reminder at timeStr (HH:MM, 24-hour) for the
// given phone and medicine. Scheduling the same phone/medicine/time again
// replaces the previous entry instead of stacking a duplicate.
func (s *Scheduler) Schedule(phone, medicine, timeStr string) error {
	hour, minute, err := ParseClock(timeStr)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("whatsapp-%s-%s-%s", phone, medicine, timeStr)
	spec := fmt.Sprintf("%d %d * * *", minute, hour)

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.jobs[key]; ok {
		s.cron.Remove(old)
	}

	id, err := s.cron.AddFunc(spec, func() {
		s.fire(phone, medicine)
	})
	if err != nil {
		return fmt.Errorf("failed to register reminder: %w", err)
	}

	s.jobs[key] = id
	slog.Info("Reminder scheduled", "phone", phone, "medicine", medicine, "time", timeStr)
	return nil
}

// Jobs reports the number of live reminder entries.
func (s *Scheduler) Jobs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// fire sends one reminder. A provider failure is logged and the entry stays
// alive for the next day's firing.
func (s *Scheduler) fire(phone, medicine string) {
	body := MessageFor(medicine)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.notifier.Send(ctx, phone, body); err != nil {
		slog.Error("Failed to send reminder", "phone", phone, "medicine", medicine, "error", err)
		return
	}

	if s.monitor != nil {
		s.monitor.OnMessage(monitor.MonitorMessage{
			Timestamp:   time.Now(),
			MessageType: monitor.TypeAlert,
			Agent:       s.notifier.ID(),
			Session:     phone,
			Content:     body,
		})
	}
}
