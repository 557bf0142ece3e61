// Package notify shows desktop notifications over D-Bus.
package notify

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/llehouerou/vivid/internal/mpris"
)

// Urgency is the freedesktop notification priority.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // summary, required
	Body       string  // basic markup allowed
	Icon       string  // image path or icon name
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify returns the notification ID, or 0 when notifications are
	// unavailable.
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// nowPlayingTimeout keeps the announcement up for a few seconds.
const nowPlayingTimeout = 4000

// Announcer keeps a single "now playing" notification, replacing the
// previous one on every track change. It is safe for concurrent use.
type Announcer struct {
	n      Notifier
	logger *slog.Logger

	mu   sync.Mutex
	last uint32
}

// NewAnnouncer wraps n. A nil logger falls back to slog.Default().
func NewAnnouncer(n Notifier, logger *slog.Logger) *Announcer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Announcer{n: n, logger: logger}
}

// Announce shows title with the file name and length of the track at path.
// Failures are logged; a notification daemon going away is not fatal.
func (a *Announcer) Announce(title, path string, length time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	body := formatLength(length)
	if path != "" {
		body = filepath.Base(path) + " · " + body
	}
	n := Notification{
		Title:      title,
		Body:       body,
		Timeout:    nowPlayingTimeout,
		ReplacesID: a.last,
		Urgency:    UrgencyLow,
	}
	if path != "" {
		n.Icon = mpris.FindCover(path)
	}

	id, err := a.n.Notify(n)
	if err != nil {
		a.logger.Warn("notification failed", "error", err)
		a.last = 0
		return
	}
	a.last = id
}

// Dismiss closes the current announcement, if any.
func (a *Announcer) Dismiss() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.last == 0 {
		return
	}
	if err := a.n.Close(a.last); err != nil {
		a.logger.Debug("close notification", "error", err)
	}
	a.last = 0
}

func formatLength(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
