//go:build linux

package notify

import (
	"os"
	"testing"
	"time"
)

// sessionNotifier returns a notifier on the live session bus, skipping when
// there is none.
func sessionNotifier(t *testing.T) Notifier {
	t.Helper()
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}
	n, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, ok := n.(*dbusNotifier); !ok {
		t.Skip("session bus unreachable")
	}
	return n
}

// idLog passes notifications through and keeps what the daemon answered.
type idLog struct {
	Notifier
	sent   []Notification
	ids    []uint32
	closed []uint32
}

func (l *idLog) Notify(n Notification) (uint32, error) {
	id, err := l.Notifier.Notify(n)
	if err == nil {
		l.sent = append(l.sent, n)
		l.ids = append(l.ids, id)
	}
	return id, err
}

func (l *idLog) Close(id uint32) error {
	l.closed = append(l.closed, id)
	return l.Notifier.Close(id)
}

func TestAnnouncer_DaemonKeepsOneNotification(t *testing.T) {
	log := &idLog{Notifier: sessionNotifier(t)}
	a := NewAnnouncer(log, nil)

	a.Announce("Vivid test", "/tmp/first.flac", time.Minute)
	a.Announce("Vivid test", "/tmp/second.flac", 2*time.Minute)
	a.Dismiss()

	if len(log.ids) != 2 {
		t.Skipf("no notification daemon answered (%d of 2 sent)", len(log.ids))
	}
	if log.ids[0] == 0 {
		t.Fatal("daemon returned id 0 for a new notification")
	}
	if log.sent[1].ReplacesID != log.ids[0] {
		t.Errorf("second announcement replaces %d, want %d", log.sent[1].ReplacesID, log.ids[0])
	}
	if log.ids[1] != log.ids[0] {
		t.Errorf("replacement got id %d, want %d", log.ids[1], log.ids[0])
	}
	if len(log.closed) != 1 || log.closed[0] != log.ids[1] {
		t.Errorf("Dismiss closed %v, want [%d]", log.closed, log.ids[1])
	}
}

func TestAnnouncer_AfterDismissStartsNew(t *testing.T) {
	log := &idLog{Notifier: sessionNotifier(t)}
	a := NewAnnouncer(log, nil)

	a.Announce("Vivid test", "", time.Second)
	a.Dismiss()
	a.Announce("Vivid test", "", time.Second)
	defer a.Dismiss()

	if len(log.sent) != 2 {
		t.Skipf("no notification daemon answered (%d of 2 sent)", len(log.sent))
	}
	if log.sent[1].ReplacesID != 0 {
		t.Errorf("announcement after Dismiss replaces %d, want 0", log.sent[1].ReplacesID)
	}
}
