package notify

// stubNotifier drops every notification.
type stubNotifier struct{}

func (*stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }
func (*stubNotifier) Close(uint32) error                  { return nil }
