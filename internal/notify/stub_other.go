//go:build !linux

package notify

// New returns a notifier that does nothing; notifications need D-Bus.
func New() (Notifier, error) {
	return &stubNotifier{}, nil
}
