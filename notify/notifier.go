// Package notify abstracts the OS desktop notification surface.
package notify

import "github.com/gen2brain/beeep"

// Notifier sends a desktop notification with a title and body
type Notifier interface {
	Send(title, body string) error
}

type beeepNotifier struct{}

func (beeepNotifier) Send(title, body string) error {
	// Empty icon path; platforms render their default notification icon.
	return beeep.Notify(title, body, "")
}

// New creates the platform desktop notifier
func New() Notifier {
	return beeepNotifier{}
}
