package notify

import "github.com/gen2brain/beeep"

// DesktopNotifier delivers notifications through the operating system's
// notification service.
type DesktopNotifier struct{}

// NewDesktop creates the platform notifier.
func NewDesktop() *DesktopNotifier {
	beeep.AppName = "Accountable"
	return &DesktopNotifier{}
}

// Send shows one desktop notification.
func (d *DesktopNotifier) Send(title, body string) error {
	return beeep.Notify(title, body, "")
}
