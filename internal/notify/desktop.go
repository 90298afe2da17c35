package notify

import (
	"context"
	"fmt"
	"os/exec"
)

// NotifySendNotifier shows desktop notifications through notify-send.
type NotifySendNotifier struct{}

// NewDesktopNotifier creates the notify-send based notifier.
func NewDesktopNotifier() *NotifySendNotifier {
	return &NotifySendNotifier{}
}

// Notify shows a desktop notification. A machine without notify-send just
// skips it silently.
func (n *NotifySendNotifier) Notify(ctx context.Context, title, message string) error {
	if _, err := exec.LookPath("notify-send"); err != nil {
		return nil
	}

	cmd := exec.CommandContext(ctx, "notify-send", title, message)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("notify-send failed: %w: %s", err, string(output))
	}
	return nil
}
