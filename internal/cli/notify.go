package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/sentinel/internal/notify"
	"github.com/example/sentinel/internal/wire"
)

// NotifyCmd returns the notify command.
func NotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send a reminder for overdue and due-soon assessments",
		Long: `Send a reminder for overdue and due-soon assessments.

By default a desktop notification is shown. With --email, the reminder is
delivered through the first configured email provider (Brevo, SendGrid,
Mailjet, Resend, then plain SMTP; credentials come from the environment).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := wire.StatusService().GetStatus(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to compute status: %w", err)
			}

			if !report.NeedsAttention() {
				fmt.Println("✅ All assessments are up to date, nothing to send")
				return nil
			}

			useEmail, _ := cmd.Flags().GetBool("email")
			if !useEmail {
				notifier := wire.DesktopNotifier()
				if err := notifier.Notify(cmd.Context(), "Assessment Tracker", notify.ReminderMessage(report)); err != nil {
					return fmt.Errorf("failed to send notification: %w", err)
				}
				fmt.Println("✓ Desktop notification sent (if supported)")
				return nil
			}

			body, err := notify.ReminderBody(report)
			if err != nil {
				return err
			}

			recipients := wire.Config().Email.Recipients
			dispatcher := wire.EmailDispatcher()
			if err := dispatcher.Send(cmd.Context(), notify.ReminderSubject(report), body, recipients); err != nil {
				return fmt.Errorf("failed to send email: %w", err)
			}

			fmt.Printf("✓ Email reminder sent to %d recipient(s)\n", len(recipients))
			return nil
		},
	}

	cmd.Flags().Bool("email", false, "Send the reminder by email instead of desktop notification")
	return cmd
}
