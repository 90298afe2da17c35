package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/sentinel/internal/ports/primary"
	"github.com/example/sentinel/internal/wire"
)

// TopicCmd returns the topic management command group.
func TopicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topic",
		Short: "Manage tracked forecasting topics",
		Long:  "Add, edit, remove and list the questions the tracker follows",
	}

	cmd.AddCommand(topicAddCmd())
	cmd.AddCommand(topicEditCmd())
	cmd.AddCommand(topicRemoveCmd())
	cmd.AddCommand(topicListCmd())
	return cmd
}

func topicAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [key]",
		Short: "Add a new topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			question, _ := cmd.Flags().GetString("question")
			horizon, _ := cmd.Flags().GetString("horizon")
			indicators, _ := cmd.Flags().GetStringArray("indicator")

			topic, err := wire.TopicService().AddTopic(cmd.Context(), primary.AddTopicRequest{
				Key:        args[0],
				Title:      title,
				Question:   question,
				Horizon:    horizon,
				Indicators: indicators,
			})
			if err != nil {
				return fmt.Errorf("failed to add topic: %w", err)
			}

			fmt.Printf("✓ Added topic %s: %s\n", args[0], topic.Title)
			fmt.Printf("  Horizon: %s\n", topic.Horizon)
			fmt.Printf("  Indicators: %d\n", len(topic.KeyIndicators))
			return nil
		},
	}

	cmd.Flags().String("title", "", "Topic title (required)")
	cmd.Flags().String("question", "", "Assessment question (required)")
	cmd.Flags().String("horizon", "", "Time horizon, e.g. '3 months' (default '3 months')")
	cmd.Flags().StringArray("indicator", nil, "Key indicator to track (repeatable)")
	return cmd
}

func topicEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [key]",
		Short: "Edit an existing topic",
		Long:  "Edit a topic. Flags not supplied keep their current value; --indicator replaces the full indicator list when given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := primary.EditTopicRequest{Key: args[0]}

			if cmd.Flags().Changed("title") {
				title, _ := cmd.Flags().GetString("title")
				req.Title = &title
			}
			if cmd.Flags().Changed("question") {
				question, _ := cmd.Flags().GetString("question")
				req.Question = &question
			}
			if cmd.Flags().Changed("horizon") {
				horizon, _ := cmd.Flags().GetString("horizon")
				req.Horizon = &horizon
			}
			if cmd.Flags().Changed("indicator") {
				indicators, _ := cmd.Flags().GetStringArray("indicator")
				req.ReplaceIndicators = true
				req.Indicators = indicators
			}

			topic, err := wire.TopicService().EditTopic(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to edit topic: %w", err)
			}

			fmt.Printf("✓ Updated topic %s: %s\n", args[0], topic.Title)
			return nil
		},
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("question", "", "New question")
	cmd.Flags().String("horizon", "", "New horizon")
	cmd.Flags().StringArray("indicator", nil, "Replacement indicator (repeatable)")
	return cmd
}

func topicRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [key]",
		Short: "Remove a topic and all its assessment data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm, _ := cmd.Flags().GetString("confirm")

			err := wire.TopicService().RemoveTopic(cmd.Context(), primary.RemoveTopicRequest{
				Key:     args[0],
				Confirm: confirm,
			})
			if err != nil {
				return fmt.Errorf("failed to remove topic: %w", err)
			}

			fmt.Printf("✓ Removed topic %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().String("confirm", "", "Confirmation token; must be DELETE")
	return cmd
}

func topicListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configured topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			topics, err := wire.TopicService().ListTopics(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list topics: %w", err)
			}

			if len(topics) == 0 {
				fmt.Println("No topics configured")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tTITLE\tHORIZON\tINDICATORS\tHISTORY\tASSESSED")
			fmt.Fprintln(w, "---\t-----\t-------\t----------\t-------\t--------")
			for _, t := range topics {
				assessed := "○"
				if t.Assessed {
					assessed = "✓"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
					t.Key, t.Title, t.Horizon, t.IndicatorCount, t.HistoryCount, assessed)
			}
			w.Flush()
			fmt.Printf("\nTotal topics: %d\n", len(topics))
			return nil
		},
	}
}
