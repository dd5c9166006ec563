package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/placement-prep/internal/cli"
	"github.com/Veraticus/placement-prep/internal/common"
	"github.com/Veraticus/placement-prep/internal/progress"
)

func checklistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Track the manual test checklist",
		Long: `Track the manual test checklist that must pass before shipping.

Each test has a fixed id; mark it passed once you have checked it by hand.`,
	}

	cmd.AddCommand(checklistListCmd())
	cmd.AddCommand(checklistSetCmd())
	cmd.AddCommand(checklistResetCmd())

	return cmd
}

func checklistListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every test and whether it passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return withTracker(ctx, func(tracker *progress.Tracker) error {
				status, err := tracker.TestStatus(ctx)
				if err != nil {
					return err
				}

				passed := 0
				for _, item := range progress.Tests {
					mark := cli.SubtleStyle.Render("[ ]")
					if status[item.ID] {
						mark = cli.SuccessStyle.Render("[" + cli.SuccessIcon + "]")
						passed++
					}
					outf(cmd, "%s %-20s %s\n", mark, item.ID, item.Label)
					outf(cmd, "    %s\n", cli.SubtleStyle.Render(item.Hint))
				}

				outln(cmd)
				outf(cmd, "Tests passed: %d / %d\n", passed, len(progress.Tests))
				if passed < len(progress.Tests) {
					outln(cmd, cli.FormatWarning("Fix issues before shipping."))
				}
				return nil
			})
		},
	}
}

func checklistSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <test-id>",
		Short: "Mark a test as passed (or failed with --failed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed, _ := cmd.Flags().GetBool("failed")
			ctx := cmd.Context()
			return withTracker(ctx, func(tracker *progress.Tracker) error {
				err := tracker.SetTest(ctx, args[0], !failed)
				if errors.Is(err, progress.ErrUnknownItem) {
					return common.NewUserError(fmt.Sprintf("Unknown test %q. Run `prep checklist list` to see ids.", args[0]), err)
				}
				if err != nil {
					return err
				}
				state := "passed"
				if failed {
					state = "not passed"
				}
				outln(cmd, cli.FormatSuccess(fmt.Sprintf("%s marked %s.", args[0], state)))
				return nil
			})
		},
	}
	cmd.Flags().Bool("failed", false, "mark the test as not passed")
	return cmd
}

func checklistResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear every test result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return withTracker(ctx, func(tracker *progress.Tracker) error {
				if err := tracker.ResetTests(ctx); err != nil {
					return err
				}
				outln(cmd, cli.FormatSuccess("Checklist reset."))
				return nil
			})
		},
	}
}
