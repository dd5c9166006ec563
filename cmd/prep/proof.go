package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/placement-prep/internal/cli"
	"github.com/Veraticus/placement-prep/internal/common"
	"github.com/Veraticus/placement-prep/internal/progress"
)

func proofCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proof",
		Short: "Track build steps, proof links and ship status",
	}

	cmd.AddCommand(proofShowCmd())
	cmd.AddCommand(proofSetCmd())
	cmd.AddCommand(proofStepCmd())

	return cmd
}

func proofShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show ship status and, once shipped, the final submission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return withTracker(ctx, func(tracker *progress.Tracker) error {
				steps, err := tracker.StepStatus(ctx)
				if err != nil {
					return err
				}
				status, err := tracker.Status(ctx)
				if err != nil {
					return err
				}

				outln(cmd, cli.HeadingStyle.Render("Build steps"))
				for _, item := range progress.Steps {
					mark := cli.SubtleStyle.Render("[ ]")
					if steps[item.ID] {
						mark = cli.SuccessStyle.Render("[" + cli.SuccessIcon + "]")
					}
					outf(cmd, "%s %-14s %s\n", mark, item.ID, item.Label)
				}

				outln(cmd)
				outln(cmd, cli.HeadingStyle.Render("Proof links"))
				outf(cmd, "lovable     %s\n", linkOrDash(status.Links.Lovable))
				outf(cmd, "github      %s\n", linkOrDash(status.Links.GitHub))
				outf(cmd, "deployment  %s\n", linkOrDash(status.Links.Deployment))

				outln(cmd)
				outf(cmd, "Tests passed: %d / %d   Steps done: %d / %d\n",
					status.TestsPassed, status.TestsTotal, status.StepsDone, status.StepsTotal)

				if !status.Shipped() {
					outln(cmd, cli.FormatInfo("Status: In Progress"))
					return nil
				}

				outln(cmd, cli.FormatSuccess("Status: Shipped"))
				text, err := progress.SubmissionText(status.Links)
				if err != nil {
					return err
				}
				outln(cmd)
				outf(cmd, "%s", text)
				return nil
			})
		},
	}
}

func linkOrDash(s string) string {
	if s == "" {
		return cli.SubtleStyle.Render("-")
	}
	return s
}

func proofSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <lovable|github|deployment> <url>",
		Short: "Save a proof link (an empty url clears it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withTracker(ctx, func(tracker *progress.Tracker) error {
				_, err := tracker.SetLink(ctx, args[0], args[1])
				switch {
				case errors.Is(err, progress.ErrUnknownItem):
					return common.NewUserError(fmt.Sprintf("Unknown link %q. Use one of: %s.", args[0], strings.Join(progress.LinkFields, ", ")), err)
				case errors.Is(err, progress.ErrInvalidLink):
					return common.NewUserError("Invalid URL. Must start with http:// or https://", err)
				case err != nil:
					return err
				}
				outln(cmd, cli.FormatSuccess(args[0]+" link saved."))
				return nil
			})
		},
	}
}

func proofStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step <step-id>",
		Short: "Mark a build step as done (or not, with --undo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			undo, _ := cmd.Flags().GetBool("undo")
			ctx := cmd.Context()
			return withTracker(ctx, func(tracker *progress.Tracker) error {
				err := tracker.SetStep(ctx, args[0], !undo)
				if errors.Is(err, progress.ErrUnknownItem) {
					return common.NewUserError(fmt.Sprintf("Unknown step %q. Run `prep proof show` to see ids.", args[0]), err)
				}
				if err != nil {
					return err
				}
				outln(cmd, cli.FormatSuccess("Step "+args[0]+" updated."))
				return nil
			})
		},
	}
	cmd.Flags().Bool("undo", false, "mark the step as not done")
	return cmd
}
