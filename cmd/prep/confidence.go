package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/placement-prep/internal/cli"
	"github.com/Veraticus/placement-prep/internal/common"
	"github.com/Veraticus/placement-prep/internal/history"
	"github.com/Veraticus/placement-prep/internal/model"
)

func confidenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confidence <id> <skill> <know|practice>",
		Short: "Mark a skill as known or needing practice",
		Long: `Mark one extracted skill of a saved analysis as known or as needing
practice. Each known skill adds 2 to the readiness score, each skill that
still needs practice takes 2 away.`,
		Example: `  prep confidence 1718000000000-a1b2c3d React know`,
		Args:    cobra.ExactArgs(3),
		RunE:    runConfidence,
	}
}

func runConfidence(cmd *cobra.Command, args []string) error {
	id, skill := args[0], args[1]
	level, err := model.ParseConfidence(args[2])
	if err != nil {
		return common.NewUserError(err.Error(), err)
	}

	ctx := cmd.Context()
	return withHistory(ctx, func(store *history.Store) error {
		rec, err := store.SetConfidence(ctx, id, skill, level)
		switch {
		case errors.Is(err, history.ErrRecordNotFound):
			return common.NewUserError(fmt.Sprintf("No saved analysis with id %s.", id), err)
		case errors.Is(err, history.ErrUnknownSkill):
			return common.NewUserError(fmt.Sprintf("%s is not one of the skills extracted for %s.", skill, id), err)
		case err != nil:
			return fmt.Errorf("failed to update confidence: %w", err)
		}

		outln(cmd, cli.FormatSuccess(fmt.Sprintf("%s marked as %s.", skill, level)))
		outf(cmd, "Readiness: %s\n", cli.FormatScore(rec.FinalScore))
		return nil
	})
}
