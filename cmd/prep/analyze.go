package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/placement-prep/internal/analyzer"
	"github.com/Veraticus/placement-prep/internal/cli"
	"github.com/Veraticus/placement-prep/internal/common"
	"github.com/Veraticus/placement-prep/internal/history"
	"github.com/Veraticus/placement-prep/internal/model"
)

// batchExtensions are the files picked up by analyze --batch.
var batchExtensions = map[string]bool{".txt": true, ".md": true}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a job description",
		Long: `Analyze a pasted job description and save the result to history.

The JD comes from --jd, from --jd-file (use - for stdin), or from every
.txt and .md file in a directory with --batch. Company and role are optional
but improve company intel and the readiness score.`,
		Example: `  prep analyze --company "Acme Corp" --role "SDE Intern" --jd-file jd.txt
  pbpaste | prep analyze --jd-file -
  prep analyze --batch ./jds`,
		RunE: runAnalyze,
	}

	cmd.Flags().String("company", "", "company name")
	cmd.Flags().String("role", "", "role title")
	cmd.Flags().String("jd", "", "job description text")
	cmd.Flags().String("jd-file", "", "read the job description from a file (- for stdin)")
	cmd.Flags().String("batch", "", "analyze every .txt/.md file in a directory")
	cmd.Flags().Bool("summary", false, "print only the summary instead of the full report")
	cmd.MarkFlagsMutuallyExclusive("jd", "jd-file", "batch")

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	company, _ := cmd.Flags().GetString("company")
	role, _ := cmd.Flags().GetString("role")
	jd, _ := cmd.Flags().GetString("jd")
	jdFile, _ := cmd.Flags().GetString("jd-file")
	batchDir, _ := cmd.Flags().GetString("batch")
	summaryOnly, _ := cmd.Flags().GetBool("summary")

	ctx := cmd.Context()

	if batchDir != "" {
		return runBatchAnalyze(ctx, cmd, batchDir, company, role)
	}

	if jdFile != "" {
		text, err := readJD(cmd, jdFile)
		if err != nil {
			return err
		}
		jd = text
	}

	in := analyzer.Input{Company: company, Role: role, JDText: jd}
	warnings, err := analyzer.ValidateInput(in)
	if err != nil {
		return common.NewUserError(inputErrorMessage(err), err)
	}
	for _, w := range warnings {
		errln(cmd, cli.FormatWarning(w))
	}

	return withHistory(ctx, func(store *history.Store) error {
		rec := analyzer.Analyze(trimInput(in))
		saved, err := store.Create(ctx, &rec)
		if err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}

		common.LogDebug("Analysis saved", common.Fields{
			"id":     saved.ID,
			"skills": len(saved.ExtractedSkills.All()),
			"score":  saved.BaseScore,
		})

		if summaryOnly {
			outln(cmd, cli.RenderSummary(saved))
		} else {
			outln(cmd, cli.RenderRecord(saved))
		}
		return nil
	})
}

func trimInput(in analyzer.Input) analyzer.Input {
	return analyzer.Input{
		Company: strings.TrimSpace(in.Company),
		Role:    strings.TrimSpace(in.Role),
		JDText:  in.JDText,
	}
}

func inputErrorMessage(err error) string {
	if errors.Is(err, analyzer.ErrEmptyJobDescription) {
		return "Please paste a job description (use --jd, --jd-file or --batch)."
	}
	return err.Error()
}

func readJD(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read job description from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", common.NewUserError(fmt.Sprintf("Could not read %s.", path), err)
	}
	return string(data), nil
}

func batchFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("Could not read directory %s.", dir), err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !batchExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func runBatchAnalyze(ctx context.Context, cmd *cobra.Command, dir, company, role string) error {
	files, err := batchFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		outln(cmd, cli.FormatInfo("No .txt or .md files found in "+dir))
		return nil
	}

	return withHistory(ctx, func(store *history.Store) error {
		bar := cli.NewBatchProgress(cmd.ErrOrStderr(), len(files))

		var saved []*model.AnalysisRecord
		var skipped []string
		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			in := analyzer.Input{Company: company, Role: role, JDText: string(data)}
			if _, err := analyzer.ValidateInput(in); err != nil {
				skipped = append(skipped, fmt.Sprintf("%s: %v", filepath.Base(file), err))
				_ = bar.Add(1)
				continue
			}

			rec := analyzer.Analyze(trimInput(in))
			created, err := store.Create(ctx, &rec)
			if err != nil {
				return fmt.Errorf("failed to save analysis of %s: %w", file, err)
			}
			saved = append(saved, created)
			_ = bar.Add(1)
		}

		common.LogInfo("Batch analysis finished", common.Fields{
			"directory": dir,
			"saved":     len(saved),
			"skipped":   len(skipped),
		})

		outln(cmd, cli.RenderHistoryTable(saved))
		for _, s := range skipped {
			errln(cmd, cli.FormatWarning("Skipped "+s))
		}
		return nil
	})
}
