package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apperrors "studytimer/internal/platform/errors"
)

var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var recent int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show study totals and recent completions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.StatsCLI.Summary(context.Background(), recent)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "total: %d min\n", out.CumulativeMinutes)
			_, _ = fmt.Fprintf(w, "week:  %d min\n", out.WeeklyMinutes)
			for _, d := range weekOrder {
				_, _ = fmt.Fprintf(w, "  %s %d min\n", d.String()[:3], out.DailyMinutes[d])
			}
			if !out.WeeklyLastSaved.IsZero() {
				_, _ = fmt.Fprintf(w, "last save: %s\n", out.WeeklyLastSaved.Local().Format(time.RFC3339))
			}
			for _, c := range out.Recent {
				_, _ = fmt.Fprintf(w, "%s\t%d min\t%s\n", c.CompletedAt.Local().Format("2006-01-02 15:04"), c.StudyMinutes, c.ID)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&recent, "recent", 10, "number of recent completions")
	return cmd
}

func newGradeCmd(opts *rootOptions) *cobra.Command {
	grade := &cobra.Command{Use: "grade", Short: "Grade log"}

	grade.AddCommand(&cobra.Command{
		Use:   "add <value>",
		Short: "Record a grade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", apperrors.ErrInvalidInput, args[0])
			}
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.GradeCLI.Add(context.Background(), value)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved grade #%d: %s\n", out.Index+1, strconv.FormatFloat(out.Value, 'f', -1, 64))
			return nil
		},
	})

	grade.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List grades in the order they were recorded",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			entries, err := app.GradeCLI.List(context.Background())
			if err != nil {
				return err
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s : %s\n", e.Date.Local().Format("2006-01-02 15:04"), strconv.FormatFloat(e.Value, 'f', -1, 64))
			}
			return nil
		},
	})

	var width, height int
	chart := &cobra.Command{
		Use:   "chart",
		Short: "Draw grades as a line chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.GradeCLI.Chart(context.Background(), width, height)
			if err != nil {
				return err
			}
			if out.Count == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no grades yet")
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out.Lines, "\n"))
			return nil
		},
	}
	chart.Flags().IntVar(&width, "width", 60, "chart width in cells")
	chart.Flags().IntVar(&height, "height", 12, "chart height in rows")
	grade.AddCommand(chart)
	return grade
}

func newPresetCmd(opts *rootOptions) *cobra.Command {
	preset := &cobra.Command{Use: "preset", Short: "Saved study/break presets (at most 5)"}

	preset.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			items, err := app.PresetCLI.List(context.Background())
			if err != nil {
				return err
			}
			for _, p := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\tstudy %d min + break %d min\t(%s)\n", p.Index+1, p.Name, p.StudyMinutes, p.BreakMinutes, p.Slug)
			}
			return nil
		},
	})

	var overwrite int
	save := &cobra.Command{
		Use:   "save <name> <study> <break>",
		Short: "Save a preset, or overwrite one with --overwrite",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			study, err1 := strconv.Atoi(args[1])
			brk, err2 := strconv.Atoi(args[2])
			if err := errors.Join(err1, err2); err != nil {
				return fmt.Errorf("%w: durations must be whole minutes", apperrors.ErrInvalidInput)
			}
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.PresetCLI.Save(context.Background(), args[0], study, brk, overwrite)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved preset %d: %s\n", out.Index+1, out.Name)
			return nil
		},
	}
	save.Flags().IntVar(&overwrite, "overwrite", 0, "position to overwrite (1-based)")
	preset.AddCommand(save)

	preset.AddCommand(&cobra.Command{
		Use:   "delete <position>",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: position must be a number", apperrors.ErrInvalidInput)
			}
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.PresetCLI.Delete(context.Background(), pos)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted preset %s\n", out.Name)
			return nil
		},
	})

	preset.AddCommand(&cobra.Command{
		Use:   "export <path>",
		Short: "Write presets to a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.PresetCLI.Export(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d presets to %s\n", out.Count, out.Path)
			return nil
		},
	})

	preset.AddCommand(&cobra.Command{
		Use:   "import <path>",
		Short: "Append presets from a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.PresetCLI.Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d presets, skipped %d\n", out.Imported, out.Skipped)
			return nil
		},
	})
	return preset
}

func newSessionCmd(opts *rootOptions) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Paused countdown saved on exit"}

	session.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the paused countdown without consuming it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.TimerCLI.ShowSession(context.Background())
			if errors.Is(err, apperrors.ErrNoSession) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no paused session")
				return nil
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s left (study %d min, break %d min)\n", out.Phase, out.Display, out.StudyMinutes, out.BreakMinutes)
			return nil
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Discard the paused countdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.TimerCLI.ClearSession(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "paused session cleared")
			return nil
		},
	})
	return session
}
