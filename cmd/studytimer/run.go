package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"studytimer/internal/bootstrap"
	timerdomain "studytimer/internal/modules/timer/domain"
	timerdto "studytimer/internal/modules/timer/dto"
	apperrors "studytimer/internal/platform/errors"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var study, brk int
	var preset string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a countdown without the UI (resumes a paused session first)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !cmd.Flags().Changed("study") {
				study = app.Config.Timer.StudyMinutes
			}
			if !cmd.Flags().Changed("break") {
				brk = app.Config.Timer.BreakMinutes
			}
			if preset != "" {
				p, err := app.PresetCLI.Get(ctx, preset)
				if err != nil {
					return err
				}
				study, brk = p.StudyMinutes, p.BreakMinutes
			}
			return runCountdown(ctx, app, cmd.OutOrStdout(), study, brk, time.Second)
		},
	}
	cmd.Flags().IntVar(&study, "study", 0, "study minutes (default from config)")
	cmd.Flags().IntVar(&brk, "break", 0, "break minutes (default from config)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset position or name")
	return cmd
}

// runCountdown drives the timer from one select loop until the cycle ends or
// ctx is cancelled, in which case the countdown is snapshotted. Store calls
// run detached from ctx so an interrupt never aborts a write.
func runCountdown(ctx context.Context, app *bootstrap.App, w io.Writer, study, brk int, every time.Duration) error {
	store := context.WithoutCancel(ctx)
	restored, err := app.TimerCLI.Restore(store)
	if err != nil {
		return err
	}
	var status timerdto.StatusOutput
	if restored.Restored {
		status, err = app.TimerCLI.ResumeRestored(store, restored.Status)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "resumed %s with %s left\n", status.Phase, status.Display)
	} else {
		status, err = app.TimerCLI.Start(store, study, brk)
		if err != nil {
			return err
		}
		if !status.Active {
			return fmt.Errorf("%w: study and break minutes must be between 1 and %d", apperrors.ErrInvalidInput, timerdomain.MaxMinutes)
		}
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", status.Phase, status.Display)

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			snap, err := app.TimerCLI.Snapshot(store)
			if err != nil {
				return err
			}
			if snap.Saved {
				_, _ = fmt.Fprintf(w, "paused at %s %s; run again to resume\n", status.Phase, status.Display)
			}
			return nil
		case <-ticker.C:
			out, err := app.TimerCLI.Tick(store)
			if err != nil {
				app.Logger.Warn("tick", "error", err)
			}
			status = out.Status
			if out.Completed {
				_, _ = fmt.Fprintln(w, completionLine(out))
			}
			if !status.Active {
				_, _ = fmt.Fprintln(w, "done")
				return nil
			}
			_, _ = fmt.Fprintf(w, "%s %s\n", status.Phase, status.Display)
		}
	}
}

func completionLine(out timerdto.TickOutput) string {
	if out.FinishedPhase == "study" {
		return fmt.Sprintf("study finished (+%d min)", out.RecordedMinutes)
	}
	return "break finished"
}
