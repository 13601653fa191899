package out

import (
	"io"
	"log/slog"
	"os/exec"

	timerout "studytimer/internal/modules/timer/port/out"
	"studytimer/internal/platform/logging"
)

// BellAlarm rings the terminal bell.
type BellAlarm struct {
	w io.Writer
}

func NewBellAlarm(w io.Writer) timerout.Alarm {
	return &BellAlarm{w: w}
}

func (a *BellAlarm) Play() {
	_, _ = io.WriteString(a.w, "\a")
}

// CommandAlarm starts an external player and does not wait for it.
type CommandAlarm struct {
	argv   []string
	logger *slog.Logger
}

func NewCommandAlarm(argv []string, logger *slog.Logger) timerout.Alarm {
	return &CommandAlarm{argv: append([]string(nil), argv...), logger: logging.OrDefault(logger)}
}

func (a *CommandAlarm) Play() {
	if len(a.argv) == 0 {
		return
	}
	cmd := exec.Command(a.argv[0], a.argv[1:]...)
	if err := cmd.Start(); err != nil {
		a.logger.Debug("alarm command failed", "command", a.argv[0], "error", err)
		return
	}
	go func() {
		_ = cmd.Wait()
	}()
}

// MultiAlarm plays every alarm in order.
type MultiAlarm []timerout.Alarm

func (m MultiAlarm) Play() {
	for _, alarm := range m {
		if alarm != nil {
			alarm.Play()
		}
	}
}
