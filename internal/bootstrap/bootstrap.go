package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	gradeinadapter "studytimer/internal/modules/grade/adapter/in"
	gradeoutadapter "studytimer/internal/modules/grade/adapter/out"
	gradeservice "studytimer/internal/modules/grade/service"
	gradeusecase "studytimer/internal/modules/grade/usecase"
	presetinadapter "studytimer/internal/modules/preset/adapter/in"
	presetoutadapter "studytimer/internal/modules/preset/adapter/out"
	presetservice "studytimer/internal/modules/preset/service"
	presetusecase "studytimer/internal/modules/preset/usecase"
	statsinadapter "studytimer/internal/modules/stats/adapter/in"
	statsoutadapter "studytimer/internal/modules/stats/adapter/out"
	statsout "studytimer/internal/modules/stats/port/out"
	statsservice "studytimer/internal/modules/stats/service"
	statsusecase "studytimer/internal/modules/stats/usecase"
	timerinadapter "studytimer/internal/modules/timer/adapter/in"
	timeroutadapter "studytimer/internal/modules/timer/adapter/out"
	timerservice "studytimer/internal/modules/timer/service"
	timerusecase "studytimer/internal/modules/timer/usecase"
	"studytimer/internal/platform/clock"
	"studytimer/internal/platform/config"
	"studytimer/internal/platform/id"
	"studytimer/internal/platform/kv"
	"studytimer/internal/platform/logging"
	uiapp "studytimer/internal/ui/app"
)

type App struct {
	Config    config.Config
	Logger    *slog.Logger
	TimerCLI  timerinadapter.CLIHandler
	StatsCLI  statsinadapter.CLIHandler
	GradeCLI  gradeinadapter.CLIHandler
	PresetCLI presetinadapter.CLIHandler

	closers []io.Closer
}

// New opens the stores under cfg and wires every module. bell receives the
// terminal bell when alarm.bell is enabled.
func New(cfg config.Config, logger *slog.Logger, bell io.Writer) (*App, error) {
	logger = logging.OrDefault(logger)
	clk := clock.SystemClock{}
	ids := id.UUID{}

	store, err := kv.OpenBolt(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	app := &App{Config: cfg, Logger: logger, closers: []io.Closer{store}}

	projector, err := statsoutadapter.NewSQLiteCompletionProjector(cfg.DBPath)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new completion projector: %w", err)
	}
	app.closers = append(app.closers, projector)

	var journal statsout.Journal
	if cfg.Journal.Enabled {
		journal = statsoutadapter.NewVaultJournal(cfg.Journal.Dir)
	}
	statsUC := statsusecase.NewInteractor(
		statsservice.NewStatsService(clk, ids, statsoutadapter.NewKVAggregateStore(store)),
		projector,
		journal,
		logger,
	)

	timerUC := timerusecase.NewInteractor(
		timerservice.NewPersistenceService(timeroutadapter.NewKVSessionStore(store), logger),
		statsUC,
		newAlarm(cfg.Alarm, bell, logger),
		logger,
	)

	gradeUC := gradeusecase.NewInteractor(gradeservice.NewGradeService(clk, gradeoutadapter.NewKVGradeStore(store)), logger)
	presetUC := presetusecase.NewInteractor(
		presetservice.NewPresetService(presetoutadapter.NewKVPresetStore(store)),
		presetoutadapter.NewTOMLPresetFile(),
		logger,
	)

	app.TimerCLI = timerinadapter.NewCLIHandler(timerUC)
	app.StatsCLI = statsinadapter.NewCLIHandler(statsUC)
	app.GradeCLI = gradeinadapter.NewCLIHandler(gradeUC)
	app.PresetCLI = presetinadapter.NewCLIHandler(presetUC)
	return app, nil
}

// Close releases the stores in reverse opening order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func newAlarm(cfg config.AlarmConfig, bell io.Writer, logger *slog.Logger) timeroutadapter.MultiAlarm {
	var alarms timeroutadapter.MultiAlarm
	if cfg.Bell && bell != nil {
		alarms = append(alarms, timeroutadapter.NewBellAlarm(bell))
	}
	if len(cfg.Command) > 0 {
		alarms = append(alarms, timeroutadapter.NewCommandAlarm(cfg.Command, logger))
	}
	return alarms
}

// OpenTUILog routes logging to cfg.Log.File so records never reach the
// alternate screen.
func OpenTUILog(cfg config.Config) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	f, err := tea.LogToFile(cfg.Log.File, "studytimer")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.New(f, cfg.Log.Level), f, nil
}

// RunTUI runs the full-screen UI. A running countdown is snapshotted when the
// program exits, whichever way it exits.
func RunTUI(app *App) error {
	model := uiapp.NewModel(app.TimerCLI, app.PresetCLI, app.GradeCLI, app.StatsCLI, uiapp.Options{
		StudyMinutes: app.Config.Timer.StudyMinutes,
		BreakMinutes: app.Config.Timer.BreakMinutes,
		Logger:       app.Logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := program.Run()
	if _, err := app.TimerCLI.Snapshot(context.Background()); err != nil {
		app.Logger.Error("snapshot after exit", "error", err)
	}
	return runErr
}
