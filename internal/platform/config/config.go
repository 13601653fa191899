package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	apperrors "studytimer/internal/platform/errors"
)

const (
	envPrefix      = "STUDYTIMER"
	configName     = "config"
	configType     = "yaml"
	defaultDirName = "studytimer"
)

type Config struct {
	DataDir   string
	StorePath string
	DBPath    string
	Journal   JournalConfig
	Timer     TimerConfig
	Alarm     AlarmConfig
	Log       LogConfig
}

type JournalConfig struct {
	Enabled bool
	Dir     string
}

// TimerConfig holds the durations prefilled on the entry screen.
type TimerConfig struct {
	StudyMinutes int
	BreakMinutes int
}

type AlarmConfig struct {
	Bell    bool
	Command []string
}

type LogConfig struct {
	Level string
	File  string
}

// New resolves configuration from defaults, the optional config.yaml in the
// data directory (or configFile when set) and STUDYTIMER_* env variables.
func New(dataDir, configFile string) (Config, error) {
	return Load(viper.New(), dataDir, configFile)
}

func Load(v *viper.Viper, dataDir, configFile string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	if strings.TrimSpace(dataDir) == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return Config{}, err
		}
		dataDir = dir
	}

	v.SetDefault("store.path", "studytimer.db")
	v.SetDefault("history.path", "history.db")
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.dir", "journal")
	v.SetDefault("timer.study_minutes", 25)
	v.SetDefault("timer.break_minutes", 5)
	v.SetDefault("alarm.bell", true)
	v.SetDefault("alarm.command", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "studytimer.log")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType(configType)
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(dataDir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		DataDir:   dataDir,
		StorePath: resolve(dataDir, v.GetString("store.path")),
		DBPath:    resolve(dataDir, v.GetString("history.path")),
		Journal: JournalConfig{
			Enabled: v.GetBool("journal.enabled"),
			Dir:     resolve(dataDir, v.GetString("journal.dir")),
		},
		Timer: TimerConfig{
			StudyMinutes: v.GetInt("timer.study_minutes"),
			BreakMinutes: v.GetInt("timer.break_minutes"),
		},
		Alarm: AlarmConfig{
			Bell:    v.GetBool("alarm.bell"),
			Command: v.GetStringSlice("alarm.command"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  resolve(dataDir, v.GetString("log.file")),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Timer.StudyMinutes <= 0 || c.Timer.BreakMinutes <= 0 {
		return fmt.Errorf("%w: timer minutes must be positive", apperrors.ErrInvalidInput)
	}
	if c.StorePath == "" {
		return fmt.Errorf("%w: store path is empty", apperrors.ErrInvalidInput)
	}
	return nil
}

func defaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, defaultDirName), nil
}

func resolve(dataDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dataDir, path)
}
