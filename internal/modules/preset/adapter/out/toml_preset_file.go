package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"studytimer/internal/modules/preset/domain"
	presetout "studytimer/internal/modules/preset/port/out"
	apperrors "studytimer/internal/platform/errors"
)

const (
	presetSchemaVersion = 1
	presetFileMode      = 0o644
	presetDirMode       = 0o755
)

type presetFileSchema struct {
	SchemaVersion int                `toml:"schema_version"`
	Presets       []presetFileRecord `toml:"preset"`
}

type presetFileRecord struct {
	Name         string `toml:"name"`
	StudyMinutes int    `toml:"study_minutes"`
	BreakMinutes int    `toml:"break_minutes"`
}

func (f presetFileSchema) validateVersion() error {
	if f.SchemaVersion == 0 || f.SchemaVersion == presetSchemaVersion {
		return nil
	}
	return fmt.Errorf("%w: unsupported preset file schema_version %d", apperrors.ErrInvalidInput, f.SchemaVersion)
}

type TOMLPresetFile struct{}

func NewTOMLPresetFile() presetout.PresetFile {
	return TOMLPresetFile{}
}

func (TOMLPresetFile) Write(ctx context.Context, path string, presets []domain.Preset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file := presetFileSchema{SchemaVersion: presetSchemaVersion, Presets: make([]presetFileRecord, 0, len(presets))}
	for _, p := range presets {
		file.Presets = append(file.Presets, presetFileRecord{Name: p.Name, StudyMinutes: p.StudyMinutes, BreakMinutes: p.BreakMinutes})
	}
	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode preset file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), presetDirMode); err != nil {
		return fmt.Errorf("create preset file dir: %w", err)
	}
	if err := os.WriteFile(path, data, presetFileMode); err != nil {
		return fmt.Errorf("write preset file: %w", err)
	}
	return nil
}

func (TOMLPresetFile) Read(ctx context.Context, path string) ([]domain.Preset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: preset file %s", apperrors.ErrNotFound, path)
		}
		return nil, fmt.Errorf("read preset file: %w", err)
	}
	var file presetFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode preset file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return nil, err
	}
	presets := make([]domain.Preset, 0, len(file.Presets))
	for _, r := range file.Presets {
		presets = append(presets, domain.Preset{Name: r.Name, StudyMinutes: r.StudyMinutes, BreakMinutes: r.BreakMinutes})
	}
	return presets, nil
}
