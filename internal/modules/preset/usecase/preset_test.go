package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	presetout "studytimer/internal/modules/preset/adapter/out"
	presetdto "studytimer/internal/modules/preset/dto"
	presetin "studytimer/internal/modules/preset/port/in"
	"studytimer/internal/modules/preset/service"
	"studytimer/internal/modules/preset/usecase"
	apperrors "studytimer/internal/platform/errors"
	"studytimer/internal/platform/kv"
)

func newPresets(store kv.Store) presetin.Usecase {
	return usecase.NewInteractor(service.NewPresetService(presetout.NewKVPresetStore(store)), presetout.NewTOMLPresetFile(), nil)
}

func saveN(t *testing.T, uc presetin.Usecase, names ...string) {
	t.Helper()
	for i, name := range names {
		_, err := uc.Save(context.Background(), presetdto.SaveInput{Name: name, StudyMinutes: 10 * (i + 1), BreakMinutes: i + 1})
		require.NoError(t, err)
	}
}

func TestSixthPresetIsRejectedAndStoreUnchanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemory()
	uc := newPresets(store)
	saveN(t, uc, "A", "B", "C", "D", "E")

	before, _, err := store.Get(ctx, presetout.KeyPresets)
	require.NoError(t, err)

	_, err = uc.Save(ctx, presetdto.SaveInput{Name: "F", StudyMinutes: 5, BreakMinutes: 1})
	require.ErrorIs(t, err, apperrors.ErrPresetLimit)

	after, _, err := store.Get(ctx, presetout.KeyPresets)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestOverwriteDeleteAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newPresets(kv.NewMemory())
	saveN(t, uc, "Morning Focus", "Evening")

	one := 1
	saved, err := uc.Save(ctx, presetdto.SaveInput{Name: "Night Owl", StudyMinutes: 45, BreakMinutes: 15, OverwriteIndex: &one})
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Index)
	assert.Equal(t, "night-owl", saved.Slug)

	got, err := uc.Get(ctx, "morning-focus")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Index)
	assert.Equal(t, 10, got.StudyMinutes)

	got, err = uc.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Night Owl", got.Name)

	_, err = uc.Delete(ctx, 7)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	removed, err := uc.Delete(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "Morning Focus", removed.Name)
	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Night Owl", list[0].Name)
}

func TestExportImportRespectsLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out", "presets.toml")

	source := newPresets(kv.NewMemory())
	saveN(t, source, "A", "B", "C")
	exported, err := source.Export(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, exported.Count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "schema_version = 1")
	assert.Contains(t, string(data), "[[preset]]")

	target := newPresets(kv.NewMemory())
	saveN(t, target, "X", "Y", "Z")
	imported, err := target.Import(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, imported.Imported)
	assert.Equal(t, 1, imported.Skipped)

	list, err := target.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 5)
	assert.Equal(t, "B", list[4].Name)
}

func TestImportRejectsUnknownSchema(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte("schema_version = 9\n"), 0o644))

	_, err := newPresets(kv.NewMemory()).Import(ctx, path)
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = newPresets(kv.NewMemory()).Import(ctx, filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
