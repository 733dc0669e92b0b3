// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/typetour/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "index", "typetour.db")
	store, err := NewStore(types.RecordConfig{DBPath: dbPath, MaxRuns: 2})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

// fixedClock returns a clock that advances one second per call.
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Second)
		return now
	}
}

func sampleLines() []types.Line {
	return []types.Line{
		{Seq: 1, Name: "message", Section: types.SectionAnnotations, Text: "Hello typescript"},
		{Seq: 2, Name: "greet", Section: types.SectionInterfaces, Text: "person name is Gaurav and age is 23"},
		{Seq: 3, Name: "obj", Section: types.SectionGenerics, Text: "{Name:gaurav Age:18}"},
	}
}

func TestNewStoreCreatesDBFile(t *testing.T) {
	_, dbPath := testStore(t)
	_, err := os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestNewStoreReopensExisting(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "typetour.db")
	cfg := types.RecordConfig{DBPath: dbPath}

	first, err := NewStore(cfg)
	require.NoError(t, err)
	run, err := first.Record(context.Background(), types.OutputText, sampleLines())
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(cfg)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Run(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.LineCount)
}

func TestOpenStoreMissingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "index", "typetour.db")

	_, err := OpenStore(types.RecordConfig{DBPath: dbPath})
	require.ErrorIs(t, err, ErrNoDatabase)

	_, err = os.Stat(filepath.Dir(dbPath))
	assert.True(t, os.IsNotExist(err), "OpenStore must not create the database directory")
}

func TestOpenStoreExisting(t *testing.T) {
	store, dbPath := testStore(t)
	run, err := store.Record(context.Background(), types.OutputText, sampleLines())
	require.NoError(t, err)

	opened, err := OpenStore(types.RecordConfig{DBPath: dbPath})
	require.NoError(t, err)
	defer opened.Close()

	got, err := opened.Run(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, sampleLines(), got.Lines)
}

func TestRecordAndRun(t *testing.T) {
	store, _ := testStore(t)
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	store.now = fixedClock(start)
	ctx := context.Background()

	run, err := store.Record(ctx, types.OutputYAML, sampleLines())
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 3, run.LineCount)
	assert.True(t, run.StartedAt.Equal(start))

	got, err := store.Run(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, types.OutputYAML, got.Format)
	assert.True(t, got.StartedAt.Equal(start))
	assert.Equal(t, sampleLines(), got.Lines)
}

func TestRunNotFound(t *testing.T) {
	store, _ := testStore(t)
	_, err := store.Run(context.Background(), "missing")
	require.ErrorIs(t, err, ErrRunNotFound)
}

func TestRunsNewestFirstAndLimited(t *testing.T) {
	store, _ := testStore(t)
	store.now = fixedClock(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		run, err := store.Record(ctx, types.OutputText, sampleLines()[:i+1])
		require.NoError(t, err)
		ids = append(ids, run.ID)
	}

	runs, err := store.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2, "MaxRuns limits the listing")
	assert.Equal(t, ids[2], runs[0].ID)
	assert.Equal(t, 3, runs[0].LineCount)
	assert.Equal(t, ids[1], runs[1].ID)
	assert.Equal(t, 2, runs[1].LineCount)
	assert.Empty(t, runs[0].Lines)
}

func TestRunsEmpty(t *testing.T) {
	store, _ := testStore(t)
	runs, err := store.Runs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestExportYAML(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()
	run, err := store.Record(ctx, types.OutputText, sampleLines())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, store.ExportYAML(ctx, run.ID, &buf))

	var got types.Run
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, types.OutputText, got.Format)
	assert.Equal(t, sampleLines(), got.Lines)
}

func TestExportYAMLUnknownRun(t *testing.T) {
	store, _ := testStore(t)
	err := store.ExportYAML(context.Background(), "missing", &bytes.Buffer{})
	require.ErrorIs(t, err, ErrRunNotFound)
}
