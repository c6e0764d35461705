package db

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/page-signals/internal/common"
	dbpkg "github.com/dtnitsch/page-signals/pkg/db"
)

func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := &cli.App{
		Name:           "page-signals",
		Writer:         &out,
		ErrWriter:      &errOut,
		Flags:          common.GlobalFlags,
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{Name: "history", Flags: HistoryFlags, Action: HistoryAction},
			{Name: "show", Action: ShowAction},
		},
	}
	err := app.Run(append([]string{"page-signals", "--db", dbPath}, args...))
	return out.String(), err
}

func seed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vectors.db")
	database, err := dbpkg.Open(path)
	require.NoError(t, err)
	defer database.Close()

	runID, err := database.CreateRun("http", 2, "")
	require.NoError(t, err)
	bits := []byte(strings.Repeat("0", 88))
	bits[79] = '1'
	_, err = database.InsertVector(dbpkg.VectorRecord{
		RunID:       runID,
		URL:         "https://accounts.example.com/login",
		CapturedAt:  time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
		Source:      "http",
		ContentHash: "abc",
		Bits:        string(bits),
		Language:    "en",
		Title:       "Sign in",
	})
	require.NoError(t, err)
	require.NoError(t, database.RecordFailure(runID, "https://down.example.com/", "timeout"))
	require.NoError(t, database.UpdateRunStats(runID, 1, 1))
	return path
}

func TestHistoryActionRuns(t *testing.T) {
	out, err := run(t, seed(t), "history")
	require.NoError(t, err)
	assert.Contains(t, out, "(embedded)")
	assert.Contains(t, out, "Total: 1 runs")
}

func TestHistoryActionVectors(t *testing.T) {
	path := seed(t)

	out, err := run(t, path, "history", "--vectors", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "https://accounts.example.com/login")
	assert.Contains(t, out, "Total: 1 vectors")

	out, err = run(t, path, "history", "--domain", "nowhere")
	require.NoError(t, err)
	assert.Contains(t, out, "No vectors found")
}

func TestHistoryActionEmpty(t *testing.T) {
	out, err := run(t, filepath.Join(t.TempDir(), "empty.db"), "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs found")
}

func TestShowAction(t *testing.T) {
	path := seed(t)

	out, err := run(t, path, "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Vector 1")
	assert.Contains(t, out, "Title:       Sign in")
	assert.Contains(t, out, "Set entries (1):")
	assert.Contains(t, out, "79  password.")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"missing id", []string{"show"}, 1},
		{"bad id", []string{"show", "abc"}, 1},
		{"unknown id", []string{"show", "42"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, path, tt.args...)
			var coder cli.ExitCoder
			require.True(t, errors.As(err, &coder))
			assert.Equal(t, tt.want, coder.ExitCode())
		})
	}
}
