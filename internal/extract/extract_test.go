package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/page-signals/internal/common"
	"github.com/dtnitsch/page-signals/models"
	"github.com/dtnitsch/page-signals/pkg/db"
)

const loginPage = `<html><body><form action="/session">
	<div><label for="u">Username</label><input id="u" name="username"></div>
	<div><input type="password" name="password"></div>
	<div><button type="submit">Log in</button></div>
</form></body></html>`

const passwordAnyIndex = 79

func newTestApp(out, errOut *bytes.Buffer) *cli.App {
	return &cli.App{
		Name:           "page-signals",
		Writer:         out,
		ErrWriter:      errOut,
		Flags:          common.GlobalFlags,
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{Name: "extract", Flags: Flags, Action: ExtractAction},
			{Name: "schema", Flags: SchemaFlags, Action: SchemaAction},
		},
	}
}

func writePage(t *testing.T, dir, name, html string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(html), 0644))
	return path
}

func exitCode(err error) int {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}

func TestExtractActionBits(t *testing.T) {
	dir := t.TempDir()
	first := writePage(t, dir, "a.html", loginPage)
	second := writePage(t, dir, "b.html", loginPage)

	var out, errOut bytes.Buffer
	err := newTestApp(&out, &errOut).Run([]string{"page-signals", "--quiet",
		"extract", "--source", "file", "--format", "bits", "--no-meta", "--workers", "1", first, second})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for i, want := range []string{first, second} {
		fields := strings.Split(lines[i], "\t")
		require.Len(t, fields, 2)
		assert.Len(t, fields[0], 88)
		assert.Equal(t, byte('1'), fields[0][passwordAnyIndex])
		assert.Equal(t, want, fields[1])
	}
	assert.Empty(t, errOut.String())
}

func TestExtractActionJSONMarksDuplicates(t *testing.T) {
	dir := t.TempDir()
	first := writePage(t, dir, "a.html", loginPage)
	second := writePage(t, dir, "b.html", loginPage)
	other := writePage(t, dir, "c.html", `<html><body><p>News</p></body></html>`)

	var out, errOut bytes.Buffer
	err := newTestApp(&out, &errOut).Run([]string{"page-signals", "--quiet",
		"extract", "--source", "file", "--no-meta", "--signals", "--workers", "1", first, second, other})
	require.NoError(t, err)

	var got models.RunOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "success", got.Status)
	assert.Equal(t, 3, got.Stats.Total)
	assert.Equal(t, 1, got.Stats.Duplicates)
	require.Len(t, got.Results, 3)
	assert.Empty(t, got.Results[0].DuplicateOf)
	assert.Equal(t, first, got.Results[1].DuplicateOf)
	assert.Equal(t, got.Results[0].Bits[:86], got.Results[1].Bits[:86])
	require.NotNil(t, got.Results[1].Signals)
	assert.Equal(t, got.Results[1].URL, got.Results[1].Signals.URL)
	assert.Equal(t, strings.Repeat("0", 86), got.Results[2].Bits[:86])
}

func TestExtractActionStores(t *testing.T) {
	dir := t.TempDir()
	page := writePage(t, dir, "login.html", loginPage)
	dbPath := filepath.Join(dir, "vectors.db")

	var out, errOut bytes.Buffer
	err := newTestApp(&out, &errOut).Run([]string{"page-signals", "--quiet", "--db", dbPath,
		"extract", "--source", "file", "--store", "--format", "yaml", page})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "run_id: 1")

	database, err := db.Open(dbPath)
	require.NoError(t, err)
	defer database.Close()

	vectors, err := database.ListVectors(db.VectorFilter{RunID: 1})
	require.NoError(t, err)
	require.Len(t, vectors, 1)
	assert.Equal(t, page, vectors[0].URL)
	assert.Equal(t, "file", vectors[0].Source)
	assert.Len(t, vectors[0].Bits, 88)

	run, err := database.GetRunByID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, run.SuccessCount)
}

func TestExtractActionFailures(t *testing.T) {
	dir := t.TempDir()
	page := writePage(t, dir, "login.html", loginPage)
	missing := filepath.Join(dir, "missing.html")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no targets", []string{"extract", "--source", "file"}, 1},
		{"unknown format", []string{"extract", "--source", "file", "--format", "xml", page}, 1},
		{"unknown source", []string{"extract", "--source", "ftp", page}, 1},
		{"invalid URL", []string{"extract", "--source", "http", "not a url"}, 1},
		{"all failed", []string{"extract", "--source", "file", "--no-meta", missing}, 2},
		{"some failed", []string{"extract", "--source", "file", "--no-meta", page, missing}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			err := newTestApp(&out, &errOut).Run(append([]string{"page-signals", "--quiet"}, tt.args...))
			assert.Equal(t, tt.want, exitCode(err))
		})
	}
}

func TestSchemaAction(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, newTestApp(&out, &errOut).Run([]string{"page-signals", "schema"}))
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 88)
	assert.True(t, strings.HasPrefix(lines[0], " 0\tform."))
	assert.True(t, strings.HasSuffix(lines[87], "url.has_newsletter_pattern"))

	out.Reset()
	require.NoError(t, newTestApp(&out, &errOut).Run([]string{"page-signals", "schema", "--format", "json"}))
	var names []string
	require.NoError(t, json.Unmarshal(out.Bytes(), &names))
	assert.Len(t, names, 88)
}
