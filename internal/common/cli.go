package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/page-signals/pkg/vocab"
)

// GlobalFlags apply to every command.
var GlobalFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "only log errors",
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log debug output",
	},
	&cli.StringFlag{
		Name:    "db",
		Usage:   "database path (default: next to the binary)",
		EnvVars: []string{"PAGESIGNALS_DB"},
	},
	&cli.StringFlag{
		Name:    "vocab",
		Usage:   "vocabulary YAML replacing the embedded one",
		EnvVars: []string{"PAGESIGNALS_VOCAB"},
	},
}

// NewLogger builds the JSON logger every action writes to stderr.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))
}

// LoadVocabulary returns the embedded vocabulary, or the file at path.
func LoadVocabulary(path string) (*vocab.Library, error) {
	if path == "" {
		return vocab.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary: %w", err)
	}
	defer f.Close()
	lib, err := vocab.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary %s: %w", path, err)
	}
	return lib, nil
}
