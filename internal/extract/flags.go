package extract

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/page-signals/models"
	"github.com/dtnitsch/page-signals/pkg/snapshot"
)

// Flags are the options of the extract command.
var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:    "source",
		Aliases: []string{"s"},
		Value:   string(snapshot.SourceHTTP),
		Usage:   "where snapshots come from: file, http or browser",
		EnvVars: []string{"PAGESIGNALS_SOURCE"},
	},
	&cli.StringFlag{
		Name:  "urls",
		Usage: "comma-separated targets, in addition to any arguments",
	},
	&cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "file with one target per line",
	},
	&cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Value:   4,
		Usage:   "number of concurrent workers",
		EnvVars: []string{"PAGESIGNALS_WORKERS"},
	},
	&cli.DurationFlag{
		Name:    "timeout",
		Value:   30 * time.Second,
		Usage:   "per-page capture timeout",
		EnvVars: []string{"PAGESIGNALS_TIMEOUT"},
	},
	&cli.DurationFlag{
		Name:    "settle",
		Value:   snapshot.DefaultSettle,
		Usage:   "browser wait after load before capturing",
		EnvVars: []string{"PAGESIGNALS_SETTLE"},
	},
	&cli.StringFlag{
		Name:    "cache-dir",
		Usage:   "directory caching fetched HTML (http source)",
		EnvVars: []string{"PAGESIGNALS_CACHE_DIR"},
	},
	&cli.DurationFlag{
		Name:    "cache-ttl",
		Value:   time.Hour,
		Usage:   "how long cached HTML stays fresh",
		EnvVars: []string{"PAGESIGNALS_CACHE_TTL"},
	},
	&cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   models.FormatJSON,
		Usage:   "output format: json, yaml or bits",
	},
	&cli.BoolFlag{
		Name:  "signals",
		Usage: "include the per-category records in the output",
	},
	&cli.BoolFlag{
		Name:  "no-meta",
		Usage: "skip language, title and site detection",
	},
	&cli.BoolFlag{
		Name:    "store",
		Usage:   "save vectors to the database",
		EnvVars: []string{"PAGESIGNALS_STORE"},
	},
}

// SchemaFlags are the options of the schema command.
var SchemaFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "output format: text or json",
	},
}
