package db

import "github.com/urfave/cli/v2"

// HistoryFlags are the options of the history command.
var HistoryFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Value:   20,
		Usage:   "maximum rows to list (0 for all)",
	},
	&cli.BoolFlag{
		Name:  "vectors",
		Usage: "list vectors instead of runs; an argument selects one run",
	},
	&cli.StringFlag{
		Name:  "domain",
		Usage: "only list vectors whose domain contains this text",
	},
}
