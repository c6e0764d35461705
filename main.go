package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/page-signals/internal/common"
	dbactions "github.com/dtnitsch/page-signals/internal/db"
	"github.com/dtnitsch/page-signals/internal/extract"
	"github.com/dtnitsch/page-signals/pkg/help"
)

func main() {
	// PAGESIGNALS_* settings may live in a .env file.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "page-signals",
		Usage: "extract login, register and noise page feature vectors",
		Flags: common.GlobalFlags,
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "capture pages and extract their 88-entry feature vectors",
				ArgsUsage: "[targets...]",
				Flags:     extract.Flags,
				Action:    extract.ExtractAction,
			},
			{
				Name:   "schema",
				Usage:  "print the name of every vector entry in order",
				Flags:  extract.SchemaFlags,
				Action: extract.SchemaAction,
			},
			{
				Name:      "history",
				Usage:     "list stored runs or vectors",
				ArgsUsage: "[run id]",
				Flags:     dbactions.HistoryFlags,
				Action:    dbactions.HistoryAction,
			},
			{
				Name:  "quickstart",
				Usage: "print a YAML cheat sheet of common invocations",
				Action: func(c *cli.Context) error {
					fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "show a stored vector and the entries it sets",
				ArgsUsage: "<vector id>",
				Action:    dbactions.ShowAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
