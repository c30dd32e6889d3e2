package main

import (
	"os"

	"github.com/lthibault/log"
	"github.com/urfave/cli/v2"

	"github.com/p2p-today/go-p2p"
)

var flags = []cli.Flag{
	// Logging
	&cli.StringFlag{
		Name:    "logfmt",
		Aliases: []string{"f"},
		Usage:   "`format` logs as text, json or none",
		Value:   "text",
		EnvVars: []string{"P2P_LOGFMT"},
	},
	&cli.StringFlag{
		Name:    "loglvl",
		Usage:   "set logging `level` to trace, debug, info, warn, error or fatal",
		Value:   "info",
		EnvVars: []string{"P2P_LOGLVL"},
	},
	// Misc.
	&cli.BoolFlag{
		Name:    "prettyprint",
		Aliases: []string{"pp"},
		Usage:   "pretty-print JSON output",
		Hidden:  true,
	},
}

var commands = []*cli.Command{
	protoCommand(),
}

func main() {
	run(&cli.App{
		Name:                 "p2p",
		Usage:                "mesh protocol identity tools",
		UsageText:            "p2p [global options] command [command options] [arguments...]",
		Version:              p2p.Version,
		EnableBashCompletion: true,
		Flags:                flags,
		Commands:             commands,
	})
}

func run(app *cli.App) {
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
