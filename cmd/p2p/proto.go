package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/p2p-today/go-p2p/internal/logutil"
	"github.com/p2p-today/go-p2p/proto"
)

func protoCommand() *cli.Command {
	return &cli.Command{
		Name:  "proto",
		Usage: "inspect protocol descriptors",
		Subcommands: []*cli.Command{
			{
				Name:      "id",
				Usage:     "print the fingerprint for a subnet and encryption label",
				UsageText: "p2p proto id [options]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "subnet",
						Aliases: []string{"s"},
						Usage:   "logical network `namespace`",
						EnvVars: []string{"P2P_SUBNET"},
					},
					&cli.StringFlag{
						Name:    "encryption",
						Aliases: []string{"e"},
						Usage:   "encryption scheme `label`",
						Value:   "Plaintext",
						EnvVars: []string{"P2P_ENCRYPTION"},
					},
					&cli.BoolFlag{
						Name:  "ns",
						Usage: "print the stream namespace instead of the raw fingerprint",
					},
				},
				Action: printID,
			},
			{
				Name:      "check",
				Usage:     "decide whether two descriptors are compatible",
				UsageText: "p2p proto check <id> <id>\n   p2p proto check <subnet> <encryption> <subnet> <encryption>",
				Action:    check,
			},
		},
	}
}

func printID(c *cli.Context) error {
	d := proto.New(c.String("subnet"), c.String("encryption"))

	logutil.New(c).
		WithField("proto", d).
		Debug("derived fingerprint")

	if c.Bool("ns") {
		for _, id := range proto.Namespace(d) {
			fmt.Fprintln(c.App.Writer, id)
		}
		return nil
	}

	fmt.Fprintln(c.App.Writer, d.ID())
	return nil
}

func check(c *cli.Context) error {
	var a, b proto.ID

	switch args := c.Args().Slice(); c.NArg() {
	case 2: // raw fingerprints
		a, b = proto.ID(args[0]), proto.ID(args[1])

	case 4: // two (subnet, encryption) pairs
		a = proto.New(args[0], args[1]).ID()
		b = proto.New(args[2], args[3]).ID()

	default:
		return cli.Exit("expected two fingerprints or two <subnet> <encryption> pairs", 2)
	}

	if a != b {
		return cli.Exit("incompatible", 1)
	}

	fmt.Fprintln(c.App.Writer, "compatible")
	return nil
}
