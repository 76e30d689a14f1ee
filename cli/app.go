// Package cli contains the cgm command line tool.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	configFlag   = "config"
	debugFlag    = "debug"
	staticFlag   = "static"
	dynamicFlag  = "dynamic"
	workersFlag  = "workers"
	footFlatFlag = "foot-flat"
	outputFlag   = "output"
	tableFlag    = "table"
)

var sessionFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     configFlag,
		Aliases:  []string{"c"},
		Required: true,
		Usage:    "load the session from `FILE`",
	},
	&cli.StringFlag{
		Name:  staticFlag,
		Usage: "static trial `FILE`, overriding the session",
	},
	&cli.BoolFlag{
		Name:  footFlatFlag,
		Usage: "treat the static trial feet as flat on the floor",
	},
}

var app = &cli.App{
	Name:            "cgm",
	Usage:           "compute segment axes and joint angles from motion capture trials",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    debugFlag,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
	},
	Commands: []*cli.Command{
		{
			Name:      "calibrate",
			Usage:     "calibrate a subject on its static trial and print the offsets",
			UsageText: "cgm calibrate --config <session.json> [--static <trial.json>]",
			Flags:     sessionFlags,
			Action:    CalibrateAction,
		},
		{
			Name:      "run",
			Usage:     "calibrate a subject and process its dynamic trial",
			UsageText: "cgm run --config <session.json> [other options]",
			Flags: append(append([]cli.Flag{}, sessionFlags...),
				&cli.StringFlag{
					Name:  dynamicFlag,
					Usage: "dynamic trial `FILE`, overriding the session",
				},
				&cli.IntFlag{
					Name:  workersFlag,
					Usage: "number of frames processed in parallel, 0 for one per CPU",
				},
				&cli.StringFlag{
					Name:    outputFlag,
					Aliases: []string{"o"},
					Usage:   "write the results to `FILE` instead of stdout",
				},
				&cli.BoolFlag{
					Name:  tableFlag,
					Usage: "print the joint angle ranges as a table to stderr",
				},
			),
			Action: RunAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
