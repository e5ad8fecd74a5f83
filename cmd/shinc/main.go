package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"shinc/build"
	"shinc/common"
	"shinc/misc"
	"shinc/state"
)

const buildHelp = `%s
SOURCE:
    directory with shaders. Every regular file directly in it is a shader
    unless its name without extension is listed in the ignore list
    ("ignore_list.txt" by default). Fragments come from sub-directory
    ("structs" by default), file name without extension is the token:
    "structs/Camera.glsl" replaces "#include Camera".

DESTINATION:
    existing directory, shaders are written under their own names,
    existing files are replaced

EXIT CODES:
    1 - generic error, 2 - missing directory, 3 - unreadable file,
    4 - unwritable output, 5 - duplicate fragment token, 6 - include cycle,
    7 - nesting depth exceeded
`

const dumpHelp = `%s

DESTINATION:
    file to write configuration to, STDOUT when absent

Without --default configuration in effect is written: embedded defaults
with values from --config file applied on top.
`

func newApp() *cli.Command {
	return &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "resolves #include directives in shader sources",
		Version:         fmt.Sprintf("%s (%s) : %s", misc.GetVersion(), runtime.Version(), misc.GetGitHash()),
		HideHelpCommand: true,
		Before:          setupEnv,
		After:           teardownEnv,
		OnUsageError:    passUsageError,
		ExitErrHandler:  logFailure,
		CommandNotFound: unknownCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log everything and pack sources, outputs and logs into report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:               "build",
				Usage:              "Expands include directives in every shader of SOURCE into DESTINATION",
				ArgsUsage:          "SOURCE DESTINATION",
				Flags:              build.Flags(),
				Action:             build.Run,
				OnUsageError:       passUsageError,
				CustomHelpTemplate: fmt.Sprintf(buildHelp, cli.CommandHelpTemplate),
			},
			{
				Name:      "dumpconfig",
				Usage:     "Writes default or effective configuration (YAML)",
				ArgsUsage: "[DESTINATION]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "write embedded defaults"},
				},
				Action:             dumpConfig,
				OnUsageError:       passUsageError,
				CustomHelpTemplate: fmt.Sprintf(dumpHelp, cli.CommandHelpTemplate),
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	err := newApp().Run(ctx, os.Args)
	stop()

	if err == nil {
		return
	}
	if !failureLogged {
		// logger was never ready or is closed already
		fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
	}
	os.Exit(common.ExitCode(err))
}
