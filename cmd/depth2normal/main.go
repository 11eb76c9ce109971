// Package main is a command that converts a depth map image into a normal map image.
package main

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"
	"go.viam.com/utils"

	"go.viam.com/depthnormal/logging"
	"go.viam.com/depthnormal/normalmap"
)

const (
	flagInput      = "input"
	flagMaxDepth   = "max_depth"
	flagOutputPath = "output_path"
	flagDebug      = "debug"
)

func main() {
	logger := logging.NewLogger("depth2normal")
	if err := realMain(context.Background(), os.Args, os.Stdout, logger); err != nil {
		logger.Error(err)
		utils.UncheckedError(logger.Sync())
		os.Exit(1)
	}
}

func newApp(out io.Writer, logger logging.Logger) *cli.App {
	return &cli.App{
		Name:            "depth2normal",
		Usage:           "convert depth map to normal map",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       out,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:     flagInput,
				Required: true,
				Usage:    "path to depth map image",
			},
			&cli.IntFlag{
				Name:  flagMaxDepth,
				Value: normalmap.DefaultMaxDepth,
				Usage: "maximum depth value",
			},
			&cli.PathFlag{
				Name:  flagOutputPath,
				Value: normalmap.DefaultOutputPath,
				Usage: "output path for normal map image",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger.SetLevel(zapcore.DebugLevel)
			}
			cfg := normalmap.Config{
				InputPath:  c.Path(flagInput),
				MaxDepth:   c.Int(flagMaxDepth),
				OutputPath: c.Path(flagOutputPath),
			}
			return normalmap.Run(c.Context, cfg, logger)
		},
	}
}

func realMain(ctx context.Context, args []string, out io.Writer, logger logging.Logger) error {
	return newApp(out, logger).RunContext(ctx, args)
}
