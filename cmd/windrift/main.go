// Command windrift hosts the boundary-transition tooling: a terminal sandbox
// that runs the full engine against simulated scrolling, and a path dumper
// for inspecting the generated clip geometry.
package main

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/windrift/config"
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "windrift",
		Short:        "Windrift drives an organic noise-bounded layer transition",
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file (defaults apply when empty)")

	logger := func() *charmlog.Logger {
		level := charmlog.InfoLevel
		if verbose {
			level = charmlog.DebugLevel
		}
		return newLogger(os.Stderr, level)
	}

	loadConfig := func() (config.Config, error) {
		if configPath == "" {
			return config.Default(), nil
		}
		return config.Load(configPath)
	}

	root.AddCommand(newDemoCmd(logger, loadConfig))
	root.AddCommand(newPathCmd(logger, loadConfig))

	return root.Execute()
}
