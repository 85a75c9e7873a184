package main

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/windrift/boundary"
	"github.com/lixenwraith/windrift/config"
	"github.com/lixenwraith/windrift/noise"
)

// newPathCmd builds the "path" subcommand: generate one frame of boundary
// geometry and print it as an SVG-style path string.
func newPathCmd(logger func() *charmlog.Logger, loadConfig func() (config.Config, error)) *cobra.Command {
	var (
		width    float64
		height   float64
		progress float64
		timeSec  float64
		velocity float64
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print one frame of clip geometry as an SVG path",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			seed := cfg.Seed
			if seed == 0 {
				seed = 1
			}

			src, err := noise.New(cfg.NoiseBackend, seed)
			if err != nil {
				return err
			}

			gen, err := boundary.NewGenerator(cfg, src, seed, boundary.Viewport{Width: width, Height: height})
			if err != nil {
				return err
			}

			edgeX := gen.DrivenEdgeX(progress)
			path := gen.Generate(edgeX, timeSec, velocity)

			log.Debug("generated path",
				"samples", len(path.Edge),
				"edge_x", edgeX,
				"max_x", path.MaxEdgeX(),
				"far_x", path.FarX)

			fmt.Fprintln(cmd.OutOrStdout(), path.Data())
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 1280, "viewport width in px")
	cmd.Flags().Float64Var(&height, "height", 800, "viewport height in px")
	cmd.Flags().Float64VarP(&progress, "progress", "p", 0.5, "scroll progress in [0,1]")
	cmd.Flags().Float64VarP(&timeSec, "time", "t", 0, "animation time in seconds")
	cmd.Flags().Float64Var(&velocity, "velocity", 0, "scroll velocity in [0,1]")

	return cmd
}
