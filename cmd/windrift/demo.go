package main

import (
	"fmt"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/windrift/audio"
	"github.com/lixenwraith/windrift/boundary"
	"github.com/lixenwraith/windrift/config"
	"github.com/lixenwraith/windrift/engine"
	"github.com/lixenwraith/windrift/render"
)

const scrollStep = 0.04

var (
	outgoingBg = render.RGB{R: 16, G: 18, B: 28}
	outgoingFg = render.RGB{R: 90, G: 100, B: 130}
	incomingLo = render.RGB{R: 120, G: 50, B: 20}
	incomingHi = render.RGB{R: 250, G: 170, B: 70}
	hudFg      = render.RGB{R: 180, G: 180, B: 180}
	hudHot     = render.RGB{R: 255, G: 255, B: 100}
)

// outgoingLayer paints the resting page: dark field with a dot grid.
func outgoingLayer(x, y int) render.Cell {
	c := render.Cell{Rune: ' ', Bg: outgoingBg}
	if x%6 == 0 && y%3 == 0 {
		c.Rune = '·'
		c.Fg = outgoingFg
	}
	return c
}

// incomingLayer paints the arriving section: warm horizontal gradient.
func incomingLayer(w int) render.SourceFunc {
	return func(x, y int) render.Cell {
		t := 0.0
		if w > 1 {
			t = float64(x) / float64(w-1)
		}
		return render.Cell{Rune: ' ', Bg: render.Lerp(incomingLo, incomingHi, t)}
	}
}

// newDemoCmd builds the "demo" subcommand: the full engine wired to a
// simulated scroll timeline inside a terminal.
func newDemoCmd(logger func() *charmlog.Logger, loadConfig func() (config.Config, error)) *cobra.Command {
	var (
		sound         bool
		reducedMotion bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Interactive sandbox driving the transition with simulated scrolling",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if reducedMotion {
				cfg.ReducedMotion = true
			}

			var player *audio.Player
			if sound {
				player = audio.NewPlayer(beep.SampleRate(44100), 0.8)
				if err := player.Init(); err != nil {
					log.Warn("audio unavailable", "err", err)
					player = nil
				}
			}

			return runDemo(cfg, log, player)
		},
	}

	cmd.Flags().BoolVar(&sound, "sound", false, "play synthesized wind cues")
	cmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "bypass animation with discrete swaps")

	return cmd
}

func runDemo(cfg config.Config, log *charmlog.Logger, player *audio.Player) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	w, h := screen.Size()

	timeline := &simTimeline{}
	compositor := render.NewCompositor(render.SourceFunc(outgoingLayer), incomingLayer(w))

	ctrl, err := engine.New(cfg, engine.Deps{
		Timeline: timeline,
		Layers:   compositor,
		Logger:   log,
		Viewport: boundary.Viewport{Width: float64(w), Height: float64(h)},
	})
	if err != nil {
		return err
	}
	handle := ctrl.Init()
	defer handle.Dispose()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	cells := make([]render.Cell, w*h)
	frame := time.NewTicker(cfg.FrameInterval.Duration)
	defer frame.Stop()

	prevPhase := handle.Phase()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h = screen.Size()
				cells = make([]render.Cell, w*h)
				compositor.SetIncoming(incomingLayer(w))
				ctrl.SetViewport(boundary.Viewport{Width: float64(w), Height: float64(h)})
				screen.Sync()

			case *tcell.EventMouse:
				switch {
				case ev.Buttons()&tcell.WheelDown != 0:
					timeline.Scroll(scrollStep)
				case ev.Buttons()&tcell.WheelUp != 0:
					timeline.Scroll(-scrollStep)
				}

			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					close(quit)
					return nil
				case ev.Rune() == 'q':
					close(quit)
					return nil
				case ev.Rune() == 'j' || ev.Key() == tcell.KeyDown:
					timeline.Scroll(scrollStep)
				case ev.Rune() == 'k' || ev.Key() == tcell.KeyUp:
					timeline.Scroll(-scrollStep)
				case ev.Rune() == 'J':
					timeline.Scroll(scrollStep * 5)
				case ev.Rune() == 'K':
					timeline.Scroll(-scrollStep * 5)
				}
			}

		case <-frame.C:
			snap := handle.Inspect()
			if player != nil {
				playCues(player, prevPhase, snap)
			}
			prevPhase = snap.Phase

			compositor.Compose(cells, w, h)
			drawCells(screen, cells, w, h)
			drawHUD(screen, w, h, timeline.Offset(), snap)
			screen.Show()
		}
	}
}

// playCues maps phase edges to sounds: a gust when the region arrives, a
// settle when it finishes running off.
func playCues(player *audio.Player, prev engine.Phase, snap engine.Snapshot) {
	if prev == snap.Phase {
		return
	}
	switch {
	case prev == engine.PhaseIdle && snap.Phase == engine.PhaseDriven:
		player.Play(audio.CueGust, snap.Velocity)
	case snap.Phase == engine.PhaseIdle:
		player.Play(audio.CueSettle, 0)
	}
}

func drawCells(screen tcell.Screen, cells []render.Cell, w, h int) {
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			c := cells[row+x]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

func drawHUD(screen tcell.Screen, w, h int, offset float64, snap engine.Snapshot) {
	lines := []string{
		"=== WINDRIFT DEMO ===  [J/K] Scroll  [Shift] Faster  [Q] Quit",
		fmt.Sprintf("phase %-8s  offset %.2f  progress %.2f  velocity %.2f  clock %v",
			snap.Phase, offset, snap.Progress, snap.Velocity, snap.ClockRunning),
	}

	fg := tcell.NewRGBColor(int32(hudFg.R), int32(hudFg.G), int32(hudFg.B))
	hot := tcell.NewRGBColor(int32(hudHot.R), int32(hudHot.G), int32(hudHot.B))

	for i, line := range lines {
		y := h - len(lines) + i
		if y < 0 {
			continue
		}
		style := tcell.StyleDefault.Foreground(fg)
		if i == 0 {
			style = tcell.StyleDefault.Foreground(hot)
		}
		for x, r := range line {
			if x >= w {
				break
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
