package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/flipdeck"
)

type runOpts struct {
	width, height int
	reducedMotion bool
	wrap          bool
	click         string
	fps           bool
	debug         bool
	script        string
	screenshots   string
}

func newRunCmd() *cobra.Command {
	var o runOpts
	cmd := &cobra.Command{
		Use:   "run [deck.toml]",
		Short: "Open a window presenting a deck",
		Long: `Open a window presenting a deck. Without a deck file the built-in
three-page deck is shown. Flags override values from the deck file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeck(cmd, args, o)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.width, "width", 0, "window width (default from deck)")
	f.IntVar(&o.height, "height", 0, "window height (default from deck)")
	f.BoolVar(&o.reducedMotion, "reduced-motion", false, "crossfade instead of flipping tiles")
	f.BoolVar(&o.wrap, "wrap", false, "wrap past the first and last page")
	f.StringVar(&o.click, "click", "", "click policy: always, touch or never")
	f.BoolVar(&o.fps, "fps", false, "show FPS and navigation state")
	f.BoolVar(&o.debug, "debug", false, "log per-frame draw stats")
	f.StringVar(&o.script, "script", "", "JSON test script to play")
	f.StringVar(&o.screenshots, "screenshots", "", "directory for test script screenshots")
	return cmd
}

func runDeck(cmd *cobra.Command, args []string, o runOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg := flipdeck.DefaultConfig()
	if len(args) == 1 {
		loaded, err := flipdeck.LoadConfig(args[0])
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("deck loaded", "path", args[0], "pages", len(cfg.Pages))
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Window.Height = o.height
	}
	if flags.Changed("reduced-motion") {
		cfg.Motion.Reduced = o.reducedMotion
	}
	if flags.Changed("wrap") {
		cfg.Navigation.Wrap = o.wrap
	}
	if flags.Changed("click") {
		cfg.Navigation.Click = o.click
	}
	if flags.Changed("fps") {
		cfg.Window.ShowFPS = o.fps
	}

	p, win, err := flipdeck.NewDeck(cfg)
	if err != nil {
		return err
	}
	if o.debug {
		p.SetDebugMode(true)
	}
	if o.screenshots != "" {
		p.ScreenshotDir = o.screenshots
	}

	var runner *flipdeck.TestRunner
	if o.script != "" {
		data, err := os.ReadFile(o.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err = flipdeck.LoadTestScript(data)
		if err != nil {
			return err
		}
		p.SetTestRunner(runner)
	}

	logger.Info("presenting", "pages", len(cfg.Pages), "wrap", cfg.Navigation.Wrap,
		"click", cfg.Navigation.Click, "reduced_motion", cfg.Motion.Reduced)

	game := &contextGame{Presenter: p, ctx: ctx, runner: runner}
	if err := flipdeck.RunGame(game, p, win); err != nil {
		return err
	}
	return ctx.Err()
}

// contextGame stops the game loop when ctx is cancelled or a test script has
// finished.
type contextGame struct {
	*flipdeck.Presenter
	ctx    context.Context
	runner *flipdeck.TestRunner
}

func (g *contextGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.runner != nil && g.runner.Done() {
		return ebiten.Termination
	}
	return g.Presenter.Update()
}
