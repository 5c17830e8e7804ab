package flipdeck

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// Run opens a resizable window and runs p until the window is closed.
func Run(p *Presenter, cfg RunConfig) error {
	return RunGame(p, p, cfg)
}

// RunGame is Run for a game that wraps p, for callers that need their own
// Update (for example to stop on context cancellation).
func RunGame(game ebiten.Game, p *Presenter, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("flipdeck: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	p.SetShowFPS(cfg.ShowFPS)
	logger.Info("starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return ebiten.RunGame(game)
}

// NewDeck builds a presenter rendering cfg's pages with the default
// PageRenderer, plus the window settings to run it with.
func NewDeck(cfg Config) (*Presenter, RunConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, RunConfig{}, err
	}
	styles, err := cfg.PageStyles()
	if err != nil {
		return nil, RunConfig{}, err
	}
	click, err := cfg.ClickPolicy()
	if err != nil {
		return nil, RunConfig{}, err
	}
	renderer, err := NewPageRenderer(styles)
	if err != nil {
		return nil, RunConfig{}, err
	}
	p, err := NewPresenter(Options{
		Provider:      renderer,
		Pages:         renderer.Pages(),
		Wrap:          cfg.Navigation.Wrap,
		Click:         click,
		ReducedMotion: cfg.Motion.Reduced,
	})
	if err != nil {
		return nil, RunConfig{}, err
	}
	return p, RunConfig{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		ShowFPS: cfg.Window.ShowFPS,
	}, nil
}
