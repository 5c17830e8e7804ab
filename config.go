package flipdeck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

// Deck sizes outside this range still work but are unusual for a presenter.
const (
	minRecommendedPages = 3
	maxRecommendedPages = 7
)

// Config is a deck file.
type Config struct {
	Window     WindowConfig     `toml:"window"`
	Navigation NavigationConfig `toml:"navigation"`
	Motion     MotionConfig     `toml:"motion"`
	Pages      []PageConfig     `toml:"pages"`
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	ShowFPS bool   `toml:"show_fps"`
}

// NavigationConfig holds navigation policy.
type NavigationConfig struct {
	Wrap  bool   `toml:"wrap"`
	Click string `toml:"click"` // always | touch | never
}

// MotionConfig holds the initial motion preference.
type MotionConfig struct {
	Reduced bool `toml:"reduced"`
}

// PageConfig describes one page. Colors are "#rrggbb" hex strings.
type PageConfig struct {
	Title    string   `toml:"title"`
	Subtitle string   `toml:"subtitle"`
	Gradient []string `toml:"gradient"`
	Accent   string   `toml:"accent"`
	Text     string   `toml:"text"`
}

// DefaultPages returns the built-in three-page deck.
func DefaultPages() []PageConfig {
	return []PageConfig{
		{
			Title:    "Welcome",
			Subtitle: "Scroll, swipe, or use arrow keys",
			Gradient: []string{"#0b2b2e", "#1f5d58"},
			Accent:   "#f3c278",
			Text:     "#f9f5ea",
		},
		{
			Title:    "Portfolio",
			Subtitle: "Ideas shaped into scenes",
			Gradient: []string{"#2c1b1a", "#8b3a2e"},
			Accent:   "#f1d7a4",
			Text:     "#fff1de",
		},
		{
			Title:    "Contact",
			Subtitle: "hello@example.com",
			Gradient: []string{"#0f2028", "#386c63"},
			Accent:   "#9bd5c0",
			Text:     "#e6f4f1",
		},
	}
}

// DefaultConfig returns a config with the default window, non-wrapping
// navigation, clicks always advancing and the built-in pages.
func DefaultConfig() Config {
	return Config{
		Window:     WindowConfig{Title: "flipdeck", Width: 1280, Height: 720},
		Navigation: NavigationConfig{Click: ClickAlways.String()},
		Pages:      DefaultPages(),
	}
}

// ParseConfig decodes a TOML deck over the defaults. A deck that lists no
// pages keeps the built-in ones. Unknown keys are logged and ignored.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	cfg.Pages = nil
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("flipdeck: parse config: %w", err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown config key", "key", key.String())
	}
	if len(cfg.Pages) == 0 {
		cfg.Pages = DefaultPages()
	}
	return cfg, nil
}

// LoadConfig reads and decodes a TOML deck file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	cfg.Pages = nil
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("flipdeck: load config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown config key", "key", key.String(), "file", path)
	}
	if len(cfg.Pages) == 0 {
		cfg.Pages = DefaultPages()
	}
	return cfg, nil
}

// Validate checks the config. It returns every problem found, joined.
func (c Config) Validate() error {
	var errs []error
	if len(c.Pages) == 0 {
		errs = append(errs, ErrNoPages)
	} else if len(c.Pages) < minRecommendedPages || len(c.Pages) > maxRecommendedPages {
		logger.Warn("unusual deck size", "pages", len(c.Pages),
			"recommended", fmt.Sprintf("%d-%d", minRecommendedPages, maxRecommendedPages))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("flipdeck: window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if _, err := ParseClickPolicy(c.Navigation.Click); err != nil {
		errs = append(errs, err)
	}
	for i, p := range c.Pages {
		if _, err := p.Style(); err != nil {
			errs = append(errs, fmt.Errorf("page %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// ClickPolicy returns the parsed click policy.
func (c Config) ClickPolicy() (ClickPolicy, error) {
	return ParseClickPolicy(c.Navigation.Click)
}

// PageStyles converts every page to a PageStyle.
func (c Config) PageStyles() ([]PageStyle, error) {
	if len(c.Pages) == 0 {
		return nil, ErrNoPages
	}
	styles := make([]PageStyle, len(c.Pages))
	for i, p := range c.Pages {
		st, err := p.Style()
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		styles[i] = st
	}
	return styles, nil
}

// Style parses the page's colors.
func (p PageConfig) Style() (PageStyle, error) {
	if len(p.Gradient) != 2 {
		return PageStyle{}, fmt.Errorf("flipdeck: gradient needs 2 colors, got %d", len(p.Gradient))
	}
	st := PageStyle{Title: p.Title, Subtitle: strings.TrimRight(p.Subtitle, "\n")}
	fields := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"gradient[0]", p.Gradient[0], &st.Gradient[0]},
		{"gradient[1]", p.Gradient[1], &st.Gradient[1]},
		{"accent", p.Accent, &st.Accent},
		{"text", p.Text, &st.Text},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return PageStyle{}, fmt.Errorf("flipdeck: %s %q: %w", f.name, f.hex, err)
		}
		*f.dst = c
	}
	return st, nil
}
