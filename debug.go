package flipdeck

import (
	"time"

	"github.com/charmbracelet/log"
)

// debugStats holds per-frame draw metrics.
// Only populated when Presenter.debug is true.
type debugStats struct {
	drawTime     time.Duration
	tilesDrawn   int
	tilesSkipped int // edge-on, or without a drawable face
	overlay      bool
}

// SetDebugMode enables or disables debug mode. When enabled the package
// logger is raised to debug level and per-frame draw stats are logged.
func (p *Presenter) SetDebugMode(enabled bool) {
	p.debug = enabled
	if enabled {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
}

// debugLog logs draw stats for one frame.
func (p *Presenter) debugLog(stats debugStats) {
	if !p.debug {
		return
	}
	logger.Debug("frame",
		"draw", stats.drawTime,
		"tiles", stats.tilesDrawn,
		"skipped", stats.tilesSkipped,
		"overlay", stats.overlay,
		"state", p.nav.State(),
		"page", p.nav.Current(),
	)
}
