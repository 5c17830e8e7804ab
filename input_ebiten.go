package flipdeck

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps Ebitengine keys onto navigation keys.
var keyBindings = [...]struct {
	ebiten ebiten.Key
	key    Key
}{
	{ebiten.KeyArrowDown, KeyArrowDown},
	{ebiten.KeyArrowUp, KeyArrowUp},
	{ebiten.KeyPageDown, KeyPageDown},
	{ebiten.KeyPageUp, KeyPageUp},
}

// inputPoller reads Ebitengine's per-tick input state and forwards it to an
// InputAggregator as discrete events.
type inputPoller struct {
	touchIDs    []ebiten.TouchID
	pressedIDs  []ebiten.TouchID
	releasedIDs []ebiten.TouchID
}

// poll forwards this tick's input to a.
func (p *inputPoller) poll(a *InputAggregator) {
	p.pollKeys(a)
	p.pollWheel(a)
	p.pollTouches(a)
	p.pollMouse(a)
}

func (p *inputPoller) pollKeys(a *InputAggregator) {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.ebiten) {
			a.Key(b.key)
		}
	}
}

// pollWheel forwards the vertical wheel offset. Ebitengine reports lines with
// positive values scrolling up, so the sign is flipped.
func (p *inputPoller) pollWheel(a *InputAggregator) {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		a.Wheel(-dy, WheelLine)
	}
}

func (p *inputPoller) pollTouches(a *InputAggregator) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])

	p.pressedIDs = inpututil.AppendJustPressedTouchIDs(p.pressedIDs[:0])
	for _, id := range p.pressedIDs {
		x, y := ebiten.TouchPosition(id)
		a.TouchStart(float64(x), float64(y), len(p.touchIDs))
	}

	p.releasedIDs = inpututil.AppendJustReleasedTouchIDs(p.releasedIDs[:0])
	for _, id := range p.releasedIDs {
		// Released touches no longer report a position; use the last tick's.
		x, y := inpututil.TouchPositionInPreviousTick(id)
		a.TouchEnd(float64(x), float64(y), len(p.releasedIDs))
	}
}

func (p *inputPoller) pollMouse(a *InputAggregator) {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.Click()
	}
}
