// Package replay renders search traces as plain text, one line per frame.
package replay

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/zerr"
)

// Player writes frames to an output at a fixed cadence.
type Player struct {
	w       io.Writer
	clock   clock.Clock
	cadence time.Duration
}

// Option configures a Player.
type Option func(*Player)

// WithClock sets the clock that drives the cadence.
func WithClock(c clock.Clock) Option {
	return func(p *Player) {
		p.clock = c
	}
}

// WithCadence sets the delay between two frames. Zero writes all frames at once.
func WithCadence(d time.Duration) Option {
	return func(p *Player) {
		p.cadence = d
	}
}

// NewPlayer creates a Player writing to w.
func NewPlayer(w io.Writer, opts ...Option) *Player {
	p := &Player{w: w, clock: clock.New()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play writes every frame, waiting one cadence tick before each frame after the first.
// It returns early with the context error if ctx is canceled while waiting.
func (p *Player) Play(ctx context.Context, frames []domain.Frame) error {
	if len(frames) == 0 {
		return nil
	}

	var tick <-chan time.Time
	if p.cadence > 0 {
		ticker := p.clock.Ticker(p.cadence)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i, f := range frames {
		if i > 0 && tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		if _, err := io.WriteString(p.w, FormatFrame(f)+"\n"); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write frame"), "step", f.Step)
		}
	}
	return nil
}

// FormatFrame renders a frame as "step <n>  <node>  [<marks>]  <visited ids>".
// Marks hold one character per declared node: '#' for visited and '.' otherwise.
func FormatFrame(f domain.Frame) string {
	var marks strings.Builder
	for _, m := range f.Marked {
		if m {
			marks.WriteByte('#')
		} else {
			marks.WriteByte('.')
		}
	}

	visited := make([]string, len(f.Visited))
	for i, id := range f.Visited {
		visited[i] = id.String()
	}

	return fmt.Sprintf("step %d  %s  [%s]  %s", f.Step, f.Node, marks.String(), strings.Join(visited, " "))
}
