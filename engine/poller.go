package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/termhost/core"
	"github.com/lixenwraith/termhost/input"
	"github.com/lixenwraith/termhost/terminal"
)

// ErrInputClosed is reported when the terminal event source stops while the loop is running
var ErrInputClosed = errors.New("terminal input closed")

// message is one item on the engine queue: an event or a fatal input error
type message struct {
	ev  input.Event
	err error
}

// poller turns raw terminal events into a single ordered queue of host events
// interleaved with ticks
type poller struct {
	term     terminal.Terminal
	interval time.Duration
	out      chan<- message
	quit     <-chan struct{}
}

// run forwards events until quit is closed
// Ticks are scheduled against absolute deadlines so their cadence holds under input load
func (p *poller) run() {
	raw := make(chan tcell.Event, queueSize)
	core.Go(func() { p.term.ChannelEvents(raw, p.quit) })

	var asm input.PasteAssembler

	deadline := time.Now().Add(p.interval)
	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	for {
		select {
		case <-p.quit:
			return

		case ev, ok := <-raw:
			if !ok {
				select {
				case <-p.quit:
				default:
					p.send(message{err: errors.WithStack(ErrInputClosed)})
				}
				return
			}
			if e, ok := asm.Feed(ev); ok {
				if !p.send(message{ev: e}) {
					return
				}
			}

		case <-timer.C:
			if !p.send(message{ev: input.Tick()}) {
				return
			}

			now := time.Now()
			deadline = deadline.Add(p.interval)
			// Resync after falling far behind instead of bursting ticks
			if now.Sub(deadline) > p.interval*2 {
				deadline = now.Add(p.interval)
			}
			timer.Reset(max(deadline.Sub(now), 0))
		}
	}
}

// send blocks until the message is queued or quit is closed
func (p *poller) send(m message) bool {
	select {
	case p.out <- m:
		return true
	case <-p.quit:
		return false
	}
}
