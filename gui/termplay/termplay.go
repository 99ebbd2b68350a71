// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package termplay implements the gui.GUI interface for ANSI terminals. Two
// rows of the display are drawn in each line of text with half block
// characters.
//
// Terminals do not report key releases. A key press is held down for a short
// number of frames before being released automatically.
package termplay

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/term"

	"github.com/Martianmellow12/CHIP-8/beeper"
	"github.com/Martianmellow12/CHIP-8/curated"
	"github.com/Martianmellow12/CHIP-8/gui"
	"github.com/Martianmellow12/CHIP-8/hardware/display"
)

// the number of calls to Service() for which a key is held down
const holdFrames = 6

// the escape byte begins the ANSI sequences sent by cursor and function keys
// as well as being the escape key itself
const escape = 0x1b

// state of escape sequence parsing
type sequence int

const (
	seqNone sequence = iota
	seqEscape
	seqControl
)

// ANSI sequences
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	bell        = "\a"
)

// TermPlay is a terminal implementation of the gui.GUI interface.
type TermPlay struct {
	tty *term.Term

	// output is normally the same as tty
	output io.Writer

	eventChannel chan gui.Event

	// bytes read from the terminal by the reader goroutine
	input chan byte
	done  chan bool

	// keys currently held and the number of frames remaining
	held map[string]int

	// events waiting to be sent over the event channel
	queue gui.EventQueue

	// progress through an escape sequence read from the terminal
	seq sequence

	// whether the previous call to SetAudio() contained sound
	beeping bool
}

// NewTermPlay opens the controlling terminal and puts it into cbreak mode.
func NewTermPlay() (*TermPlay, error) {
	tty, err := term.Open("/dev/tty", term.CBreakMode, term.ReadTimeout(100*time.Millisecond))
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	tp := newTermPlay(tty)
	tp.tty = tty

	go tp.reader(tty)

	_, err = io.WriteString(tp.output, clearScreen+hideCursor)
	if err != nil {
		tp.Destroy()
		return nil, curated.Errorf("termplay: %v", err)
	}

	return tp, nil
}

func newTermPlay(output io.Writer) *TermPlay {
	return &TermPlay{
		output: output,
		input:  make(chan byte, 64),
		done:   make(chan bool),
		held:   make(map[string]int),
	}
}

// reader runs in its own goroutine until Destroy() is called. Reads time out
// so the done channel is checked regularly.
func (tp *TermPlay) reader(r io.Reader) {
	b := make([]byte, 16)
	for {
		n, _ := r.Read(b)
		for _, c := range b[:n] {
			select {
			case tp.input <- c:
			case <-tp.done:
				return
			}
		}

		select {
		case <-tp.done:
			return
		default:
		}
	}
}

// SetEventChannel implements the gui.GUI interface.
func (tp *TermPlay) SetEventChannel(eventChannel chan gui.Event) {
	tp.eventChannel = eventChannel
}

// Service implements the gui.GUI interface.
func (tp *TermPlay) Service() error {
	if tp.eventChannel == nil {
		return nil
	}

	// release keys that have been held long enough
	for k, n := range tp.held {
		n--
		if n <= 0 {
			delete(tp.held, k)
			tp.send(gui.EventKeyboard{Key: k, Down: false})
		} else {
			tp.held[k] = n
		}
	}

	for drained := false; !drained; {
		select {
		case b := <-tp.input:
			tp.decode(b)
		default:
			drained = true
		}
	}

	// an escape byte with nothing following it is the escape key
	if tp.seq == seqEscape {
		tp.seq = seqNone
		tp.send(gui.EventKeyboard{Key: "Escape", Down: true})
	}

	tp.queue.Flush(tp.eventChannel)
	return nil
}

// decode separates the escape key from the escape sequences sent by cursor
// and function keys. Sequences are ignored.
func (tp *TermPlay) decode(b byte) {
	switch tp.seq {
	case seqEscape:
		tp.seq = seqNone
		if b == '[' || b == 'O' {
			tp.seq = seqControl
			return
		}
		// the previous escape byte stood on its own
		tp.send(gui.EventKeyboard{Key: "Escape", Down: true})

	case seqControl:
		// the sequence ends with a byte in the range @ to ~
		if b >= 0x40 && b <= 0x7e {
			tp.seq = seqNone
		}
		return
	}

	if b == escape {
		tp.seq = seqEscape
		return
	}

	tp.press(b)
}

func (tp *TermPlay) press(b byte) {
	// printable characters only
	if b < 0x20 || b > 0x7e {
		return
	}

	key := strings.ToUpper(string(rune(b)))

	// a repeated key extends the hold without sending another event
	if _, ok := tp.held[key]; !ok {
		tp.send(gui.EventKeyboard{Key: key, Down: true})
	}
	tp.held[key] = holdFrames
}

// Render implements the gui.GUI interface.
func (tp *TermPlay) Render(frame display.Frame) error {
	_, err := io.WriteString(tp.output, renderFrame(frame))
	if err != nil {
		return curated.Errorf("termplay: %v", err)
	}
	return nil
}

// renderFrame returns the frame as a string of half block characters,
// preceded by an ANSI sequence that moves the cursor to the top left.
func renderFrame(frame display.Frame) string {
	var s strings.Builder
	s.WriteString(cursorHome)

	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x++ {
			top := frame[y][x] != 0
			bottom := frame[y+1][x] != 0
			switch {
			case top && bottom:
				s.WriteRune('█')
			case top:
				s.WriteRune('▀')
			case bottom:
				s.WriteRune('▄')
			default:
				s.WriteRune(' ')
			}
		}
		s.WriteString("\r\n")
	}

	return s.String()
}

// SetAudio implements the beeper.Mixer interface. The terminal bell is rung
// at the start of each beep.
func (tp *TermPlay) SetAudio(samples []uint8) error {
	on := len(samples) > 0 && !beeper.IsSilent(samples)
	if on && !tp.beeping {
		_, err := io.WriteString(tp.output, bell)
		if err != nil {
			return curated.Errorf("termplay: %v", err)
		}
	}
	tp.beeping = on
	return nil
}

// EndMixing implements the beeper.Mixer interface.
func (tp *TermPlay) EndMixing() error {
	return nil
}

// Destroy implements the gui.GUI interface.
func (tp *TermPlay) Destroy() {
	close(tp.done)
	_, _ = io.WriteString(tp.output, showCursor)
	if tp.tty != nil {
		_ = tp.tty.Restore()
		_ = tp.tty.Close()
	}
}

// send event without blocking. events that do not fit in the channel are
// queued until the next call to Service()
func (tp *TermPlay) send(ev gui.Event) {
	tp.queue.Push(ev)
}
