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

package gui

// the number of events that can be waiting in an EventQueue before key
// presses are discarded
const queueLimit = 64

// EventQueue holds events that could not yet be sent because the event
// channel was full. Key releases and quit events are never discarded, so a
// key can not be left held down by a busy channel. A key press is discarded
// if the queue is at its limit.
type EventQueue struct {
	pending []Event
}

// Push adds the event to the end of the queue.
func (q *EventQueue) Push(ev Event) {
	if kev, ok := ev.(EventKeyboard); ok && kev.Down && len(q.pending) >= queueLimit {
		return
	}
	q.pending = append(q.pending, ev)
}

// Flush sends queued events, in order, until the queue is empty or the
// channel is full. It never blocks.
func (q *EventQueue) Flush(eventChannel chan Event) {
	n := 0
done:
	for ; n < len(q.pending); n++ {
		select {
		case eventChannel <- q.pending[n]:
		default:
			break done
		}
	}
	q.pending = q.pending[:copy(q.pending, q.pending[n:])]
}

// Len returns the number of events waiting to be sent.
func (q *EventQueue) Len() int {
	return len(q.pending)
}
