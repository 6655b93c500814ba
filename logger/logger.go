// This file is part of GopherPC.
//
// GopherPC is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPC is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPC.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the emulation. Chip implementations
// log through the package level functions, tagging each entry with the name
// of the sub-system it originates from. The log is kept in memory and can be
// written out on demand or echoed to an io.Writer as entries arrive.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// maximum number of entries in the central logger before the earliest entry
// is dropped.
const maxEntries = 256

type logger struct {
	mu      sync.Mutex
	entries []Entry

	// the echo writer receives every new entry as it arrives
	echo io.Writer
}

var central = &logger{
	entries: make([]Entry, 0, maxEntries),
}

// Log adds a new entry to the central logger. Repeats of the most recent
// entry are folded rather than appended. Multi-line details are split into
// separate entries.
func Log(tag, detail string) {
	for _, d := range strings.Split(detail, "\n") {
		if len(d) > 0 {
			central.log(tag, d)
		}
	}
}

func (l *logger) log(tag, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) > 0 {
		last := &l.entries[len(l.entries)-1]
		if last.Tag == tag && last.Detail == detail {
			last.repeated++
			return
		}
	}

	e := Entry{
		Timestamp: time.Now(),
		Tag:       tag,
		Detail:    detail,
	}

	if len(l.entries) >= maxEntries {
		l.entries = l.entries[1:]
	}
	l.entries = append(l.entries, e)

	if l.echo != nil {
		l.echo.Write([]byte(e.String()))
	}
}

// Logf adds a new formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	Log(tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from the central logger.
func Clear() {
	central.mu.Lock()
	defer central.mu.Unlock()
	central.entries = central.entries[:0]
}

// Write the contents of the central logger to the io.Writer.
func Write(output io.Writer) {
	central.mu.Lock()
	defer central.mu.Unlock()
	for i := range central.entries {
		io.WriteString(output, central.entries[i].String())
	}
}

// Tail writes the last N entries of the central logger to the io.Writer. A
// negative number writes every entry.
func Tail(output io.Writer, number int) {
	central.mu.Lock()
	defer central.mu.Unlock()

	s := len(central.entries) - number
	if number < 0 || s < 0 {
		s = 0
	}
	for i := s; i < len(central.entries); i++ {
		io.WriteString(output, central.entries[i].String())
	}
}

// SetEcho to print new entries to io.Writer as they arrive. A nil writer
// stops any echoing. If writeRecent is true then the current contents of the
// log are written out before echoing begins.
func SetEcho(output io.Writer, writeRecent bool) {
	central.mu.Lock()
	central.echo = output
	central.mu.Unlock()

	if output != nil && writeRecent {
		Write(output)
	}
}

// BorrowLog gives the provided function the opportunity to inspect the
// current log entries. The slice must not be retained after the function
// returns.
func BorrowLog(f func([]Entry)) {
	central.mu.Lock()
	defer central.mu.Unlock()
	f(central.entries)
}
