// This file is part of Gopherworld.
//
// Gopherworld is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherworld is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherworld.  If not, see <https://www.gnu.org/licenses/>.

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
	Repeated  int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	return s.String()
}

// Logger is a list of log entries. The central logger is an instance of this
// type but separate instances can be created with NewLogger() if required.
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// the index of the first entry that has not yet been written by
	// WriteRecent()
	recentStart int

	echo io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// Log adds an entry to the log. The detail argument is converted to a string
// according to its type. Errors and Stringers are handled explicitly, any
// other type is formatted with the %v verb.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}

	var s string
	switch d := detail.(type) {
	case string:
		s = d
	case error:
		s = d.Error()
	case fmt.Stringer:
		s = d.String()
	default:
		s = fmt.Sprintf("%v", d)
	}

	l.crit.Lock()
	defer l.crit.Unlock()
	l.log(tag, s)
}

// Logf adds a formatted entry to the log.
func (l *Logger) Logf(perm Permission, tag string, pattern string, args ...any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}

	l.crit.Lock()
	defer l.crit.Unlock()
	l.log(tag, fmt.Sprintf(pattern, args...))
}

func (l *Logger) log(tag string, detail string) {
	// newline characters would break the one entry per line output
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", " ")

	if len(l.entries) > 0 {
		last := &l.entries[len(l.entries)-1]
		if last.Tag == tag && last.Detail == detail {
			last.Repeated++
			last.Timestamp = time.Now()
			if l.echo != nil {
				io.WriteString(l.echo, last.String())
				io.WriteString(l.echo, "\n")
			}
			return
		}
	}

	l.entries = append(l.entries, Entry{
		Timestamp: time.Now(),
		Tag:       tag,
		Detail:    detail,
	})

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		drop := len(l.entries) - l.maxEntries
		l.entries = l.entries[drop:]
		l.recentStart -= drop
		if l.recentStart < 0 {
			l.recentStart = 0
		}
	}

	if l.echo != nil {
		io.WriteString(l.echo, l.entries[len(l.entries)-1].String())
		io.WriteString(l.echo, "\n")
	}
}

// Clear all entries from the log.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
	l.recentStart = 0
}

// Write contents of the log to io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.write(output, l.entries)
}

// WriteRecent writes the entries added since the last call to WriteRecent.
func (l *Logger) WriteRecent(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.write(output, l.entries[l.recentStart:])
	l.recentStart = len(l.entries)
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}
	if number < 0 {
		number = 0
	}

	l.write(output, l.entries[len(l.entries)-number:])
}

func (l *Logger) write(output io.Writer, entries []Entry) {
	if output == nil {
		return
	}
	for _, e := range entries {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}

// SetEcho prints new log entries to io.Writer as they are made. A nil
// io.Writer turns echoing off.
func (l *Logger) SetEcho(output io.Writer, writeRecent bool) {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.echo = output
	if writeRecent {
		l.write(output, l.entries[l.recentStart:])
		l.recentStart = len(l.entries)
	}
}

// BorrowLog gives the provided function the critical section and access to
// the list of log entries.
func (l *Logger) BorrowLog(f func([]Entry)) {
	l.crit.Lock()
	defer l.crit.Unlock()
	f(l.entries)
}
