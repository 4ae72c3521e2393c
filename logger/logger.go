package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission implementations decide whether an entry should be logged.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the Permission to use when logging should always happen.
var Allow Permission = allow{}

// Entry is a single entry in the log.
type Entry struct {
	Tag    string
	Detail string

	// the number of times the entry was repeated consecutively
	Repeated int
}

func (e Entry) String() string {
	if e.Repeated > 0 {
		return fmt.Sprintf("%s: %s (repeat x%d)", e.Tag, e.Detail, e.Repeated+1)
	}
	return fmt.Sprintf("%s: %s", e.Tag, e.Detail)
}

const maxEntries = 256

type logger struct {
	crit    sync.Mutex
	entries []Entry
	echo    io.Writer
}

var central = &logger{
	entries: make([]Entry, 0, maxEntries),
}

func (l *logger) log(tag string, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// tags are always lower case and details never have trailing whitespace
	tag = strings.ToLower(strings.TrimSpace(tag))
	detail = strings.TrimRight(detail, " \t\n")

	if n := len(l.entries); n > 0 {
		last := &l.entries[n-1]
		if last.Tag == tag && last.Detail == detail {
			last.Repeated++
			return
		}
	}

	if len(l.entries) >= maxEntries {
		l.entries = append(l.entries[:0], l.entries[1:]...)
	}

	e := Entry{Tag: tag, Detail: detail}
	l.entries = append(l.entries, e)

	if l.echo != nil {
		fmt.Fprintln(l.echo, e.String())
	}
}

func (l *logger) tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	n := len(l.entries)
	if number >= 0 && number < n {
		n = number
	}

	for _, e := range l.entries[len(l.entries)-n:] {
		fmt.Fprintln(output, e.String())
	}
}

func detailString(detail any) string {
	switch d := detail.(type) {
	case string:
		return d
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	}
	return fmt.Sprintf("%v", detail)
}

// Log adds an entry to the central log.
func Log(perm Permission, tag string, detail any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	central.log(tag, detailString(detail))
}

// Logf adds a formatted entry to the central log.
func Logf(perm Permission, tag string, format string, args ...any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	central.log(tag, fmt.Sprintf(format, args...))
}

// SetEcho prints new entries to the io.Writer as they arrive. A nil writer
// stops echoing. If writeRecent is true then the existing entries are written
// to the writer first.
func SetEcho(output io.Writer, writeRecent bool) {
	if output != nil && writeRecent {
		central.tail(output, -1)
	}
	central.crit.Lock()
	defer central.crit.Unlock()
	central.echo = output
}

// Tail writes the most recent entries to the io.Writer. A negative number
// writes every entry.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// Clear removes every entry from the central log.
func Clear() {
	central.crit.Lock()
	defer central.crit.Unlock()
	central.entries = central.entries[:0]
}
