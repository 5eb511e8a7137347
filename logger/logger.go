// Package logger is the central log for the application. There is only ever
// one log and entries are added to it with the Log() and Logf() functions.
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should always be allowed
var Allow Permission = allow{}

// Entry represents a single line in the log
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	repeated  int
}

func (e Entry) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

type logger struct {
	// the gui and the emulation both write to the log
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// if echo is not nil then new entries are written to it as they are added
	echo io.Writer
}

// maximum number of entries in the central log
const maxCentral = 256

var central = &logger{
	maxEntries: maxCentral,
}

func (l *logger) log(tag string, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", " ")

	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		l.entries[n-1].repeated++
		l.entries[n-1].Timestamp = time.Now()
	} else {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: detail})
	}

	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}

	if l.echo != nil {
		io.WriteString(l.echo, l.entries[len(l.entries)-1].String())
	}
}

// Log adds an entry to the central log. The detail argument can be a string,
// an error, a fmt.Stringer or any other value that can be formatted with %v
func Log(perm Permission, tag string, detail any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	switch d := detail.(type) {
	case string:
		central.log(tag, d)
	case error:
		central.log(tag, d.Error())
	case fmt.Stringer:
		central.log(tag, d.String())
	default:
		central.log(tag, fmt.Sprintf("%v", d))
	}
}

// Logf adds a formatted entry to the central log
func Logf(perm Permission, tag string, detail string, args ...any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	central.log(tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from the central log
func Clear() {
	central.crit.Lock()
	defer central.crit.Unlock()
	central.entries = central.entries[:0]
}

// Write all entries to io.Writer
func Write(output io.Writer) {
	Tail(output, -1)
}

// Tail writes the last N entries to io.Writer. A negative number writes every
// entry
func Tail(output io.Writer, number int) {
	central.crit.Lock()
	defer central.crit.Unlock()

	if number < 0 || number > len(central.entries) {
		number = len(central.entries)
	}
	for _, e := range central.entries[len(central.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho writes new entries to io.Writer as they are added. A nil argument
// stops the echo
func SetEcho(output io.Writer) {
	central.crit.Lock()
	defer central.crit.Unlock()
	central.echo = output
}

// Len returns the number of entries in the central log
func Len() int {
	central.crit.Lock()
	defer central.crit.Unlock()
	return len(central.entries)
}
