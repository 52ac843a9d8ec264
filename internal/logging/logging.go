// Package logging provides an asynchronous structured logger on top of
// charmbracelet/log. Callers on the frame loop never block on I/O: records
// go through a bounded queue and are dropped when it is full.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// DefaultBuffer is the queue size used when Options.Buffer is not positive.
const DefaultBuffer = 256

// Options configure an Async logger.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Buffer is the queue capacity in records.
	Buffer int
	// Prefix is prepended to every line.
	Prefix string
	// Timestamps enables the time column.
	Timestamps bool
}

type record struct {
	logger  *log.Logger
	level   log.Level
	msg     any
	keyvals []any
}

// Async writes log records from a single background goroutine.
type Async struct {
	logger  *log.Logger
	out     io.Writer
	options log.Options
	queue   chan record
	done    chan struct{}
	dropped atomic.Uint64
	// level mirrors the logger's level so enqueue never touches the
	// charm logger, whose lock the writer holds while writing.
	level atomic.Int32

	mu     sync.RWMutex
	closed bool
}

// ParseLevel parses a level name. The empty string is info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// New starts an Async logger writing to w.
func New(w io.Writer, opts Options) (*Async, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	size := opts.Buffer
	if size <= 0 {
		size = DefaultBuffer
	}

	options := log.Options{
		ReportTimestamp: opts.Timestamps,
		Prefix:          opts.Prefix,
		Level:           lvl,
	}
	a := &Async{
		logger:  log.NewWithOptions(w, options),
		out:     w,
		options: options,
		queue:   make(chan record, size),
		done:    make(chan struct{}),
	}
	a.level.Store(int32(lvl))
	go a.run()
	return a, nil
}

// Discard returns a started logger that writes nowhere.
func Discard() *Async {
	a, _ := New(io.Discard, Options{Level: "error", Buffer: 1})
	return a
}

func (a *Async) run() {
	defer close(a.done)
	for r := range a.queue {
		r.logger.Log(r.level, r.msg, r.keyvals...)
	}
}

func (a *Async) enqueue(l *log.Logger, lvl log.Level, msg any, keyvals []any) {
	if int32(lvl) < a.level.Load() {
		return
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return
	}

	select {
	case a.queue <- record{logger: l, level: lvl, msg: msg, keyvals: keyvals}:
	default:
		a.dropped.Add(1)
	}
}

// Dropped returns the number of records lost to a full queue.
func (a *Async) Dropped() uint64 {
	return a.dropped.Load()
}

// Close drains the queue and stops the writer goroutine. Records logged
// after Close are discarded.
func (a *Async) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		<-a.done
		return
	}
	a.closed = true
	close(a.queue)
	a.mu.Unlock()

	<-a.done
	if n := a.Dropped(); n > 0 {
		a.logger.Warn("log records dropped", "count", n)
	}
}

// With returns a logger whose lines carry the given tag as prefix.
func (a *Async) With(tag string) *Tagged {
	prefix := tag
	if p := a.options.Prefix; p != "" {
		prefix = p + "/" + tag
	}
	return a.tagged(prefix)
}

// tagged builds a separate charm logger on the same writer. Only the writer
// goroutine ever logs through it, so the lines stay serialized.
func (a *Async) tagged(prefix string) *Tagged {
	options := a.options
	options.Prefix = prefix
	return &Tagged{parent: a, prefix: prefix, logger: log.NewWithOptions(a.out, options)}
}

// Debug logs at debug level without a tag.
func (a *Async) Debug(msg any, keyvals ...any) { a.enqueue(a.logger, log.DebugLevel, msg, keyvals) }

// Info logs at info level without a tag.
func (a *Async) Info(msg any, keyvals ...any) { a.enqueue(a.logger, log.InfoLevel, msg, keyvals) }

// Warn logs at warn level without a tag.
func (a *Async) Warn(msg any, keyvals ...any) { a.enqueue(a.logger, log.WarnLevel, msg, keyvals) }

// Error logs at error level without a tag.
func (a *Async) Error(msg any, keyvals ...any) { a.enqueue(a.logger, log.ErrorLevel, msg, keyvals) }

// Tagged is a component logger sharing its parent's queue.
type Tagged struct {
	parent *Async
	prefix string
	logger *log.Logger
}

// Debug logs at debug level under the tag.
func (t *Tagged) Debug(msg any, keyvals ...any) {
	t.parent.enqueue(t.logger, log.DebugLevel, msg, keyvals)
}

// Info logs at info level under the tag.
func (t *Tagged) Info(msg any, keyvals ...any) {
	t.parent.enqueue(t.logger, log.InfoLevel, msg, keyvals)
}

// Warn logs at warn level under the tag.
func (t *Tagged) Warn(msg any, keyvals ...any) {
	t.parent.enqueue(t.logger, log.WarnLevel, msg, keyvals)
}

// Error logs at error level under the tag.
func (t *Tagged) Error(msg any, keyvals ...any) {
	t.parent.enqueue(t.logger, log.ErrorLevel, msg, keyvals)
}

// Printf logs a formatted info line. It lets Tagged serve as the logger of
// the SSH logging middleware.
func (t *Tagged) Printf(format string, args ...any) {
	t.Info(fmt.Sprintf(format, args...))
}

// With returns a logger with tag appended to this logger's prefix.
func (t *Tagged) With(tag string) *Tagged {
	return t.parent.tagged(t.prefix + "/" + tag)
}
