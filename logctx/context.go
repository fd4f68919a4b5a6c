// Package logctx provides the threaded logging and timing collaborator
// used throughout the refinement and contour pipelines in place of ambient
// print statements or package-level state: the pipeline entry points and
// the refinement driver take a *RunContext explicitly and report progress,
// warnings and per-pass counters through it.
package logctx

import (
	"fmt"
	"time"
)

// Category classifies a logged message.
type Category int

const (
	Progress Category = iota
	Warning
	Error
)

func (c Category) prefix() string {
	switch c {
	case Progress:
		return "PROG"
	case Warning:
		return "WARN"
	case Error:
		return "ERR "
	default:
		return "?   "
	}
}

// Logger is the narrow interface refinement and contour code depend on.
type Logger interface {
	Progress(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
}

const maxMessages = 512

// RunContext is the concrete Logger: a bounded ring of recent messages plus
// named timer accumulators and the refinement-pass counters a --verbose
// run reports.
type RunContext struct {
	Verbose bool

	messages   [maxMessages]string
	messageLen int

	timers map[string]time.Duration
	starts map[string]time.Time

	Collapses    int
	FlipsByAngle int
	FlipsByError int
	TriInserts   int
	VertexInserts int

	VertexErrSeries []float64
	TriErrSeries    []float64
}

// New returns a ready-to-use RunContext.
func New(verbose bool) *RunContext {
	return &RunContext{
		Verbose: verbose,
		timers:  make(map[string]time.Duration),
		starts:  make(map[string]time.Time),
	}
}

func (c *RunContext) log(cat Category, format string, args ...interface{}) {
	msg := cat.prefix() + " " + fmt.Sprintf(format, args...)
	if c.messageLen < maxMessages {
		c.messages[c.messageLen] = msg
		c.messageLen++
	} else {
		copy(c.messages[:], c.messages[1:])
		c.messages[maxMessages-1] = msg
	}
	if c.Verbose {
		fmt.Println(msg)
	}
}

func (c *RunContext) Progress(format string, args ...interface{}) { c.log(Progress, format, args...) }
func (c *RunContext) Warning(format string, args ...interface{})  { c.log(Warning, format, args...) }
func (c *RunContext) Error(format string, args ...interface{})    { c.log(Error, format, args...) }

// LogCount returns the number of retained log messages.
func (c *RunContext) LogCount() int { return c.messageLen }

// LogText returns the i'th retained log message.
func (c *RunContext) LogText(i int) string { return c.messages[i] }

// DumpLog prints every retained message, headed by a title line.
func (c *RunContext) DumpLog(title string) {
	fmt.Println(title)
	for i := 0; i < c.messageLen; i++ {
		fmt.Println(c.messages[i])
	}
}

// StartTimer begins (or restarts) accumulation for the named timer.
func (c *RunContext) StartTimer(label string) {
	c.starts[label] = time.Now()
}

// StopTimer adds the elapsed time since the matching StartTimer call into
// the named timer's running total.
func (c *RunContext) StopTimer(label string) {
	start, ok := c.starts[label]
	if !ok {
		return
	}
	c.timers[label] += time.Since(start)
	delete(c.starts, label)
}

// AccumulatedTime returns the named timer's running total.
func (c *RunContext) AccumulatedTime(label string) time.Duration {
	return c.timers[label]
}

// ResetLog clears all retained messages.
func (c *RunContext) ResetLog() {
	c.messageLen = 0
}

// ResetTimers clears all timer state.
func (c *RunContext) ResetTimers() {
	c.timers = make(map[string]time.Duration)
	c.starts = make(map[string]time.Time)
}

// RecordIterationErrors appends one refinement iteration's mean vertex and
// triangle error to the per-run series used for --verbose reporting.
func (c *RunContext) RecordIterationErrors(vErr, tErr float64) {
	c.VertexErrSeries = append(c.VertexErrSeries, vErr)
	c.TriErrSeries = append(c.TriErrSeries, tErr)
}
