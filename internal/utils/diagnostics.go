package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
	DiagnosticVerbose
	DiagnosticDebug
)

// levelTag is the prefix written before messages of a level
type levelTag struct {
	label string
	attr  color.Attribute
}

var levelTags = map[DiagnosticLevel]levelTag{
	DiagnosticError:   {"ERROR", color.FgRed},
	DiagnosticWarn:    {"WARN", color.FgYellow},
	DiagnosticInfo:    {"INFO", color.FgBlue},
	DiagnosticVerbose: {"VERBOSE", color.FgHiBlack},
	DiagnosticDebug:   {"DEBUG", color.FgMagenta},
}

// DiagnosticSystem writes levelled console output for a generation run.
// Errors go to the error writer, everything else to the output writer.
type DiagnosticSystem struct {
	level     DiagnosticLevel
	useColors bool
	showTime  bool
	output    io.Writer
	errorOut  io.Writer
	progress  string
	started   time.Time
}

// NewDiagnosticSystemWithWriters creates a diagnostic system writing messages
// to output and errors to errorOut
func NewDiagnosticSystemWithWriters(level DiagnosticLevel, output, errorOut io.Writer) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:     level,
		useColors: shouldUseColors(),
		showTime:  level >= DiagnosticVerbose,
		output:    output,
		errorOut:  errorOut,
	}
}

// NewBufferedDiagnostics creates an uncolored diagnostic system writing both
// streams to out. Timestamps are never shown, so output can be compared.
func NewBufferedDiagnostics(level DiagnosticLevel, out io.Writer) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:    level,
		output:   out,
		errorOut: out,
	}
}

// Level returns the configured level
func (d *DiagnosticSystem) Level() DiagnosticLevel {
	return d.level
}

// Error reports a failure (always shown unless silent)
func (d *DiagnosticSystem) Error(format string, args ...interface{}) {
	d.log(d.errorOut, DiagnosticError, format, args...)
}

// Warn reports a problem that does not stop the run, such as a malformed
// declaration or a name collision
func (d *DiagnosticSystem) Warn(format string, args ...interface{}) {
	d.log(d.output, DiagnosticWarn, format, args...)
}

// Info outputs informational messages
func (d *DiagnosticSystem) Info(format string, args ...interface{}) {
	d.log(d.output, DiagnosticInfo, format, args...)
}

// Success outputs a green confirmation at info level
func (d *DiagnosticSystem) Success(format string, args ...interface{}) {
	if d.level < DiagnosticInfo {
		return
	}
	d.colorize(color.FgGreen).Fprint(d.output, "✓ ")
	fmt.Fprintf(d.output, "%s\n", fmt.Sprintf(format, args...))
}

// Verbose outputs per-document details
func (d *DiagnosticSystem) Verbose(format string, args ...interface{}) {
	d.log(d.output, DiagnosticVerbose, format, args...)
}

// Debug outputs parser internals such as abandoned declarations
func (d *DiagnosticSystem) Debug(format string, args ...interface{}) {
	d.log(d.output, DiagnosticDebug, format, args...)
}

// StartProgress remembers the step being run; EndProgress reports it
func (d *DiagnosticSystem) StartProgress(step string) {
	d.progress = step
	d.started = time.Now()
	d.Verbose("%s...", step)
}

// EndProgress reports the outcome of the step started last. detail, when
// set, is appended to the step name.
func (d *DiagnosticSystem) EndProgress(ok bool, detail string) {
	step := d.progress
	if step == "" {
		return
	}
	if detail != "" {
		step += " (" + detail + ")"
	}
	d.progress = ""

	if !ok {
		d.Verbose("%s failed", step)
		return
	}
	if d.showTime {
		d.Verbose("%s done in %s", step, time.Since(d.started).Round(time.Millisecond))
		return
	}
	d.PhaseItem(step)
}

// Subsection creates a subsection header
func (d *DiagnosticSystem) Subsection(title string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "\n%s:\n", title)
	}
}

// List outputs a bulleted list item
func (d *DiagnosticSystem) List(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "- %s\n", fmt.Sprintf(format, args...))
	}
}

// SummaryItem is one line of a summary
type SummaryItem struct {
	Label string
	Value interface{}
}

// Summary outputs the run statistics in the order given
func (d *DiagnosticSystem) Summary(title string, items []SummaryItem) {
	if d.level < DiagnosticInfo {
		return
	}
	fmt.Fprintf(d.output, "\n%s\n", title)
	for _, item := range items {
		fmt.Fprintf(d.output, "   %s: %v\n", item.Label, item.Value)
	}
	fmt.Fprintln(d.output)
}

// Header outputs the tool header
func (d *DiagnosticSystem) Header(message string) {
	if d.level >= DiagnosticInfo {
		d.colorize(color.FgCyan).Fprintf(d.output, "flatgen: %s\n", message)
	}
}

// PhaseItem outputs a finished step with a checkmark
func (d *DiagnosticSystem) PhaseItem(message string) {
	if d.level >= DiagnosticInfo {
		d.colorize(color.FgGreen).Fprint(d.output, "✓ ")
		fmt.Fprintf(d.output, "%s\n", message)
	}
}

// PhaseProgress outputs a step in progress. Writes get their own marker.
func (d *DiagnosticSystem) PhaseProgress(message string) {
	if d.level < DiagnosticInfo {
		return
	}
	if strings.HasPrefix(message, "Writing") {
		d.colorize(color.FgMagenta).Fprint(d.output, "✏ ")
		fmt.Fprintf(d.output, "%s\n", message)
		return
	}
	fmt.Fprintf(d.output, "- %s\n", message)
}

// GenerationComplete outputs the completion message
func (d *DiagnosticSystem) GenerationComplete() {
	if d.level >= DiagnosticInfo {
		fmt.Fprintln(d.output)
		d.colorize(color.FgGreen).Fprintln(d.output, "flatgen: Generation complete!")
	}
}

func (d *DiagnosticSystem) colorize(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if d.useColors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// log writes one tagged line if level is enabled
func (d *DiagnosticSystem) log(writer io.Writer, level DiagnosticLevel, format string, args ...interface{}) {
	if d.level < level {
		return
	}
	tag := levelTags[level]

	var line strings.Builder
	if d.showTime {
		line.WriteString(time.Now().Format("15:04:05 "))
	}
	line.WriteString(d.colorize(tag.attr).Sprintf("[%s]", tag.label))
	line.WriteString(" ")
	line.WriteString(fmt.Sprintf(format, args...))
	line.WriteString("\n")

	fmt.Fprint(writer, line.String())
}

// shouldUseColors honours NO_COLOR and FORCE_COLOR, then falls back to TERM
func shouldUseColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}
