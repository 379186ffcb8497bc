package vkstart

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Severity of a diagnostics message, ordered from least to most severe
type Severity int

const (
	SeverityVerbose Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityVerbose:
		return "VERBOSE"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// MessageType is a set of categories a diagnostics message belongs to
type MessageType uint32

const (
	MessageGeneral MessageType = 1 << iota
	MessageValidation
	MessagePerformance
)

func (t MessageType) String() string {
	if t == 0 {
		return "none"
	}
	var parts []string
	if t&MessageGeneral != 0 {
		parts = append(parts, "general")
	}
	if t&MessageValidation != 0 {
		parts = append(parts, "validation")
	}
	if t&MessagePerformance != 0 {
		parts = append(parts, "performance")
	}
	if rest := t &^ (MessageGeneral | MessageValidation | MessagePerformance); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// DebugMessage is a single message delivered through the diagnostics channel
type DebugMessage struct {
	Severity Severity
	Types    MessageType
	Layer    string
	Code     int32
	Text     string
}

// DebugCallback receives diagnostics messages, returning true asks the
// backend to abort the call which triggered the message.
type DebugCallback func(msg DebugMessage) bool

// DebugLogger writes every message to Out, and messages of warning severity
// and above to Highlight as well.
type DebugLogger struct {
	Out       *log.Logger
	Highlight *log.Logger
}

// NewDebugLogger logs to stdout and highlights to stderr
func NewDebugLogger() *DebugLogger {
	return &DebugLogger{
		Out:       log.New(os.Stdout, "validation: ", log.LstdFlags),
		Highlight: log.New(os.Stderr, "[WARN] validation: ", log.LstdFlags),
	}
}

// Callback is a DebugCallback, it never aborts the triggering call
func (d *DebugLogger) Callback(msg DebugMessage) bool {
	line := fmt.Sprintf("%s (%s) [%s] Code %d : %s", msg.Severity, msg.Types, msg.Layer, msg.Code, msg.Text)
	if d.Out != nil {
		d.Out.Println(line)
	}
	if msg.Severity >= SeverityWarning && d.Highlight != nil {
		d.Highlight.Println(line)
	}
	return false
}
