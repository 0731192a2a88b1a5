package diagnostic

import (
	"fmt"
	"strings"

	"capnp-generator/internal/common"
)

// Diagnostic codes reported during classification and walking.
const (
	CodeOptionalMalformed = "optional-malformed"
	CodeTypeFallback      = "type-fallback"
	CodeAnonymousSkipped  = "anonymous-skipped"
)

// Diagnostics collects non-fatal findings from a run. None of them
// change the exit status; they exist so the user can see which fields
// fell back to Text and which declarations were skipped.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Record names the declaration this relates to (if any).
	Record string
	// Field names the field this relates to (if any).
	Field string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, record, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Record:   record,
		Field:    field,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, record, field string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Record:   record,
		Field:    field,
	})
}

// Empty returns true if nothing was collected.
func (d *Diagnostics) Empty() bool {
	return common.IsEmpty(d.Warnings) && common.IsEmpty(d.Infos)
}

// Summary renders all diagnostics, warnings first, one per line.
func (d *Diagnostics) Summary() string {
	var b strings.Builder

	for _, diag := range d.Warnings {
		b.WriteString(diag.String())
		b.WriteByte('\n')
	}

	for _, diag := range d.Infos {
		b.WriteString(diag.String())
		b.WriteByte('\n')
	}

	return b.String()
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	loc := d.Record
	if d.Field != "" {
		loc = d.Record + "." + d.Field
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if loc == "" {
		return fmt.Sprintf("%s: %s", d.Severity, msg)
	}

	return fmt.Sprintf("%s %s: %s", d.Severity, loc, msg)
}
