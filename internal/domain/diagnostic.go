package domain

import "fmt"

// DiagnosticKind classifies a load diagnostic
type DiagnosticKind int

const (
	KindMissingField DiagnosticKind = iota
	KindDuplicate
	KindUnknownPrerequisite
	KindSelfPrerequisite
	KindCycle
	KindSourceError
	KindTiming
)

func (k DiagnosticKind) String() string {
	switch k {
	case KindMissingField:
		return "MissingField"
	case KindDuplicate:
		return "Duplicate"
	case KindUnknownPrerequisite:
		return "UnknownPrerequisite"
	case KindSelfPrerequisite:
		return "SelfPrerequisite"
	case KindCycle:
		return "Cycle"
	case KindSourceError:
		return "SourceError"
	case KindTiming:
		return "Timing"
	default:
		return "Unknown"
	}
}

// Diagnostic is one issue found while loading a catalog.
// Line is 1-based; zero means the issue is not tied to a source line.
type Diagnostic struct {
	Line   int
	Kind   DiagnosticKind
	Detail string
}

// HasLine reports whether the diagnostic carries a source line number
func (d Diagnostic) HasLine() bool {
	return d.Line > 0
}

func (d Diagnostic) String() string {
	if d.HasLine() {
		return fmt.Sprintf("[line %d] %s: %s", d.Line, d.Kind, d.Detail)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Detail)
}
