package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Pos is a resolved source position: file name plus 1-based line/column.
// Column 0 means the column is unknown.
type Pos struct {
	File   string
	Line   int
	Column int
}

// Diagnostic is one finding attached to a source position.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  Pos
}
