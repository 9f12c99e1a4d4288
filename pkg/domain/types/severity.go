package types

// Severity represents how badly a bug hurts
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// DefaultSeverity is used when the given severity is not a known value
const DefaultSeverity = SeverityMedium

// Severities returns all severities from least to most severe
func Severities() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// ParseSeverity converts a string into Severity, falling back to DefaultSeverity
func ParseSeverity(s string) Severity {
	sev := Severity(s)
	if !sev.IsValid() {
		return DefaultSeverity
	}
	return sev
}
