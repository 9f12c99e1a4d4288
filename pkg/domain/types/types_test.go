package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
)

func TestSeverityValidation(t *testing.T) {
	tests := []struct {
		name     string
		severity types.Severity
		expected bool
	}{
		{"Valid low", types.SeverityLow, true},
		{"Valid medium", types.SeverityMedium, true},
		{"Valid high", types.SeverityHigh, true},
		{"Valid critical", types.SeverityCritical, true},
		{"Invalid empty", types.Severity(""), false},
		{"Invalid upper case", types.Severity("HIGH"), false},
		{"Invalid unknown", types.Severity("blocker"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.severity.IsValid()
			if result != tt.expected {
				t.Errorf("Severity(%q).IsValid() = %v, want %v", tt.severity, result, tt.expected)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	gt.Equal(t, types.ParseSeverity("critical"), types.SeverityCritical)
	gt.Equal(t, types.ParseSeverity("low"), types.SeverityLow)
	gt.Equal(t, types.ParseSeverity(""), types.SeverityMedium)
	gt.Equal(t, types.ParseSeverity("urgent"), types.SeverityMedium)
	gt.Equal(t, types.ParseSeverity("Critical"), types.SeverityMedium)
}

func TestBugStatusValidation(t *testing.T) {
	tests := []struct {
		name     string
		status   types.BugStatus
		expected bool
	}{
		{"Valid open", types.BugStatusOpen, true},
		{"Valid in_progress", types.BugStatusInProgress, true},
		{"Valid resolved", types.BugStatusResolved, true},
		{"Valid closed", types.BugStatusClosed, true},
		{"Invalid empty", types.BugStatus(""), false},
		{"Invalid hyphenated", types.BugStatus("in-progress"), false},
		{"Invalid unknown", types.BugStatus("wontfix"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.status.IsValid()
			if result != tt.expected {
				t.Errorf("BugStatus(%q).IsValid() = %v, want %v", tt.status, result, tt.expected)
			}
		})
	}
}

func TestParseBugStatus(t *testing.T) {
	gt.Equal(t, types.ParseBugStatus("resolved"), types.BugStatusResolved)
	gt.Equal(t, types.ParseBugStatus(""), types.BugStatusOpen)
	gt.Equal(t, types.ParseBugStatus("done"), types.BugStatusOpen)
}

func TestBugStatusPartitions(t *testing.T) {
	for _, s := range types.BugStatuses() {
		// every status is either active or done, never both
		gt.V(t, s.IsActive() != s.IsDone()).Equal(true)
	}
	gt.True(t, types.BugStatusInProgress.IsActive())
	gt.True(t, types.BugStatusClosed.IsDone())
}

func TestBugIDValidate(t *testing.T) {
	gt.NoError(t, types.BugID("abc").Validate())
	gt.Error(t, types.BugID("").Validate())
	gt.V(t, types.NewBugID()).NotEqual(types.BugID(""))
}
