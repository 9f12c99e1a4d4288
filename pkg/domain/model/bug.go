package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
)

// Firestore field names of a bug document
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldSeverity    = "severity"
	FieldStatus      = "status"
	FieldReporter    = "reporter"
	FieldAssignee    = "assignee"
	FieldCreatedAt   = "created_at"
	FieldUpdatedAt   = "updated_at"
)

// BugReport represents a single reported bug
type BugReport struct {
	ID          types.BugID     `firestore:"-"`
	Title       string          `firestore:"title"`
	Description string          `firestore:"description"`
	Severity    types.Severity  `firestore:"severity"`
	Status      types.BugStatus `firestore:"status"`
	Reporter    string          `firestore:"reporter"`
	Assignee    string          `firestore:"assignee"`
	CreatedAt   time.Time       `firestore:"created_at"`
	UpdatedAt   time.Time       `firestore:"updated_at"`
}

// NewBugReport creates a new BugReport. Unknown severity and status values silently
// fall back to medium and open.
func NewBugReport(title, description, severity, status, reporter, assignee string) *BugReport {
	now := time.Now().UTC()
	return &BugReport{
		Title:       title,
		Description: description,
		Severity:    types.ParseSeverity(severity),
		Status:      types.ParseBugStatus(status),
		Reporter:    reporter,
		Assignee:    assignee,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Touch refreshes the update timestamp
func (b *BugReport) Touch() {
	b.UpdatedAt = time.Now().UTC()
}

// Clone returns a copy of the bug report
func (b *BugReport) Clone() *BugReport {
	c := *b
	return &c
}

// Fields returns the persisted fields keyed by document field name
func (b *BugReport) Fields() map[string]any {
	return map[string]any{
		FieldTitle:       b.Title,
		FieldDescription: b.Description,
		FieldSeverity:    b.Severity.String(),
		FieldStatus:      b.Status.String(),
		FieldReporter:    b.Reporter,
		FieldAssignee:    b.Assignee,
		FieldCreatedAt:   b.CreatedAt,
		FieldUpdatedAt:   b.UpdatedAt,
	}
}

// BugReportFromMap decodes a stored document. Missing text fields become empty,
// unknown enums fall back to their defaults and timestamps may be either native
// times or ISO 8601 strings written by older clients.
func BugReportFromMap(id types.BugID, data map[string]any) (*BugReport, error) {
	bug := NewBugReport(
		stringField(data, FieldTitle),
		stringField(data, FieldDescription),
		stringField(data, FieldSeverity),
		stringField(data, FieldStatus),
		stringField(data, FieldReporter),
		stringField(data, FieldAssignee),
	)
	bug.ID = id

	createdAt, err := timeField(data, FieldCreatedAt)
	if err != nil {
		return nil, err
	}
	if !createdAt.IsZero() {
		bug.CreatedAt = createdAt
	}

	updatedAt, err := timeField(data, FieldUpdatedAt)
	if err != nil {
		return nil, err
	}
	if !updatedAt.IsZero() {
		bug.UpdatedAt = updatedAt
	}

	return bug, nil
}

func stringField(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		if s, ok := v.(interface{ String() string }); ok {
			return s.String()
		}
		return ""
	}
}

func timeField(data map[string]any, key string) (time.Time, error) {
	switch v := data[key].(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v.UTC(), nil
	case string:
		if v == "" {
			return time.Time{}, nil
		}
		return parseTimestamp(key, v)
	default:
		return time.Time{}, goerr.New("unsupported timestamp type",
			goerr.V("field", key),
			goerr.V("value", v))
	}
}

// timestampLayouts are tried in order. All but the first accept timestamps
// without zone, which are treated as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

func parseTimestamp(key, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, goerr.New("invalid timestamp",
		goerr.V("field", key),
		goerr.V("value", value))
}

// BugResponse is the JSON representation of a bug served by the API.
// ID and ReporterName duplicate BugID and Reporter for frontend compatibility.
type BugResponse struct {
	BugID        string    `json:"bug_id"`
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Severity     string    `json:"severity"`
	Status       string    `json:"status"`
	Reporter     string    `json:"reporter"`
	ReporterName string    `json:"reporter_name"`
	Assignee     string    `json:"assignee"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Response converts the bug into its API representation
func (b *BugReport) Response() *BugResponse {
	return &BugResponse{
		BugID:        b.ID.String(),
		ID:           b.ID.String(),
		Title:        b.Title,
		Description:  b.Description,
		Severity:     b.Severity.String(),
		Status:       b.Status.String(),
		Reporter:     b.Reporter,
		ReporterName: b.Reporter,
		Assignee:     b.Assignee,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
