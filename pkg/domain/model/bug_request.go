package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
)

// RequiredCreateFields lists the fields a new bug report must carry
var RequiredCreateFields = []string{"title", "description", "severity", "reporter"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateBugRequest is the input for creating a bug report
type CreateBugRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Severity    string `json:"severity" validate:"required,oneof=low medium high critical"`
	Reporter    string `json:"reporter" validate:"required,max=100"`
	Assignee    string `json:"assignee" validate:"max=100"`

	// severitySent is set when the decoded JSON carried a severity key,
	// even an empty or null one
	severitySent bool
}

// UnmarshalJSON decodes the request and records whether severity was sent
func (r *CreateBugRequest) UnmarshalJSON(data []byte) error {
	type plain CreateBugRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	keys, err := presentKeys(data)
	if err != nil {
		return err
	}

	*r = CreateBugRequest(p)
	r.severitySent = keys[FieldSeverity]
	return nil
}

// Normalize trims text fields and applies the default severity when none was sent.
// An explicitly empty severity stays empty and fails validation.
func (r *CreateBugRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Reporter = strings.TrimSpace(r.Reporter)
	r.Assignee = strings.TrimSpace(r.Assignee)
	if r.Severity == "" && !r.severitySent {
		r.Severity = types.DefaultSeverity.String()
	}
}

// Validate checks the request. Severity is strict here even though the model
// itself falls back silently.
func (r *CreateBugRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

// BugUpdateRequest holds a partial update. Nil fields are left untouched.
type BugUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty"`
	Severity    *string `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress resolved closed"`
	Reporter    *string `json:"reporter,omitempty" validate:"omitempty,max=100"`
	Assignee    *string `json:"assignee,omitempty" validate:"omitempty,max=100"`
}

// UnmarshalJSON decodes the request. A null severity or status is kept as an
// empty value so that it is rejected instead of ignored.
func (r *BugUpdateRequest) UnmarshalJSON(data []byte) error {
	type plain BugUpdateRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	keys, err := presentKeys(data)
	if err != nil {
		return err
	}

	if p.Severity == nil && keys[FieldSeverity] {
		p.Severity = new(string)
	}
	if p.Status == nil && keys[FieldStatus] {
		p.Status = new(string)
	}

	*r = BugUpdateRequest(p)
	return nil
}

func presentKeys(data []byte) (map[string]bool, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	keys := make(map[string]bool, len(raw))
	for k := range raw {
		keys[k] = true
	}
	return keys, nil
}

// Normalize trims every provided text field
func (r *BugUpdateRequest) Normalize() {
	for _, p := range []*string{r.Title, r.Description, r.Reporter, r.Assignee} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

// Validate checks every provided field
func (r *BugUpdateRequest) Validate() error {
	// An explicitly empty enum is neither absent nor valid
	if r.Severity != nil && *r.Severity == "" {
		return invalidChoice(FieldSeverity, severityChoices())
	}
	if r.Status != nil && *r.Status == "" {
		return invalidChoice(FieldStatus, statusChoices())
	}

	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

// IsEmpty returns true when no field is set
func (r *BugUpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Severity == nil &&
		r.Status == nil && r.Reporter == nil && r.Assignee == nil
}

// Apply copies the provided fields onto the bug and reports whether the status changed
func (r *BugUpdateRequest) Apply(bug *BugReport) (statusChanged bool) {
	if r.Title != nil {
		bug.Title = *r.Title
	}
	if r.Description != nil {
		bug.Description = *r.Description
	}
	if r.Severity != nil {
		bug.Severity = types.ParseSeverity(*r.Severity)
	}
	if r.Status != nil {
		next := types.ParseBugStatus(*r.Status)
		statusChanged = next != bug.Status
		bug.Status = next
	}
	if r.Reporter != nil {
		bug.Reporter = *r.Reporter
	}
	if r.Assignee != nil {
		bug.Assignee = *r.Assignee
	}
	bug.Touch()
	return statusChanged
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return goerr.Wrap(err, "failed to validate request", goerr.T(ErrTagValidation))
	}

	// Missing fields take precedence over malformed ones
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return goerr.New("Missing required fields",
				goerr.T(ErrTagValidation),
				goerr.V("required", RequiredCreateFields))
		}
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "oneof":
		switch fe.Field() {
		case FieldSeverity:
			return invalidChoice(FieldSeverity, severityChoices())
		case FieldStatus:
			return invalidChoice(FieldStatus, statusChoices())
		}
	case "max":
		return goerr.New(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()),
			goerr.T(ErrTagValidation),
			goerr.V("field", fe.Field()))
	}

	return goerr.New(fmt.Sprintf("invalid value for %s", fe.Field()),
		goerr.T(ErrTagValidation),
		goerr.V("field", fe.Field()),
		goerr.V("rule", fe.Tag()))
}

func invalidChoice(field string, choices []string) error {
	return goerr.New(fmt.Sprintf("Invalid %s. Choose from: %s", field, strings.Join(choices, ", ")),
		goerr.T(ErrTagValidation),
		goerr.V("field", field))
}

func severityChoices() []string {
	var choices []string
	for _, s := range types.Severities() {
		choices = append(choices, s.String())
	}
	return choices
}

func statusChoices() []string {
	var choices []string
	for _, s := range types.BugStatuses() {
		choices = append(choices, s.String())
	}
	return choices
}
