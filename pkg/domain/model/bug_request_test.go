package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/bugtrail/pkg/domain/model"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
)

func ptr(s string) *string {
	return &s
}

func TestCreateBugRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := model.CreateBugRequest{
			Title:       "  Crash  ",
			Description: "desc",
			Severity:    "high",
			Reporter:    " alice ",
		}
		req.Normalize()
		gt.NoError(t, req.Validate())
		gt.Equal(t, req.Title, "Crash")
		gt.Equal(t, req.Reporter, "alice")
	})

	t.Run("severity defaults to medium", func(t *testing.T) {
		req := model.CreateBugRequest{Title: "t", Description: "d", Reporter: "r"}
		req.Normalize()
		gt.NoError(t, req.Validate())
		gt.Equal(t, req.Severity, "medium")
	})

	t.Run("whitespace-only title is missing", func(t *testing.T) {
		req := model.CreateBugRequest{Title: "   ", Description: "d", Reporter: "r"}
		req.Normalize()
		err := req.Validate()
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
		gt.S(t, err.Error()).Contains("Missing required fields")
		gt.Equal(t, goerr.Values(err)["required"], any(model.RequiredCreateFields))
	})

	t.Run("invalid severity", func(t *testing.T) {
		req := model.CreateBugRequest{Title: "t", Description: "d", Reporter: "r", Severity: "blocker"}
		req.Normalize()
		err := req.Validate()
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
		gt.S(t, err.Error()).Contains("Invalid severity")
	})

	t.Run("title too long", func(t *testing.T) {
		long := make([]byte, 201)
		for i := range long {
			long[i] = 'a'
		}
		req := model.CreateBugRequest{Title: string(long), Description: "d", Reporter: "r"}
		req.Normalize()
		err := req.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("title must be at most 200 characters")
	})
}

func TestBugUpdateRequest(t *testing.T) {
	t.Run("applies only provided fields", func(t *testing.T) {
		bug := model.NewBugReport("Crash", "desc", "low", "open", "alice", "")
		req := model.BugUpdateRequest{
			Status:   ptr("resolved"),
			Assignee: ptr("  bob "),
		}
		req.Normalize()
		gt.NoError(t, req.Validate())

		changed := req.Apply(bug)
		gt.True(t, changed)
		gt.Equal(t, bug.Status, types.BugStatusResolved)
		gt.Equal(t, bug.Assignee, "bob")
		gt.Equal(t, bug.Title, "Crash")
		gt.Equal(t, bug.Severity, types.SeverityLow)
	})

	t.Run("same status is not a change", func(t *testing.T) {
		bug := model.NewBugReport("Crash", "desc", "low", "open", "alice", "")
		req := model.BugUpdateRequest{Status: ptr("open")}
		gt.False(t, req.Apply(bug))
	})

	t.Run("invalid status", func(t *testing.T) {
		req := model.BugUpdateRequest{Status: ptr("done")}
		err := req.Validate()
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
		gt.S(t, err.Error()).Contains("Invalid status")
	})

	t.Run("empty severity", func(t *testing.T) {
		req := model.BugUpdateRequest{Severity: ptr("")}
		err := req.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("Invalid severity")
	})

	t.Run("empty request", func(t *testing.T) {
		req := model.BugUpdateRequest{}
		gt.True(t, req.IsEmpty())
		gt.NoError(t, req.Validate())
	})
}

func TestCreateBugRequestJSON(t *testing.T) {
	decode := func(t *testing.T, body string) model.CreateBugRequest {
		t.Helper()
		var req model.CreateBugRequest
		gt.NoError(t, json.Unmarshal([]byte(body), &req)).Required()
		req.Normalize()
		return req
	}

	t.Run("absent severity defaults to medium", func(t *testing.T) {
		req := decode(t, `{"title":"t","description":"d","reporter":"r"}`)
		gt.NoError(t, req.Validate())
		gt.Equal(t, req.Severity, "medium")
	})

	t.Run("empty severity is missing", func(t *testing.T) {
		req := decode(t, `{"title":"t","description":"d","reporter":"r","severity":""}`)
		err := req.Validate()
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
		gt.Equal(t, err.Error(), "Missing required fields")
	})

	t.Run("null severity is missing", func(t *testing.T) {
		req := decode(t, `{"title":"t","description":"d","reporter":"r","severity":null}`)
		err := req.Validate()
		gt.Error(t, err)
		gt.Equal(t, err.Error(), "Missing required fields")
	})

	t.Run("fields are decoded", func(t *testing.T) {
		req := decode(t, `{"title":" t ","description":"d","reporter":"r","severity":"low","assignee":"a"}`)
		gt.NoError(t, req.Validate())
		gt.Equal(t, req.Title, "t")
		gt.Equal(t, req.Severity, "low")
		gt.Equal(t, req.Assignee, "a")
	})

	t.Run("wrong type fails", func(t *testing.T) {
		var req model.CreateBugRequest
		gt.Error(t, json.Unmarshal([]byte(`{"title":5}`), &req))
	})
}

func TestBugUpdateRequestJSON(t *testing.T) {
	decode := func(t *testing.T, body string) model.BugUpdateRequest {
		t.Helper()
		var req model.BugUpdateRequest
		gt.NoError(t, json.Unmarshal([]byte(body), &req)).Required()
		req.Normalize()
		return req
	}

	t.Run("absent keys stay nil", func(t *testing.T) {
		req := decode(t, `{"title":"x"}`)
		gt.NoError(t, req.Validate())
		gt.True(t, req.Severity == nil)
		gt.True(t, req.Status == nil)
	})

	t.Run("null severity is invalid", func(t *testing.T) {
		req := decode(t, `{"severity":null}`)
		err := req.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("Invalid severity")
	})

	t.Run("null status is invalid", func(t *testing.T) {
		req := decode(t, `{"status":null}`)
		err := req.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("Invalid status")
	})

	t.Run("empty object", func(t *testing.T) {
		req := decode(t, `{}`)
		gt.NoError(t, req.Validate())
		gt.True(t, req.IsEmpty())
	})
}

func TestSeedConfig(t *testing.T) {
	t.Run("decodes entries", func(t *testing.T) {
		cfg := model.SeedConfig{Bugs: []map[string]any{
			{"title": "a", "severity": "high"},
			{"title": "b", "status": "bogus"},
		}}
		gt.NoError(t, cfg.Validate())

		bugs, err := cfg.BugReports()
		gt.NoError(t, err)
		gt.Equal(t, len(bugs), 2)
		gt.Equal(t, bugs[0].Severity, types.SeverityHigh)
		gt.Equal(t, bugs[1].Status, types.BugStatusOpen)
	})

	t.Run("requires entries", func(t *testing.T) {
		cfg := model.SeedConfig{}
		gt.Error(t, cfg.Validate())
	})

	t.Run("requires title", func(t *testing.T) {
		cfg := model.SeedConfig{Bugs: []map[string]any{{"severity": "low"}}}
		err := cfg.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("bug title is required")
	})
}
