package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bugtrail/pkg/domain/interfaces"
	"github.com/secmon-lab/bugtrail/pkg/domain/model"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
	"github.com/secmon-lab/bugtrail/pkg/utils/apperr"
)

// Request bodies above this size are rejected
const maxBodySize = 1 << 20

type bugHandler struct {
	uc interfaces.Bug
}

func (h *bugHandler) list(w http.ResponseWriter, r *http.Request) {
	bugs, err := h.uc.ListBugs(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]*model.BugResponse, 0, len(bugs))
	for _, bug := range bugs {
		resp = append(resp, bug.Response())
	}
	writeJSON(r.Context(), w, http.StatusOK, resp)
}

func (h *bugHandler) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBugRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err, http.StatusBadRequest, nil)
		return
	}

	bug, err := h.uc.CreateBug(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, bug.Response())
}

func (h *bugHandler) get(w http.ResponseWriter, r *http.Request) {
	bug, err := h.uc.GetBug(r.Context(), bugIDParam(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, bug.Response())
}

func (h *bugHandler) update(w http.ResponseWriter, r *http.Request) {
	var req model.BugUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err, http.StatusBadRequest, nil)
		return
	}
	if req.IsEmpty() {
		ctxlog.From(r.Context()).Debug("Update without fields, only updated_at changes")
	}

	bug, err := h.uc.UpdateBug(r.Context(), bugIDParam(r), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, bug.Response())
}

func (h *bugHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteBug(r.Context(), bugIDParam(r)); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *bugHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.GetStatistics(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, stats)
}

// handleError maps usecase errors to HTTP status codes
func (h *bugHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	switch {
	case goerr.HasTag(err, model.ErrTagValidation):
		var extra map[string]any
		if goErr := goerr.Unwrap(err); goErr != nil {
			if required, ok := goErr.Values()["required"]; ok {
				extra = map[string]any{"required": required}
			}
		}
		writeError(ctx, w, err, http.StatusBadRequest, extra)

	case errors.Is(err, model.ErrBugNotFound):
		writeError(ctx, w, goerr.New("Bug not found"), http.StatusNotFound, nil)

	default:
		apperr.Handle(ctx, err)
		writeError(ctx, w, err, http.StatusInternalServerError, nil)
	}
}

func bugIDParam(r *http.Request) types.BugID {
	return types.BugID(chi.URLParam(r, "id"))
}

// decodeBody parses a JSON request body into v
func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return goerr.Wrap(err, "failed to read request body")
	}
	if len(body) > maxBodySize {
		return goerr.New("Request body too large")
	}
	// An empty body is an empty object, as in form-less PATCH requests
	if len(body) == 0 {
		body = []byte("{}")
	}

	if err := json.Unmarshal(body, v); err != nil {
		return goerr.New("Invalid JSON body", goerr.V("cause", err.Error()))
	}
	return nil
}
