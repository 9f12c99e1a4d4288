package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bugtrail/pkg/domain/interfaces"
	"github.com/secmon-lab/bugtrail/pkg/domain/model"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu   sync.RWMutex
	bugs map[types.BugID]*model.BugReport
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		bugs: make(map[types.BugID]*model.BugReport),
	}
}

// CreateBug stores a bug report under a newly generated ID
func (m *Memory) CreateBug(ctx context.Context, bug *model.BugReport) (types.BugID, error) {
	if bug == nil {
		return "", goerr.New("bug is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := types.NewBugID()
	for _, exists := m.bugs[id]; exists; _, exists = m.bugs[id] {
		id = types.NewBugID()
	}

	bug.ID = id
	m.bugs[id] = bug.Clone()
	return id, nil
}

// GetBug retrieves a bug report by ID
func (m *Memory) GetBug(ctx context.Context, id types.BugID) (*model.BugReport, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	bug, exists := m.bugs[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrBugNotFound, "failed to get bug", goerr.V("bugID", id))
	}

	// Return a copy to prevent external modification
	return bug.Clone(), nil
}

// ListBugs returns all bug reports, newest first
func (m *Memory) ListBugs(ctx context.Context) ([]*model.BugReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bugs := make([]*model.BugReport, 0, len(m.bugs))
	for _, bug := range m.bugs {
		bugs = append(bugs, bug.Clone())
	}

	sortNewestFirst(bugs)
	return bugs, nil
}

// UpdateBug replaces an existing bug report
func (m *Memory) UpdateBug(ctx context.Context, bug *model.BugReport) error {
	if bug == nil {
		return goerr.New("bug is nil")
	}
	if err := bug.ID.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current, exists := m.bugs[bug.ID]
	if !exists {
		return goerr.Wrap(model.ErrBugNotFound, "failed to update bug", goerr.V("bugID", bug.ID))
	}

	updated := bug.Clone()
	updated.CreatedAt = current.CreatedAt
	m.bugs[bug.ID] = updated
	return nil
}

// DeleteBug deletes a bug report
func (m *Memory) DeleteBug(ctx context.Context, id types.BugID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.bugs[id]; !exists {
		return goerr.Wrap(model.ErrBugNotFound, "failed to delete bug", goerr.V("bugID", id))
	}

	delete(m.bugs, id)
	return nil
}

// Close does nothing for memory repository
func (m *Memory) Close() error {
	return nil
}

var _ interfaces.Repository = (*Memory)(nil) // Compile-time interface check
