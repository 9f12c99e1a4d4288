package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bugtrail/pkg/domain/interfaces"
	"github.com/secmon-lab/bugtrail/pkg/domain/model"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
	"github.com/secmon-lab/bugtrail/pkg/utils/async"
)

// BugOption is a functional option for configuring BugUseCase
type BugOption func(*BugUseCase)

// WithNotifier announces created bugs and status changes through n
func WithNotifier(n interfaces.Notifier) BugOption {
	return func(u *BugUseCase) {
		u.notifier = n
	}
}

// BugUseCase implements the Bug interface
type BugUseCase struct {
	repo     interfaces.Repository
	notifier interfaces.Notifier
}

// NewBug creates a new BugUseCase instance
func NewBug(repo interfaces.Repository, opts ...BugOption) interfaces.Bug {
	u := &BugUseCase{
		repo: repo,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateBug validates the request and stores a new open bug report
func (u *BugUseCase) CreateBug(ctx context.Context, req model.CreateBugRequest) (*model.BugReport, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bug := model.NewBugReport(req.Title, req.Description, req.Severity, types.BugStatusOpen.String(), req.Reporter, req.Assignee)
	if _, err := u.repo.CreateBug(ctx, bug); err != nil {
		return nil, goerr.Wrap(err, "failed to save bug",
			goerr.V("title", bug.Title))
	}

	ctxlog.From(ctx).Info("Bug report created",
		"bugID", bug.ID,
		"severity", bug.Severity,
		"reporter", bug.Reporter,
	)

	if u.notifier != nil {
		created := bug.Clone()
		async.Dispatch(ctx, func(ctx context.Context) error {
			return u.notifier.NotifyBugCreated(ctx, created)
		})
	}

	return bug, nil
}

// ListBugs returns all bug reports, newest first
func (u *BugUseCase) ListBugs(ctx context.Context) ([]*model.BugReport, error) {
	bugs, err := u.repo.ListBugs(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list bugs")
	}
	return bugs, nil
}

// GetBug retrieves a bug report
func (u *BugUseCase) GetBug(ctx context.Context, id types.BugID) (*model.BugReport, error) {
	bug, err := u.repo.GetBug(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get bug",
			goerr.V("bugID", id))
	}
	return bug, nil
}

// UpdateBug applies a partial update to an existing bug report
func (u *BugUseCase) UpdateBug(ctx context.Context, id types.BugID, req model.BugUpdateRequest) (*model.BugReport, error) {
	// A missing bug is reported before any problem with the request
	bug, err := u.repo.GetBug(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get bug",
			goerr.V("bugID", id))
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	previous := bug.Status
	statusChanged := req.Apply(bug)

	if err := u.repo.UpdateBug(ctx, bug); err != nil {
		return nil, goerr.Wrap(err, "failed to save updated bug",
			goerr.V("bugID", id))
	}

	if statusChanged && u.notifier != nil {
		updated := bug.Clone()
		async.Dispatch(ctx, func(ctx context.Context) error {
			return u.notifier.NotifyStatusChanged(ctx, updated, previous)
		})
	}

	return bug, nil
}

// DeleteBug deletes a bug report
func (u *BugUseCase) DeleteBug(ctx context.Context, id types.BugID) error {
	if err := u.repo.DeleteBug(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete bug",
			goerr.V("bugID", id))
	}

	ctxlog.From(ctx).Info("Bug report deleted", "bugID", id)
	return nil
}

// GetStatistics aggregates all bug reports
func (u *BugUseCase) GetStatistics(ctx context.Context) (*model.BugStats, error) {
	bugs, err := u.repo.ListBugs(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list bugs for statistics")
	}
	return model.ComputeBugStats(bugs), nil
}

var _ interfaces.Bug = (*BugUseCase)(nil)
