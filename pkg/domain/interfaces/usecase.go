package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . Bug

import (
	"context"

	"github.com/secmon-lab/bugtrail/pkg/domain/model"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
)

// Bug defines bug report operations exposed to controllers
type Bug interface {
	CreateBug(ctx context.Context, req model.CreateBugRequest) (*model.BugReport, error)
	ListBugs(ctx context.Context) ([]*model.BugReport, error)
	GetBug(ctx context.Context, id types.BugID) (*model.BugReport, error)
	UpdateBug(ctx context.Context, id types.BugID, req model.BugUpdateRequest) (*model.BugReport, error)
	DeleteBug(ctx context.Context, id types.BugID) error
	GetStatistics(ctx context.Context) (*model.BugStats, error)
}
