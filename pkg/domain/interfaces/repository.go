package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/bugtrail/pkg/domain/model"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	// Bug report operations
	CreateBug(ctx context.Context, bug *model.BugReport) (types.BugID, error)
	GetBug(ctx context.Context, id types.BugID) (*model.BugReport, error)
	ListBugs(ctx context.Context) ([]*model.BugReport, error)
	UpdateBug(ctx context.Context, bug *model.BugReport) error
	DeleteBug(ctx context.Context, id types.BugID) error

	// Close closes the repository connection
	Close() error
}
