package interfaces

//go:generate moq -out mocks/notifier_mock.go -pkg mocks . Notifier

import (
	"context"

	"github.com/secmon-lab/bugtrail/pkg/domain/model"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
)

// Notifier announces bug report events to people outside the API
type Notifier interface {
	NotifyBugCreated(ctx context.Context, bug *model.BugReport) error
	NotifyStatusChanged(ctx context.Context, bug *model.BugReport, previous types.BugStatus) error
}
