package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bugtrail/pkg/domain/interfaces"
	"github.com/secmon-lab/bugtrail/pkg/domain/model"
)

// ImportBugs stores every bug of a seed fixture and returns the number stored.
// It stops at the first failure; bugs stored before it are kept.
func ImportBugs(ctx context.Context, repo interfaces.Repository, seed *model.SeedConfig) (int, error) {
	bugs, err := seed.BugReports()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to decode seed")
	}

	logger := ctxlog.From(ctx)
	for i, bug := range bugs {
		id, err := repo.CreateBug(ctx, bug)
		if err != nil {
			return i, goerr.Wrap(err, "failed to import bug",
				goerr.V("index", i),
				goerr.V("title", bug.Title))
		}
		logger.Debug("Bug imported", "bugID", id, "title", bug.Title)
	}

	return len(bugs), nil
}
