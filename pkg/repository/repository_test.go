package repository_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/bugtrail/pkg/domain/interfaces"
	"github.com/secmon-lab/bugtrail/pkg/domain/model"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
	"github.com/secmon-lab/bugtrail/pkg/repository"
)

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("CreateAndGetBug", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		now := time.Now().UnixNano()
		bug := model.NewBugReport(
			fmt.Sprintf("Crash on start %d", now),
			"The app crashes right after the splash screen",
			"critical", "open",
			fmt.Sprintf("reporter-%d", now), "",
		)

		id, err := repo.CreateBug(ctx, bug)
		gt.NoError(t, err).Required()
		gt.V(t, id).NotEqual(types.BugID(""))
		gt.Equal(t, bug.ID, id)

		retrieved, err := repo.GetBug(ctx, id)
		gt.NoError(t, err).Required()
		gt.Equal(t, retrieved.ID, id)
		gt.Equal(t, retrieved.Title, bug.Title)
		gt.Equal(t, retrieved.Description, bug.Description)
		gt.Equal(t, retrieved.Severity, types.SeverityCritical)
		gt.Equal(t, retrieved.Status, types.BugStatusOpen)
		gt.Equal(t, retrieved.Reporter, bug.Reporter)
		gt.Equal(t, retrieved.Assignee, "")
		// Timestamp comparison with tolerance for storage precision
		gt.True(t, bug.CreatedAt.Sub(retrieved.CreatedAt).Abs() < time.Second)
		gt.True(t, bug.UpdatedAt.Sub(retrieved.UpdatedAt).Abs() < time.Second)
	})

	t.Run("GetBug_NotFound", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		nonExistentID := types.BugID(fmt.Sprintf("bug-non-existent-%d", time.Now().UnixNano()))
		_, err := repo.GetBug(ctx, nonExistentID)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrBugNotFound))
	})

	t.Run("GetBug_EmptyID", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		_, err := repo.GetBug(context.Background(), "")
		gt.Error(t, err)
	})

	t.Run("ListBugs_NewestFirst", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		base := time.Now().UTC().Add(time.Hour)
		var ids []types.BugID
		for i := 0; i < 3; i++ {
			bug := model.NewBugReport(fmt.Sprintf("list-%d-%d", base.UnixNano(), i), "desc", "low", "open", "tester", "")
			bug.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			id, err := repo.CreateBug(ctx, bug)
			gt.NoError(t, err).Required()
			ids = append(ids, id)
		}

		bugs, err := repo.ListBugs(ctx)
		gt.NoError(t, err)
		gt.A(t, bugs).Longer(2)

		// The three bugs are newer than anything else in the store
		gt.Equal(t, bugs[0].ID, ids[2])
		gt.Equal(t, bugs[1].ID, ids[1])
		gt.Equal(t, bugs[2].ID, ids[0])
		for i := 0; i < len(bugs)-1; i++ {
			gt.False(t, bugs[i].CreatedAt.Before(bugs[i+1].CreatedAt))
		}
	})

	t.Run("UpdateBug", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		bug := model.NewBugReport("Update me", "desc", "low", "open", "tester", "")
		id, err := repo.CreateBug(ctx, bug)
		gt.NoError(t, err).Required()

		bug.Status = types.BugStatusResolved
		bug.Assignee = "fixer"
		bug.Touch()
		gt.NoError(t, repo.UpdateBug(ctx, bug))

		retrieved, err := repo.GetBug(ctx, id)
		gt.NoError(t, err).Required()
		gt.Equal(t, retrieved.Status, types.BugStatusResolved)
		gt.Equal(t, retrieved.Assignee, "fixer")
		gt.Equal(t, retrieved.Title, "Update me")
		gt.True(t, bug.CreatedAt.Sub(retrieved.CreatedAt).Abs() < time.Second)
	})

	t.Run("UpdateBug_NotFound", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		bug := model.NewBugReport("ghost", "desc", "low", "open", "tester", "")
		bug.ID = types.BugID(fmt.Sprintf("bug-non-existent-%d", time.Now().UnixNano()))
		err := repo.UpdateBug(context.Background(), bug)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrBugNotFound))
	})

	t.Run("DeleteBug", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		bug := model.NewBugReport("Delete me", "desc", "high", "closed", "tester", "")
		id, err := repo.CreateBug(ctx, bug)
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.DeleteBug(ctx, id))

		_, err = repo.GetBug(ctx, id)
		gt.True(t, errors.Is(err, model.ErrBugNotFound))

		// Deleting again reports not found
		err = repo.DeleteBug(ctx, id)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrBugNotFound))
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestMemoryRepositoryIsolation(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	bug := model.NewBugReport("Original", "desc", "low", "open", "tester", "")
	id, err := repo.CreateBug(ctx, bug)
	gt.NoError(t, err).Required()

	// Mutating the caller's copy must not leak into the store
	bug.Title = "Mutated"
	retrieved, err := repo.GetBug(ctx, id)
	gt.NoError(t, err).Required()
	gt.Equal(t, retrieved.Title, "Original")

	retrieved.Title = "Mutated again"
	again, err := repo.GetBug(ctx, id)
	gt.NoError(t, err).Required()
	gt.Equal(t, again.Title, "Original")
}

func TestFirestoreRepository(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		repo, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err)
		return repo
	})
}
