package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bugtrail/pkg/domain/interfaces"
	"github.com/secmon-lab/bugtrail/pkg/domain/model"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	bugsCollection = "bugs"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository. Credentials are taken from opts,
// or from Application Default Credentials when opts is empty.
func NewFirestore(ctx context.Context, projectID, databaseID string, opts ...option.ClientOption) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on a wrong project or missing permissions
	_, err = client.Collection(bugsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// CreateBug adds a bug report and lets Firestore assign its ID
func (f *Firestore) CreateBug(ctx context.Context, bug *model.BugReport) (types.BugID, error) {
	if bug == nil {
		return "", goerr.New("bug is nil")
	}

	ref, _, err := f.client.Collection(bugsCollection).Add(ctx, bug)
	if err != nil {
		return "", goerr.Wrap(err, "failed to add bug to firestore")
	}

	bug.ID = types.BugID(ref.ID)
	return bug.ID, nil
}

// GetBug retrieves a bug report by ID
func (f *Firestore) GetBug(ctx context.Context, id types.BugID) (*model.BugReport, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := f.client.Collection(bugsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrBugNotFound, "failed to get bug", goerr.V("bugID", id))
		}
		return nil, goerr.Wrap(err, "failed to get bug from firestore", goerr.V("bugID", id))
	}

	return decodeBug(doc)
}

// ListBugs returns all bug reports, newest first
func (f *Firestore) ListBugs(ctx context.Context) ([]*model.BugReport, error) {
	iter := f.client.Collection(bugsCollection).
		OrderBy(model.FieldCreatedAt, firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	bugs := []*model.BugReport{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate bugs")
		}

		bug, err := decodeBug(doc)
		if err != nil {
			return nil, err
		}
		bugs = append(bugs, bug)
	}

	// Documents written with string timestamps sort apart from native ones in
	// Firestore, so order once more after decoding
	sortNewestFirst(bugs)

	return bugs, nil
}

// UpdateBug overwrites the mutable fields of an existing bug report
func (f *Firestore) UpdateBug(ctx context.Context, bug *model.BugReport) error {
	if bug == nil {
		return goerr.New("bug is nil")
	}
	if err := bug.ID.Validate(); err != nil {
		return err
	}

	var updates []firestore.Update
	for path, value := range bug.Fields() {
		if path == model.FieldCreatedAt {
			continue
		}
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if _, err := f.client.Collection(bugsCollection).Doc(bug.ID.String()).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrBugNotFound, "failed to update bug", goerr.V("bugID", bug.ID))
		}
		return goerr.Wrap(err, "failed to update bug in firestore", goerr.V("bugID", bug.ID))
	}

	return nil
}

// DeleteBug deletes a bug report. Deleting a missing document is reported as not found.
func (f *Firestore) DeleteBug(ctx context.Context, id types.BugID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	_, err := f.client.Collection(bugsCollection).Doc(id.String()).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrBugNotFound, "failed to delete bug", goerr.V("bugID", id))
		}
		return goerr.Wrap(err, "failed to delete bug from firestore", goerr.V("bugID", id))
	}

	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func decodeBug(doc *firestore.DocumentSnapshot) (*model.BugReport, error) {
	bug, err := model.BugReportFromMap(types.BugID(doc.Ref.ID), doc.Data())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode bug", goerr.V("bugID", doc.Ref.ID))
	}
	return bug, nil
}

func sortNewestFirst(bugs []*model.BugReport) {
	sort.SliceStable(bugs, func(i, j int) bool {
		return bugs[i].CreatedAt.After(bugs[j].CreatedAt)
	})
}

var _ interfaces.Repository = (*Firestore)(nil) // Compile-time interface check
