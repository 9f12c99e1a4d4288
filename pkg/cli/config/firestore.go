package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bugtrail/pkg/domain/interfaces"
	"github.com/secmon-lab/bugtrail/pkg/repository"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

// Firestore holds Firestore configuration
type Firestore struct {
	ProjectID       string
	DatabaseID      string
	CredentialsJSON string
	CredentialsFile string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore",
			Category:    "Firestore",
			Sources:     cli.EnvVars("BUGTRAIL_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Value:       "(default)",
			Sources:     cli.EnvVars("BUGTRAIL_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-credentials-json",
			Usage:       "Service account key as a JSON string",
			Category:    "Firestore",
			Sources:     cli.EnvVars("BUGTRAIL_FIRESTORE_CREDENTIALS_JSON"),
			Destination: &f.CredentialsJSON,
		},
		&cli.StringFlag{
			Name:        "firestore-credentials-file",
			Usage:       "Path to a service account key file",
			Category:    "Firestore",
			Sources:     cli.EnvVars("BUGTRAIL_FIRESTORE_CREDENTIALS_FILE"),
			Destination: &f.CredentialsFile,
		},
	}
}

// Configure creates and returns a Firestore repository
func (f *Firestore) Configure(ctx context.Context) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	if !f.IsConfigured() {
		logger.Warn("Using memory database instead of firestore. The data will be removed when shutting down")
		return repository.NewMemory(), nil
	}

	opts, err := f.ClientOptions()
	if err != nil {
		return nil, err
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init firestore",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
		)
	}

	return repo, nil
}

// ClientOptions returns the credential options for the Firestore client. The
// JSON blob wins over the file path; with neither, application default
// credentials are used.
func (f *Firestore) ClientOptions() ([]option.ClientOption, error) {
	switch {
	case f.CredentialsJSON != "":
		return []option.ClientOption{
			option.WithCredentialsJSON([]byte(f.CredentialsJSON)),
		}, nil

	case f.CredentialsFile != "":
		if _, err := os.Stat(f.CredentialsFile); err != nil {
			return nil, goerr.Wrap(err, "firestore credentials file is not accessible",
				goerr.V("path", f.CredentialsFile))
		}
		return []option.ClientOption{
			option.WithCredentialsFile(f.CredentialsFile),
		}, nil

	default:
		return nil, nil
	}
}

// IsConfigured checks if Firestore is properly configured
func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
		slog.Bool("has_credentials_json", f.CredentialsJSON != ""),
		slog.String("credentials_file", f.CredentialsFile),
	)
}
