package config_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/bugtrail/pkg/cli/config"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadSeedFromFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, "seed.yml", `
bugs:
  - title: Login button unresponsive
    description: Nothing happens on click
    severity: high
    status: in_progress
    reporter: alice
    assignee: bob
    created_at: "2024-03-01T10:00:00Z"
  - title: Typo on pricing page
    severity: trivial
`)
		seed, err := config.LoadSeedFromFile(path)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(seed.Bugs), 2)

		bugs, err := seed.BugReports()
		gt.NoError(t, err).Required()
		gt.Equal(t, bugs[0].Status, types.BugStatusInProgress)
		gt.Equal(t, bugs[0].CreatedAt.Year(), 2024)
		gt.Equal(t, bugs[1].Severity, types.SeverityMedium)
		gt.Equal(t, bugs[1].Status, types.BugStatusOpen)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := config.LoadSeedFromFile("")
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadSeedFromFile(filepath.Join(t.TempDir(), "nope.yml"))
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("seed file not found")
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := writeFile(t, "seed.yml", "bugs: [\n")
		_, err := config.LoadSeedFromFile(path)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to parse YAML")
	})

	t.Run("entry without title", func(t *testing.T) {
		path := writeFile(t, "seed.yml", "bugs:\n  - severity: low\n")
		_, err := config.LoadSeedFromFile(path)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("invalid seed file")
	})
}

func TestFirestoreClientOptions(t *testing.T) {
	t.Run("no credentials uses default", func(t *testing.T) {
		cfg := config.Firestore{ProjectID: "p"}
		opts, err := cfg.ClientOptions()
		gt.NoError(t, err)
		gt.Equal(t, len(opts), 0)
	})

	t.Run("json blob", func(t *testing.T) {
		cfg := config.Firestore{ProjectID: "p", CredentialsJSON: `{"type":"service_account"}`}
		opts, err := cfg.ClientOptions()
		gt.NoError(t, err)
		gt.Equal(t, len(opts), 1)
	})

	t.Run("existing file", func(t *testing.T) {
		path := writeFile(t, "sa.json", `{"type":"service_account"}`)
		cfg := config.Firestore{ProjectID: "p", CredentialsFile: path}
		opts, err := cfg.ClientOptions()
		gt.NoError(t, err)
		gt.Equal(t, len(opts), 1)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.Firestore{ProjectID: "p", CredentialsFile: "/nonexistent/sa.json"}
		_, err := cfg.ClientOptions()
		gt.Error(t, err)
	})
}

func TestFirestoreConfigureWithoutProject(t *testing.T) {
	var cfg config.Firestore
	gt.False(t, cfg.IsConfigured())

	repo, err := cfg.Configure(context.Background())
	gt.NoError(t, err).Required()
	gt.NotNil(t, repo)
	gt.NoError(t, repo.Close())
}

func TestFirestoreLogValueHidesSecret(t *testing.T) {
	cfg := config.Firestore{ProjectID: "p", CredentialsJSON: `{"private_key":"secret"}`}
	v := cfg.LogValue()
	gt.Equal(t, v.Kind(), slog.KindGroup)
	for _, attr := range v.Group() {
		gt.False(t, attr.Value.String() == cfg.CredentialsJSON)
	}
}

func TestLoggerValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     config.Logger
		wantErr bool
	}{
		{"defaults", config.Logger{Level: "info", Format: "auto"}, false},
		{"json debug", config.Logger{Level: "debug", Format: "json"}, false},
		{"empty format", config.Logger{Level: "warn"}, false},
		{"bad level", config.Logger{Level: "verbose", Format: "auto"}, true},
		{"bad format", config.Logger{Level: "info", Format: "xml"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestSlackConfigureOptional(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("token only is not enough", func(t *testing.T) {
		cfg := config.Slack{OAuthToken: "xoxb-test"}
		gt.False(t, cfg.IsConfigured())
		gt.True(t, cfg.ConfigureOptional(logger) == nil)
	})

	t.Run("token and channel", func(t *testing.T) {
		cfg := config.Slack{OAuthToken: "xoxb-test", ChannelID: "C0BUGS"}
		gt.True(t, cfg.IsConfigured())
		gt.NotNil(t, cfg.ConfigureOptional(logger))
	})
}
