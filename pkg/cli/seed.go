package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bugtrail/pkg/cli/config"
	"github.com/secmon-lab/bugtrail/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var (
		firestoreCfg config.Firestore
		seedFile     string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "YAML file with the bug reports to import",
				Required:    true,
				Sources:     cli.EnvVars("BUGTRAIL_SEED_FILE"),
				Destination: &seedFile,
			},
		},
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:  "seed",
		Usage: "Import bug reports from a YAML fixture",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			seed, err := config.LoadSeedFromFile(seedFile)
			if err != nil {
				return err
			}

			if !firestoreCfg.IsConfigured() {
				return goerr.New("firestore project is required to seed bugs",
					goerr.V("file", seedFile))
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Warn("failed to close repository", "error", err)
				}
			}()

			n, err := usecase.ImportBugs(ctx, repo, seed)
			if err != nil {
				return goerr.Wrap(err, "seeding stopped", goerr.V("imported", n))
			}

			logger.Info("Bug reports imported",
				slog.Int("count", n),
				slog.String("file", seedFile),
				slog.Any("firestore", firestoreCfg),
			)
			return nil
		},
	}
}
