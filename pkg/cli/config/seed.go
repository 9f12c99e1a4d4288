package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bugtrail/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// LoadSeedFromFile loads a bug fixture from YAML file
func LoadSeedFromFile(path string) (*model.SeedConfig, error) {
	if path == "" {
		return nil, goerr.New("seed file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "seed file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read seed file",
			goerr.V("path", path))
	}

	var seed model.SeedConfig
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML seed file",
			goerr.V("path", path))
	}

	if err := seed.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid seed file",
			goerr.V("path", path))
	}

	return &seed, nil
}
