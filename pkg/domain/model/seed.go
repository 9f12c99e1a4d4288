package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
)

// SeedConfig represents a YAML fixture of bug reports to import
type SeedConfig struct {
	Bugs []map[string]any `yaml:"bugs"`
}

// Validate validates the seed configuration
func (c *SeedConfig) Validate() error {
	if len(c.Bugs) == 0 {
		return goerr.New("at least one bug is required")
	}

	for i, entry := range c.Bugs {
		if stringField(entry, FieldTitle) == "" {
			return goerr.New("bug title is required",
				goerr.V("index", i))
		}
	}

	return nil
}

// BugReports decodes every entry of the fixture. IDs are left empty so that the
// store assigns new ones.
func (c *SeedConfig) BugReports() ([]*BugReport, error) {
	bugs := make([]*BugReport, 0, len(c.Bugs))
	for i, entry := range c.Bugs {
		bug, err := BugReportFromMap(types.BugID(""), entry)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid bug entry", goerr.V("index", i))
		}
		bugs = append(bugs, bug)
	}
	return bugs, nil
}
