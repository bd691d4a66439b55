package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// AppConfig is the optional TOML application configuration. It carries
// normalization tables mapping alternative spellings of health fund and
// insurance tier names (Hebrew, English, abbreviations) onto the
// canonical values the knowledge base uses.
type AppConfig struct {
	path string

	Funds []AliasEntry `toml:"fund"`
	Tiers []AliasEntry `toml:"tier"`
}

// AliasEntry maps a canonical name to its accepted alternative spellings
type AliasEntry struct {
	Name    string   `toml:"name"`
	Aliases []string `toml:"aliases"`
}

// Validate checks if the AliasEntry is valid
func (e *AliasEntry) Validate() error {
	if e.Name == "" {
		return goerr.New("alias entry name is required")
	}
	return nil
}

// Flags returns CLI flags for the application configuration
func (c *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML application configuration",
			Sources:     cli.EnvVars("MEDASSIST_CONFIG"),
			Destination: &c.path,
		},
	}
}

// Configure loads and validates the configuration file. Without a
// configured path it returns empty alias tables: extraction then passes
// fund and tier values through unchanged.
func (c *AppConfig) Configure() error {
	if c.path == "" {
		return nil
	}

	raw, err := os.ReadFile(c.path)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.path))
	}
	if err := toml.Unmarshal(raw, c); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.path))
	}

	for _, entry := range append(append([]AliasEntry{}, c.Funds...), c.Tiers...) {
		if err := entry.Validate(); err != nil {
			return goerr.Wrap(err, "invalid config file", goerr.V("path", c.path))
		}
	}

	return nil
}

// FundAliases returns the fund normalization table (alias -> canonical)
func (c *AppConfig) FundAliases() map[string]string {
	return aliasTable(c.Funds)
}

// TierAliases returns the tier normalization table (alias -> canonical)
func (c *AppConfig) TierAliases() map[string]string {
	return aliasTable(c.Tiers)
}

func aliasTable(entries []AliasEntry) map[string]string {
	table := make(map[string]string)
	for _, entry := range entries {
		for _, alias := range entry.Aliases {
			table[alias] = entry.Name
		}
	}
	return table
}
