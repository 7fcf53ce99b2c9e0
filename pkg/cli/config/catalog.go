package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/appdock-io/appdock/pkg/catalog"
	"github.com/appdock-io/appdock/pkg/utils/logging"
)

// Catalog holds CLI flags for the app catalog configuration
type Catalog struct {
	path string
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to the app catalog TOML file",
			Required:    true,
			Sources:     cli.EnvVars("APPDOCK_CATALOG"),
			Destination: &c.path,
		},
	}
}

// Path returns the configured catalog file path
func (c *Catalog) Path() string {
	return c.path
}

// Configure loads and validates the catalog file
func (c *Catalog) Configure() (*catalog.Catalog, error) {
	cat, err := catalog.Load(c.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load app catalog", goerr.V("path", c.path))
	}

	logging.Default().Info("Loaded app catalog", "path", c.path, "apps", cat.Len())
	return cat, nil
}
