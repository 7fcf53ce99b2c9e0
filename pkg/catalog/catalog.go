package catalog

import (
	"context"
	"os"

	"github.com/appdock-io/appdock/pkg/domain/interfaces"
	"github.com/appdock-io/appdock/pkg/domain/model"
	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// Entry represents one app descriptor in the catalog TOML file
type Entry struct {
	Type           string   `toml:"type"`
	Name           string   `toml:"name"`
	Slug           string   `toml:"slug"`
	Variant        string   `toml:"variant"`
	Description    string   `toml:"description"`
	Logo           string   `toml:"logo"`
	Categories     []string `toml:"categories"`
	Global         bool     `toml:"global"`
	ExtendsFeature []string `toml:"extends_feature"`
	Key            string   `toml:"key"`
}

// Validate checks if the Entry is valid
func (e *Entry) Validate() error {
	if err := types.AppType(e.Type).Validate(); err != nil {
		return goerr.Wrap(err, "invalid app type")
	}
	if e.Name == "" {
		return goerr.New("app name is required", goerr.V("type", e.Type))
	}
	if e.Variant == "" {
		return goerr.New("app variant is required", goerr.V("type", e.Type))
	}
	return nil
}

// Config is the parsed catalog file
type Config struct {
	Apps []Entry `toml:"app"`
}

// Validate checks if the Config is valid
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for _, entry := range c.Apps {
		if err := entry.Validate(); err != nil {
			return goerr.Wrap(err, "invalid catalog entry")
		}
		if seen[entry.Type] {
			return goerr.New("duplicate app type", goerr.V("type", entry.Type))
		}
		seen[entry.Type] = true
	}
	return nil
}

// Catalog is a static interfaces.AppProvider backed by a TOML file. App
// order follows file order and is preserved by EnabledApps.
type Catalog struct {
	apps []*model.App
}

var _ interfaces.AppProvider = &Catalog{}

// New builds a catalog from a validated config
func New(cfg *Config) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	apps := make([]*model.App, 0, len(cfg.Apps))
	for _, entry := range cfg.Apps {
		slug := entry.Slug
		if slug == "" {
			slug = entry.Type
		}
		apps = append(apps, &model.App{
			Type:           types.AppType(entry.Type),
			Name:           entry.Name,
			Slug:           slug,
			Variant:        entry.Variant,
			Description:    entry.Description,
			LogoURL:        entry.Logo,
			Categories:     entry.Categories,
			IsGlobal:       entry.Global,
			ExtendsFeature: entry.ExtendsFeature,
			Key:            entry.Key,
		})
	}

	return &Catalog{apps: apps}, nil
}

// Load reads and validates a catalog TOML file
func Load(path string) (*Catalog, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V("path", path))
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog TOML", goerr.V("path", path))
	}

	return New(&cfg)
}

// EnabledApps returns, in catalog order, every app that is globally
// enabled or backed by at least one of the given credentials. Returned
// descriptors are copies; mutating them does not affect the catalog.
func (c *Catalog) EnabledApps(ctx context.Context, credentials []*model.Credential) ([]*model.App, error) {
	backed := make(map[types.AppType]bool, len(credentials))
	for _, cred := range credentials {
		backed[cred.Type] = true
	}

	var enabled []*model.App
	for _, app := range c.apps {
		if !app.IsGlobal && !backed[app.Type] {
			continue
		}
		copied := *app
		enabled = append(enabled, &copied)
	}

	return enabled, nil
}

// Len returns the number of apps in the catalog
func (c *Catalog) Len() int {
	return len(c.apps)
}
