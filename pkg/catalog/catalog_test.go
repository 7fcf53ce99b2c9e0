package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/appdock-io/appdock/pkg/catalog"
	"github.com/appdock-io/appdock/pkg/domain/model"
	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func testConfig() *catalog.Config {
	return &catalog.Config{
		Apps: []catalog.Entry{
			{
				Type:           "zoom_video",
				Name:           "Zoom",
				Variant:        "conferencing",
				ExtendsFeature: []string{"booking"},
				Key:            "zoom-app-key",
			},
			{
				Type:    "salesforce_crm",
				Name:    "Salesforce",
				Variant: "crm",
			},
			{
				Type:    "daily_video",
				Name:    "Daily",
				Variant: "conferencing",
				Global:  true,
			},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		gt.NoError(t, testConfig().Validate())
	})

	t.Run("duplicate type fails", func(t *testing.T) {
		cfg := testConfig()
		cfg.Apps = append(cfg.Apps, catalog.Entry{
			Type: "zoom_video", Name: "Zoom copy", Variant: "conferencing",
		})
		gt.Error(t, cfg.Validate())
	})

	t.Run("missing name fails", func(t *testing.T) {
		cfg := &catalog.Config{Apps: []catalog.Entry{{Type: "zoom_video", Variant: "conferencing"}}}
		gt.Error(t, cfg.Validate())
	})

	t.Run("missing variant fails", func(t *testing.T) {
		cfg := &catalog.Config{Apps: []catalog.Entry{{Type: "zoom_video", Name: "Zoom"}}}
		gt.Error(t, cfg.Validate())
	})

	t.Run("invalid type fails", func(t *testing.T) {
		cfg := &catalog.Config{Apps: []catalog.Entry{{Type: "Zoom Video", Name: "Zoom", Variant: "conferencing"}}}
		gt.Error(t, cfg.Validate())
	})
}

func TestCatalog_EnabledApps(t *testing.T) {
	ctx := context.Background()

	t.Run("no credentials yields only global apps", func(t *testing.T) {
		c := gt.R1(catalog.New(testConfig())).NoError(t)

		apps, err := c.EnabledApps(ctx, nil)
		gt.NoError(t, err).Required()
		gt.Array(t, apps).Length(1)
		gt.Value(t, apps[0].Type).Equal(types.AppType("daily_video"))
		gt.B(t, apps[0].IsGlobal).True()
	})

	t.Run("credential-backed apps are included in catalog order", func(t *testing.T) {
		c := gt.R1(catalog.New(testConfig())).NoError(t)

		creds := []*model.Credential{
			{ID: "c-1", Type: "salesforce_crm", UserID: "u-001"},
			{ID: "c-2", Type: "zoom_video", UserID: "u-001"},
		}
		apps, err := c.EnabledApps(ctx, creds)
		gt.NoError(t, err).Required()
		gt.Array(t, apps).Length(3)
		gt.Value(t, apps[0].Type).Equal(types.AppType("zoom_video"))
		gt.Value(t, apps[1].Type).Equal(types.AppType("salesforce_crm"))
		gt.Value(t, apps[2].Type).Equal(types.AppType("daily_video"))
	})

	t.Run("duplicate credentials of one type yield one app", func(t *testing.T) {
		c := gt.R1(catalog.New(testConfig())).NoError(t)

		creds := []*model.Credential{
			{ID: "c-1", Type: "zoom_video", UserID: "u-001"},
			{ID: "c-2", Type: "zoom_video", UserID: "u-001"},
		}
		apps, err := c.EnabledApps(ctx, creds)
		gt.NoError(t, err).Required()
		gt.Array(t, apps).Length(2) // zoom + global daily
	})

	t.Run("unknown credential type yields nothing extra", func(t *testing.T) {
		c := gt.R1(catalog.New(testConfig())).NoError(t)

		creds := []*model.Credential{
			{ID: "c-1", Type: "unknown_app", UserID: "u-001"},
		}
		apps, err := c.EnabledApps(ctx, creds)
		gt.NoError(t, err).Required()
		gt.Array(t, apps).Length(1)
	})

	t.Run("returned descriptors are copies", func(t *testing.T) {
		c := gt.R1(catalog.New(testConfig())).NoError(t)

		creds := []*model.Credential{{ID: "c-1", Type: "zoom_video", UserID: "u-001"}}
		apps := gt.R1(c.EnabledApps(ctx, creds)).NoError(t)
		apps[0].Key = ""

		again := gt.R1(c.EnabledApps(ctx, creds)).NoError(t)
		gt.Value(t, again[0].Key).Equal("zoom-app-key")
	})
}

func TestLoad(t *testing.T) {
	t.Run("load valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.toml")
		content := `
[[app]]
type = "zoom_video"
name = "Zoom"
slug = "zoom"
variant = "conferencing"
extends_feature = ["booking"]

[[app]]
type = "daily_video"
name = "Daily"
variant = "conferencing"
global = true
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()

		c, err := catalog.Load(path)
		gt.NoError(t, err).Required()
		gt.Number(t, c.Len()).Equal(2)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := catalog.Load(filepath.Join(t.TempDir(), "missing.toml"))
		gt.Error(t, err)
	})

	t.Run("invalid TOML fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.toml")
		gt.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0600)).Required()

		_, err := catalog.Load(path)
		gt.Error(t, err)
	})
}
