package usecase

import (
	"slices"
	"strings"

	"github.com/appdock-io/appdock/pkg/domain/model"
)

// filterStage is one step of the response-shaping pipeline. A stage must
// return its input unchanged when its request parameter is absent.
type filterStage func(apps []*model.ResolvedApp, req *model.IntegrationsRequest) []*model.ResolvedApp

// filterStages run in this exact order regardless of which parameters
// are present. The order is part of the contract: the installed-only
// stage sees the app list already narrowed by variant and exclusion,
// and the feature stage recomputes IsInstalled independently of whether
// the installed-only stage ran.
var filterStages = []filterStage{
	filterByVariant,
	filterExcluded,
	filterInstalledOnly,
	filterByFeature,
}

func applyFilters(apps []*model.ResolvedApp, req *model.IntegrationsRequest) []*model.ResolvedApp {
	for _, stage := range filterStages {
		apps = stage(apps, req)
	}
	return apps
}

// filterByVariant keeps apps whose variant starts with the requested
// prefix. Prefix match, not equality: "calendar" matches both "calendar"
// and "calendar_google".
func filterByVariant(apps []*model.ResolvedApp, req *model.IntegrationsRequest) []*model.ResolvedApp {
	if req.Variant == "" {
		return apps
	}

	kept := make([]*model.ResolvedApp, 0, len(apps))
	for _, app := range apps {
		if strings.HasPrefix(app.Variant, req.Variant) {
			kept = append(kept, app)
		}
	}
	return kept
}

// filterExcluded drops apps whose variant is on the exclusion list
func filterExcluded(apps []*model.ResolvedApp, req *model.IntegrationsRequest) []*model.ResolvedApp {
	if len(req.Exclude) == 0 {
		return apps
	}

	kept := make([]*model.ResolvedApp, 0, len(apps))
	for _, app := range apps {
		if !slices.Contains(req.Exclude, app.Variant) {
			kept = append(kept, app)
		}
	}
	return kept
}

// filterInstalledOnly keeps apps backed by an individual credential, a
// team attribution, or a global enable flag.
func filterInstalledOnly(apps []*model.ResolvedApp, req *model.IntegrationsRequest) []*model.ResolvedApp {
	if !req.OnlyInstalled {
		return apps
	}

	kept := make([]*model.ResolvedApp, 0, len(apps))
	for _, app := range apps {
		if app.Installed() {
			kept = append(kept, app)
		}
	}
	return kept
}

// filterByFeature keeps apps extending the requested feature and stamps
// a fresh IsInstalled on each survivor. The stamp happens only here;
// responses without this filter carry no IsInstalled field.
func filterByFeature(apps []*model.ResolvedApp, req *model.IntegrationsRequest) []*model.ResolvedApp {
	if req.ExtendsFeature == "" {
		return apps
	}

	kept := make([]*model.ResolvedApp, 0, len(apps))
	for _, app := range apps {
		if !slices.Contains(app.ExtendsFeature, req.ExtendsFeature) {
			continue
		}
		installed := app.Installed()
		app.IsInstalled = &installed
		kept = append(kept, app)
	}
	return kept
}
