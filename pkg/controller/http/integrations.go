package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/appdock-io/appdock/pkg/domain/model"
	"github.com/appdock-io/appdock/pkg/domain/model/auth"
	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/appdock-io/appdock/pkg/usecase"
	"github.com/appdock-io/appdock/pkg/utils/errutil"
)

// integrationsHandler serves GET /api/integrations. All query parameters
// are optional; an absent parameter leaves the corresponding filter off.
func integrationsHandler(integrationsUC *usecase.IntegrationsUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.UserFromContext(r.Context())
		if user == nil {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		req, err := parseIntegrationsRequest(r.URL.Query())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		resp, err := integrationsUC.List(r.Context(), user, req)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, resp)
	}
}

func parseIntegrationsRequest(q url.Values) (*model.IntegrationsRequest, error) {
	req := &model.IntegrationsRequest{
		Variant:        q.Get("variant"),
		Exclude:        q["exclude"],
		ExtendsFeature: q.Get("extendsFeature"),
	}

	onlyInstalled, err := parseBoolParam(q, "onlyInstalled")
	if err != nil {
		return nil, err
	}
	req.OnlyInstalled = onlyInstalled

	includeTeamApps, err := parseBoolParam(q, "includeTeamInstalledApps")
	if err != nil {
		return nil, err
	}
	req.IncludeTeamInstalledApps = includeTeamApps

	if v := q.Get("teamId"); v != "" {
		teamID := types.TeamID(v)
		if err := teamID.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid teamId parameter")
		}
		req.TeamID = &teamID
	}

	return req, nil
}

// parseBoolParam treats an absent parameter as false
func parseBoolParam(q url.Values, name string) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, goerr.Wrap(err, "invalid boolean parameter", goerr.V("name", name), goerr.V("value", v))
	}
	return b, nil
}
