package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/appdock-io/appdock/pkg/domain/model/auth"
	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/appdock-io/appdock/pkg/usecase"
	"github.com/appdock-io/appdock/pkg/utils/errutil"
	"github.com/appdock-io/appdock/pkg/utils/safe"
)

type userMeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// authMeHandler returns the identity of the session user
func authMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.UserFromContext(r.Context())
		if user == nil {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, userMeResponse{
			ID:     string(user.ID),
			Name:   user.Name,
			Avatar: user.Avatar,
		})
	}
}

// authLogoutHandler deletes the session token and clears the cookies.
// The token comes from the request context, where the auth middleware
// put it after validation; in no-auth mode there is no token and only
// the cookies are cleared.
func authLogoutHandler(authUC *usecase.AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := auth.TokenFromContext(r.Context()); token != nil {
			if err := authUC.Logout(r.Context(), token.ID); err != nil {
				errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to logout"), http.StatusInternalServerError)
				return
			}
		}

		clearAuthCookies(w, r)
		writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
	}
}

// authTokenIssueHandler mints a session token for the requested user and
// sets the session cookies. Reachable only when the server was built with
// WithTokenIssuer(true).
func authTokenIssueHandler(authUC *usecase.AuthUseCase) http.HandlerFunc {
	type request struct {
		UserID string `json:"user_id"`
	}
	type response struct {
		TokenID   string `json:"token_id"`
		ExpiresAt string `json:"expires_at"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode token request"), http.StatusBadRequest)
			return
		}

		userID := types.UserID(req.UserID)
		if err := userID.Validate(); err != nil {
			writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{Error: "user_id is required"})
			return
		}

		token, err := authUC.IssueToken(r.Context(), userID)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		setAuthCookie(w, r, "token_id", string(token.ID), token)
		setAuthCookie(w, r, "token_secret", string(token.Secret), token)

		writeJSON(r.Context(), w, http.StatusOK, response{
			TokenID:   string(token.ID),
			ExpiresAt: token.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
}

func setAuthCookie(w http.ResponseWriter, r *http.Request, name, value string, token *auth.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  token.ExpiresAt,
	})
}

func clearAuthCookies(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{"token_id", "token_secret"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
}

// writeJSON writes a JSON response with proper error handling
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		errutil.Handle(ctx, err, "failed to encode JSON response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	safe.Write(ctx, w, body)
}
