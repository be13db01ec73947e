package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/baustelle-app/lager/pkg/httpx"
	"github.com/baustelle-app/lager/pkg/logger"
)

const (
	sessionName          = "lager_session"
	sessionOperatorIDKey = "operator_id"
	codeUnauthenticated  = "UNAUTHENTICATED"
)

// StartSession stores operatorID in a fresh session and writes the cookie.
func StartSession(store sessions.Store, w http.ResponseWriter, r *http.Request, operatorID uuid.UUID) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return err
	}
	session.Values[sessionOperatorIDKey] = operatorID.String()
	return session.Save(r, w)
}

// Authenticate reads the session cookie and puts the operator into the
// request context. With required set, requests without a valid session get
// 401; otherwise they pass through anonymously and handlers fall back to the
// operator_id in the request body.
func Authenticate(store sessions.Store, log logger.Logger, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			operatorID, reason := operatorFromSession(store, r)
			if reason != "" {
				if required {
					log.WarnContext(r.Context(), "rejecting unauthenticated request", "reason", reason)
					httpx.JSONError(w, http.StatusUnauthorized, codeUnauthenticated, "authentication required")
					return
				}
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithOperatorID(r.Context(), operatorID)))
		})
	}
}

// RequireAuth is Authenticate with required set.
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return Authenticate(store, log, true)
}

func operatorFromSession(store sessions.Store, r *http.Request) (uuid.UUID, string) {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return uuid.Nil, "invalid session cookie"
	}
	raw, ok := session.Values[sessionOperatorIDKey].(string)
	if !ok || raw == "" {
		return uuid.Nil, "session missing operator_id"
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, "invalid operator_id in session"
	}
	return id, ""
}
