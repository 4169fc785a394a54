package middleware

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/groupdrive-backend/api/responses"
	pkgAuth "github.com/angelmondragon/groupdrive-backend/pkg/auth"
	"github.com/angelmondragon/groupdrive-backend/pkg/auth/session"
	"github.com/angelmondragon/groupdrive-backend/pkg/config"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/groupdrive-backend/pkg/errors"
	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
)

// BearerToken extracts the token from an Authorization header. The "Bearer"
// scheme is optional.
func BearerToken(r *http.Request) string {
	token := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}

// Auth validates a bearer token against its live session and seeds the
// request context with the Actor. Tokens naming a user role this service does
// not know are rejected.
func Auth(cfg config.JWTConfig, verifier session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}
			if claims.ID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
				return
			}
			role, err := enums.ParseUserRole(string(claims.Role))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "unknown role"))
				return
			}

			if verifier != nil {
				ok, err := verifier.HasSession(r.Context(), claims.ID)
				if err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session"))
					return
				}
				if !ok {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session unavailable"))
					return
				}
			}

			ctx := WithActor(r.Context(), Actor{UserID: claims.UserID, Role: role})
			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
				ctx = logg.WithField(ctx, "actor_role", role.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
