package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/groupdrive-backend/api/middleware"
	pkgerrors "github.com/angelmondragon/groupdrive-backend/pkg/errors"
)

// requireUserID returns the authenticated caller placed in the context by
// middleware.Auth.
func requireUserID(r *http.Request) (uuid.UUID, error) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	return actor.UserID, nil
}

func unavailable(name string) error {
	return pkgerrors.New(pkgerrors.CodeInternal, name+" unavailable")
}
