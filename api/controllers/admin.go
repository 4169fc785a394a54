package controllers

import (
	"net/http"

	"github.com/angelmondragon/groupdrive-backend/api/responses"
	"github.com/angelmondragon/groupdrive-backend/api/validators"
	"github.com/angelmondragon/groupdrive-backend/internal/groups"
	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
)

// AdminLockedGroups lists groups that filled up and await dealer offers.
func AdminLockedGroups(svc groups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("groups service"))
			return
		}

		list, err := svc.Locked(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func AdminGroupComplete(svc groups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("groups service"))
			return
		}

		groupID, err := validators.URLParamUUID(r, "groupId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		group, err := svc.Complete(r.Context(), groupID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, group)
	}
}

// AdminSeedGroups creates the showcase group for brands that have none.
func AdminSeedGroups(svc groups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("groups service"))
			return
		}

		result, err := svc.SeedSamples(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
