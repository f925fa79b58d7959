package apihandler

import (
	"net/http"

	"carmate/pkg/domain"
)

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)

		return
	}

	if _, err := requireRole(r, domain.RoleAdmin); err != nil {
		writeServiceError(r, w, err)

		return
	}

	cursor, limit := pageParams(r)
	items, next, err := a.deps.Account.Users(r.Context(), cursor, limit)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	writeJSON(w, http.StatusOK, pageResponse[domain.User]{Items: items, NextCursor: next})
}

func (a *API) handleToggleUser(w http.ResponseWriter, r *http.Request, rawID string) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)

		return
	}

	if _, err := requireRole(r, domain.RoleAdmin); err != nil {
		writeServiceError(r, w, err)

		return
	}

	id, err := parseID(rawID)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	user, err := a.deps.Account.ToggleActive(r.Context(), domain.UserID(id))
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	writeJSON(w, http.StatusOK, user)
}
