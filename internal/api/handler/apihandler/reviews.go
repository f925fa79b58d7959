package apihandler

import (
	"net/http"

	"carmate/internal/review"
	"carmate/pkg/domain"
)

type createReviewBody struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (a *API) handleCreateReview(w http.ResponseWriter, r *http.Request, requestID domain.RequestID) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)

		return
	}

	user, err := requireRole(r, domain.RoleCustomer)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	var body createReviewBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeServiceError(r, w, err)

		return
	}

	rev, err := a.deps.Reviews.Create(r.Context(), user.ID, requestID, review.CreateInput{
		Rating:  body.Rating,
		Comment: body.Comment,
	})
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	writeJSON(w, http.StatusCreated, rev)
}

func (a *API) handleProviderSubroute(w http.ResponseWriter, r *http.Request, rawID, sub string) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)

		return
	}

	id, err := parseID(rawID)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}
	providerID := domain.UserID(id)

	switch sub {
	case "reviews":
		cursor, limit := pageParams(r)
		items, next, err := a.deps.Reviews.ProviderReviews(r.Context(), providerID, cursor, limit)
		if err != nil {
			writeServiceError(r, w, err)

			return
		}

		writeJSON(w, http.StatusOK, pageResponse[domain.Review]{Items: items, NextCursor: next})
	case "rating":
		rating, err := a.deps.Reviews.Rating(r.Context(), providerID)
		if err != nil {
			writeServiceError(r, w, err)

			return
		}

		writeJSON(w, http.StatusOK, rating)
	default:
		notFound(w)
	}
}
