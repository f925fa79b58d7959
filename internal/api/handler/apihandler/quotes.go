package apihandler

import (
	"net/http"
	"strings"

	"carmate/internal/quote"
	"carmate/pkg/domain"
)

type submitQuoteBody struct {
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
	Note        string `json:"note"`
	EstDays     int    `json:"estDays"`
}

// handleRequestQuotes serves POST (provider submits) and GET (list) on
// /api/service-requests/{id}/quotes.
func (a *API) handleRequestQuotes(w http.ResponseWriter, r *http.Request, requestID domain.RequestID) {
	switch r.Method {
	case http.MethodPost:
		user, err := requireRole(r, domain.RoleProvider)
		if err != nil {
			writeServiceError(r, w, err)

			return
		}

		var body submitQuoteBody
		if err := decodeJSON(w, r, &body); err != nil {
			writeServiceError(r, w, err)

			return
		}

		q, err := a.deps.Quotes.Submit(r.Context(), user.ID, requestID, quote.SubmitInput{
			AmountCents: body.AmountCents,
			Currency:    strings.ToUpper(strings.TrimSpace(body.Currency)),
			Note:        body.Note,
			EstDays:     body.EstDays,
		})
		if err != nil {
			writeServiceError(r, w, err)

			return
		}

		writeJSON(w, http.StatusCreated, q)
	case http.MethodGet:
		quotes, err := a.deps.Quotes.ListByRequest(r.Context(), userFrom(r.Context()), requestID)
		if err != nil {
			writeServiceError(r, w, err)

			return
		}

		writeJSON(w, http.StatusOK, pageResponse[domain.Quote]{Items: quotes})
	default:
		methodNotAllowed(w)
	}
}

func (a *API) handleQuoteSubroute(w http.ResponseWriter, r *http.Request, rawID, action string) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)

		return
	}

	id, err := parseID(rawID)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}
	quoteID := domain.QuoteID(id)

	switch action {
	case "accept":
		user, err := requireRole(r, domain.RoleCustomer)
		if err != nil {
			writeServiceError(r, w, err)

			return
		}

		q, err := a.deps.Quotes.Accept(r.Context(), user.ID, quoteID)
		if err != nil {
			writeServiceError(r, w, err)

			return
		}

		writeJSON(w, http.StatusOK, q)
	case "withdraw":
		user, err := requireRole(r, domain.RoleProvider)
		if err != nil {
			writeServiceError(r, w, err)

			return
		}

		q, err := a.deps.Quotes.Withdraw(r.Context(), user.ID, quoteID)
		if err != nil {
			writeServiceError(r, w, err)

			return
		}

		writeJSON(w, http.StatusOK, q)
	case "complete":
		user, err := requireRole(r, domain.RoleProvider)
		if err != nil {
			writeServiceError(r, w, err)

			return
		}

		req, err := a.deps.Quotes.Complete(r.Context(), user.ID, quoteID)
		if err != nil {
			writeServiceError(r, w, err)

			return
		}

		writeJSON(w, http.StatusOK, req)
	default:
		notFound(w)
	}
}
