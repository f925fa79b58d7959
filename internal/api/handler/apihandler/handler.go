package apihandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"carmate/internal/account"
	"carmate/internal/quote"
	"carmate/internal/request"
	"carmate/internal/review"
	"carmate/pkg/logger"
	"carmate/pkg/serrors"

	"go.uber.org/zap"
)

const (
	maxJSONBodyBytes int64 = 1 << 20

	defaultPageSize uint = 20
	maxPageSize     uint = 100
)

// Deps groups the services the API dispatches to.
type Deps struct {
	Account  account.Account
	Requests request.Requests
	Quotes   quote.Quotes
	Reviews  review.Reviews
}

// API routes requests under /api to the service layer. Authentication is
// handled by the bearer middleware in sec.go; handlers read the caller from
// the request context.
type API struct {
	deps Deps
	sec  *SecHandler
}

// New constructs the API handler.
func New(deps Deps, sec *SecHandler) *API {
	return &API{deps: deps, sec: sec}
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	segments := splitPath(r.URL.Path)
	if len(segments) < 2 || segments[0] != "api" {
		notFound(w)

		return
	}

	// public auth endpoints first, everything else requires a bearer token
	if segments[1] == "auth" && len(segments) == 3 {
		switch segments[2] {
		case "register":
			a.handleRegister(w, r)

			return
		case "login":
			a.handleLogin(w, r)

			return
		case "forgot-password":
			a.handleForgotPassword(w, r)

			return
		case "reset-password":
			a.handleResetPassword(w, r)

			return
		}
	}

	user, err := a.sec.Authenticate(r)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}
	r = r.WithContext(withUser(r.Context(), user))

	switch {
	case isExactRoute(segments, "api", "auth", "me"):
		a.handleMe(w, r)
	case isExactRoute(segments, "api", "auth", "updateProfile"):
		a.handleUpdateProfile(w, r)
	case isExactRoute(segments, "api", "service-requests"):
		a.handleCreateRequest(w, r)
	case isExactRoute(segments, "api", "service-requests", "me"):
		a.handleMyRequests(w, r)
	case isExactRoute(segments, "api", "service-requests", "upload-photos"):
		a.handleUploadPhotos(w, r)
	case len(segments) == 3 && segments[1] == "service-requests":
		a.handleRequestByID(w, r, segments[2])
	case len(segments) == 4 && segments[1] == "service-requests":
		a.handleRequestSubroute(w, r, segments[2], segments[3])
	case len(segments) == 4 && segments[1] == "quotes":
		a.handleQuoteSubroute(w, r, segments[2], segments[3])
	case len(segments) == 4 && segments[1] == "providers":
		a.handleProviderSubroute(w, r, segments[2], segments[3])
	case isExactRoute(segments, "api", "users"):
		a.handleListUsers(w, r)
	case len(segments) == 4 && segments[1] == "users" && segments[3] == "toggle":
		a.handleToggleUser(w, r, segments[2])
	default:
		notFound(w)
	}
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return []string{}
	}

	return strings.Split(trimmed, "/")
}

func isExactRoute(segments []string, parts ...string) bool {
	if len(segments) != len(parts) {
		return false
	}
	for idx, part := range parts {
		if segments[idx] != part {
			return false
		}
	}

	return true
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError sends the {"message": ...} envelope the frontend parses.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeServiceError translates serrors kinds to HTTP statuses. Unrecognized
// errors are logged and masked as a plain 500.
func writeServiceError(r *http.Request, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		status = http.StatusTooManyRequests
	}

	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "internal error", zap.Error(err))
		writeError(w, status, "internal error")

		return
	}

	writeError(w, status, clientMessage(err))
}

// clientMessage extracts the human-readable message attached to a semantic
// error, falling back to the error string.
func clientMessage(err error) string {
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		return serr.Message()
	}

	return err.Error()
}

// pageParams reads cursor and limit query parameters, clamping limit to
// [1, maxPageSize] with a default of defaultPageSize.
func pageParams(r *http.Request) (cursor string, limit uint) {
	q := r.URL.Query()
	cursor = q.Get("cursor")

	limit = defaultPageSize
	if raw := q.Get("limit"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil && v > 0 {
			limit = uint(v)
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return cursor, limit
}
