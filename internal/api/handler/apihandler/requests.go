package apihandler

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"carmate/internal/request"
	"carmate/pkg/domain"
	"carmate/pkg/serrors"

	"github.com/google/uuid"
)

const maxMultipartMemory int64 = 32 << 20

type vehicleBody struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"licensePlate"`
	VIN          string `json:"vin"`
	Mileage      int    `json:"mileage"`
}

type createRequestBody struct {
	Vehicle             vehicleBody `json:"vehicle"`
	ServiceType         string      `json:"serviceType"`
	Symptoms            string      `json:"symptoms"`
	PreferredDate       string      `json:"preferredDate"`
	PreferredTimeWindow string      `json:"preferredTimeWindow"`
	Location            string      `json:"location"`
	Urgency             string      `json:"urgency"`
}

func (b createRequestBody) toInput() (request.CreateInput, error) {
	var preferredDate time.Time
	if b.PreferredDate != "" {
		t, err := time.Parse("2006-01-02", b.PreferredDate)
		if err != nil {
			t, err = time.Parse(time.RFC3339, b.PreferredDate)
		}
		if err != nil {
			return request.CreateInput{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid preferred date")
		}
		preferredDate = t
	}

	return request.CreateInput{
		Vehicle: domain.Vehicle{
			Make:         b.Vehicle.Make,
			Model:        b.Vehicle.Model,
			Year:         b.Vehicle.Year,
			LicensePlate: b.Vehicle.LicensePlate,
			VIN:          b.Vehicle.VIN,
			Mileage:      b.Vehicle.Mileage,
		},
		ServiceType:         b.ServiceType,
		Symptoms:            b.Symptoms,
		PreferredDate:       preferredDate,
		PreferredTimeWindow: domain.TimeWindow(strings.ToUpper(b.PreferredTimeWindow)),
		Location:            b.Location,
		Urgency:             domain.Urgency(strings.ToUpper(b.Urgency)),
	}, nil
}

// parseID turns a path segment into a UUID, mapping garbage to 404 so
// unknown and malformed IDs look the same to the client.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, serrors.Wrap(serrors.ErrNotFound, err, "not found")
	}

	return id, nil
}

func (a *API) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)

		return
	}

	user, err := requireRole(r, domain.RoleCustomer)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	var body createRequestBody
	var files []*multipart.FileHeader
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			writeServiceError(r, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid multipart form"))

			return
		}
		if err := json.Unmarshal([]byte(r.FormValue("payload")), &body); err != nil {
			writeServiceError(r, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload part"))

			return
		}
		files = r.MultipartForm.File["photos"]
	} else if err := decodeJSON(w, r, &body); err != nil {
		writeServiceError(r, w, err)

		return
	}

	in, err := body.toInput()
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	req, err := a.deps.Requests.Create(r.Context(), user.ID, in)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	if len(files) > 0 {
		photos, err := a.attachUploads(r, user.ID, req.ID, files)
		if err != nil {
			writeServiceError(r, w, err)

			return
		}
		req.Photos = photos
	}

	writeJSON(w, http.StatusCreated, req)
}

// attachUploads opens the multipart file headers and hands them to the
// request service.
func (a *API) attachUploads(r *http.Request,
	customerID domain.UserID,
	requestID domain.RequestID,
	files []*multipart.FileHeader) ([]domain.RequestPhoto, error) {
	uploads := make([]request.Upload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read uploaded file")
		}
		defer func() { _ = f.Close() }()

		uploads = append(uploads, request.Upload{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     f,
		})
	}

	return a.deps.Requests.AttachPhotos(r.Context(), customerID, requestID, uploads)
}

type pageResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

func (a *API) handleMyRequests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)

		return
	}

	user, err := requireRole(r, domain.RoleCustomer)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	cursor, limit := pageParams(r)
	status := domain.RequestStatus(strings.ToUpper(r.URL.Query().Get("status")))

	items, next, err := a.deps.Requests.CustomerRequests(r.Context(), user.ID, status, cursor, limit)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	writeJSON(w, http.StatusOK, pageResponse[domain.ServiceRequest]{Items: items, NextCursor: next})
}

func (a *API) handleRequestByID(w http.ResponseWriter, r *http.Request, rawID string) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)

		return
	}

	id, err := parseID(rawID)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	req, err := a.deps.Requests.ByID(r.Context(), userFrom(r.Context()), domain.RequestID(id))
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	writeJSON(w, http.StatusOK, req)
}

func (a *API) handleRequestSubroute(w http.ResponseWriter, r *http.Request, rawID, sub string) {
	id, err := parseID(rawID)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}
	requestID := domain.RequestID(id)

	switch sub {
	case "cancel":
		a.handleCancelRequest(w, r, requestID)
	case "quotes":
		a.handleRequestQuotes(w, r, requestID)
	case "review":
		a.handleCreateReview(w, r, requestID)
	default:
		notFound(w)
	}
}

func (a *API) handleCancelRequest(w http.ResponseWriter, r *http.Request, requestID domain.RequestID) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)

		return
	}

	user, err := requireRole(r, domain.RoleCustomer)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	req, err := a.deps.Requests.Cancel(r.Context(), user.ID, requestID)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	writeJSON(w, http.StatusOK, req)
}

func (a *API) handleUploadPhotos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)

		return
	}

	user, err := requireRole(r, domain.RoleCustomer)
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeServiceError(r, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid multipart form"))

		return
	}

	id, err := uuid.Parse(r.FormValue("requestId"))
	if err != nil {
		writeServiceError(r, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request id"))

		return
	}

	photos, err := a.attachUploads(r, user.ID, domain.RequestID(id), r.MultipartForm.File["photos"])
	if err != nil {
		writeServiceError(r, w, err)

		return
	}

	writeJSON(w, http.StatusCreated, photos)
}
