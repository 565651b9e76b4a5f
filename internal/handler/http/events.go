// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-volunteer-hub/internal/app"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/internal/utils"
	"github.com/MKhiriev/go-volunteer-hub/models"
	"github.com/go-chi/chi/v5"
)

const (
	// maxImageSize is the largest accepted event image.
	maxImageSize = 5 << 20

	// maxFormMemory bounds the multipart form kept in memory. Form fields
	// are small, so the image dominates.
	maxFormMemory = maxImageSize + 1<<20

	imageFormField = "image"
)

// dateLayouts are accepted for the multipart "date" field.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", time.DateOnly}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.services.EventService.ListEvents(r.Context())
	writeEvents(w, r, events, err)
}

func (h *Handler) listOrganizedEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	events, err := h.services.EventService.ListOrganized(ctx, userID)
	writeEvents(w, r, events, err)
}

func (h *Handler) listVolunteeredEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	events, err := h.services.EventService.ListVolunteered(ctx, userID)
	writeEvents(w, r, events, err)
}

func writeEvents(w http.ResponseWriter, r *http.Request, events []models.Event, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	utils.WriteJSON(w, models.DataResponse[[]models.Event]{Data: events}, http.StatusOK)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.services.EventService.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse[models.Event]{Data: event}, http.StatusOK)
}

// createEvent accepts either a JSON body or a multipart form carrying the
// same fields plus an optional "image" file.
func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var (
		req   models.CreateEventRequest
		image *models.EventImage
		err   error
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		req, image, err = parseEventForm(w, r)
	} else {
		err = decodeJSON(w, r, &req)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	event, err := h.services.EventService.CreateEvent(ctx, userID, req, image)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse[models.Event]{Data: event}, http.StatusCreated)
}

func parseEventForm(w http.ResponseWriter, r *http.Request) (models.CreateEventRequest, *models.EventImage, error) {
	var req models.CreateEventRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxFormMemory)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return req, nil, fmt.Errorf("%w: limit is %d bytes", ErrImageTooLarge, maxImageSize)
		}
		return req, nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	req.Title = r.FormValue("title")
	req.Description = r.FormValue("description")
	req.Location = r.FormValue("location")
	req.Category = models.EventCategory(r.FormValue("category"))
	req.Impact = r.FormValue("impact")

	if raw := strings.TrimSpace(r.FormValue("requiredVolunteers")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, nil, fmt.Errorf("%w: requiredVolunteers must be a number", ErrInvalidForm)
		}
		req.RequiredVolunteers = n
	}

	if raw := strings.TrimSpace(r.FormValue("date")); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			return req, nil, fmt.Errorf("%w: date has unknown format", ErrInvalidForm)
		}
		req.Date = date
	}

	image, err := readImage(r)
	if err != nil {
		return req, nil, err
	}

	return req, image, nil
}

func parseDate(raw string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var date time.Time
		if date, err = time.Parse(layout, raw); err == nil {
			return date, nil
		}
	}
	return time.Time{}, err
}

// readImage returns the uploaded image or nil when the form has none.
func readImage(r *http.Request) (*models.EventImage, error) {
	file, header, err := r.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	defer file.Close()

	if header.Size > maxImageSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrImageTooLarge, maxImageSize)
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrImageTooLarge, maxImageSize)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return &models.EventImage{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

func (h *Handler) updateEventStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.UpdateEventStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	event, err := h.services.EventService.UpdateStatus(ctx, userID, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse[models.Event]{Data: event}, http.StatusOK)
}

// registerForEvent adds the caller to the event roster. The application
// body is optional.
func (h *Handler) registerForEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.services.EventService.Register(ctx, chi.URLParam(r, "id"), userID, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgRegisteredForEvent}, http.StatusCreated)
}

func (h *Handler) withdrawFromEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	if _, err := h.services.EventService.Withdraw(ctx, chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgWithdrawnFromEvent}, http.StatusOK)
}

func (h *Handler) listApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	applications, err := h.services.EventService.ListApplications(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if applications == nil {
		applications = []models.Application{}
	}

	utils.WriteJSON(w, models.DataResponse[[]models.Application]{Data: applications}, http.StatusOK)
}

func (h *Handler) getEventImage(w http.ResponseWriter, r *http.Request) {
	image, err := h.services.EventService.GetEventImage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer image.Body.Close()

	w.Header().Set("Content-Type", image.ContentType)
	if image.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(image.Size, 10))
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, image.Body); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.getEventImage").Msg("failed to stream event image")
	}
}
