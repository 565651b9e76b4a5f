package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-volunteer-hub/internal/config"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/internal/utils"
	"github.com/MKhiriev/go-volunteer-hub/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates cfg.ServerAddress and
// configures the underlying resty client with the resolved base URL and
// request timeout.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL)
	client.SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request returns a request bound to ctx. Once a session exists the token
// is also sent as a bearer header, since the jar drops Secure cookies over
// plain HTTP.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) setToken(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()
}

// do sends req and decodes a 2xx body into result, when given.
func do(req *resty.Request, method, path string, result any) error {
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.UserView, error) {
	var user models.UserView
	if err := do(h.request(ctx).SetBody(req), resty.MethodPost, "/api/users/signup", &user); err != nil {
		return models.UserView{}, err
	}

	h.setToken(user.Token)
	return user, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.UserView, error) {
	var user models.UserView
	if err := do(h.request(ctx).SetBody(req), resty.MethodPost, "/api/users/login", &user); err != nil {
		return models.UserView{}, err
	}

	h.setToken(user.Token)
	return user, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	if err := do(h.request(ctx), resty.MethodPost, "/api/users/logout", nil); err != nil {
		return err
	}

	h.setToken("")
	return nil
}

func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.UserView, error) {
	var user models.UserView
	err := do(h.request(ctx), resty.MethodPost, "/api/users/curr", &user)
	return user, err
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.UserView, error) {
	var users []models.UserView
	err := do(h.request(ctx), resty.MethodGet, "/api/users/", &users)
	return users, err
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.ProfileView, error) {
	var resp models.ProfileResponse
	err := do(h.request(ctx).SetBody(req), resty.MethodPut, "/api/users/update", &resp)
	return resp.User, err
}

func (h *httpServerAdapter) listEvents(ctx context.Context, path string) ([]models.Event, error) {
	var resp models.DataResponse[[]models.Event]
	err := do(h.request(ctx), resty.MethodGet, path, &resp)
	return resp.Data, err
}

func (h *httpServerAdapter) ListEvents(ctx context.Context) ([]models.Event, error) {
	return h.listEvents(ctx, "/api/events")
}

func (h *httpServerAdapter) ListOrganizedEvents(ctx context.Context) ([]models.Event, error) {
	return h.listEvents(ctx, "/api/events/organized")
}

func (h *httpServerAdapter) ListVolunteeredEvents(ctx context.Context) ([]models.Event, error) {
	return h.listEvents(ctx, "/api/events/volunteered")
}

func (h *httpServerAdapter) GetEvent(ctx context.Context, eventID string) (models.Event, error) {
	var resp models.DataResponse[models.Event]
	err := do(h.request(ctx).SetPathParam("id", eventID), resty.MethodGet, "/api/events/{id}", &resp)
	return resp.Data, err
}

func (h *httpServerAdapter) CreateEvent(ctx context.Context, req models.CreateEventRequest) (models.Event, error) {
	var resp models.DataResponse[models.Event]
	err := do(h.request(ctx).SetBody(req), resty.MethodPost, "/api/events", &resp)
	return resp.Data, err
}

func (h *httpServerAdapter) UpdateEventStatus(ctx context.Context, eventID string, status models.EventStatus) (models.Event, error) {
	var resp models.DataResponse[models.Event]
	req := h.request(ctx).
		SetPathParam("id", eventID).
		SetBody(models.UpdateEventStatusRequest{Status: status})

	err := do(req, resty.MethodPut, "/api/events/{id}/status", &resp)
	return resp.Data, err
}

func (h *httpServerAdapter) RegisterForEvent(ctx context.Context, eventID string, req models.RegisterRequest) error {
	return do(h.request(ctx).SetPathParam("id", eventID).SetBody(req), resty.MethodPost, "/api/events/{id}/register", nil)
}

func (h *httpServerAdapter) WithdrawFromEvent(ctx context.Context, eventID string) error {
	return do(h.request(ctx).SetPathParam("id", eventID), resty.MethodDelete, "/api/events/{id}/register", nil)
}

func (h *httpServerAdapter) ListApplications(ctx context.Context, eventID string) ([]models.Application, error) {
	var resp models.DataResponse[[]models.Application]
	err := do(h.request(ctx).SetPathParam("id", eventID), resty.MethodGet, "/api/events/{id}/volunteer", &resp)
	return resp.Data, err
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("GET /api/version/: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
