package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-volunteer-hub/models"
	"github.com/go-resty/resty/v2"
)

// codeErrors maps the envelope codes that are finer than the status code.
var codeErrors = map[string]error{
	"INVALID_CREDENTIALS":       ErrInvalidCredentials,
	"EVENT_FULL":                ErrEventFull,
	"EVENT_CLOSED":              ErrEventClosed,
	"ALREADY_REGISTERED":        ErrAlreadyRegistered,
	"NOT_REGISTERED":            ErrNotRegistered,
	"INVALID_STATUS_TRANSITION": ErrInvalidStatusTransition,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var envelope models.ErrorResponse
	if json.Unmarshal(resp.Body(), &envelope) == nil && envelope.Error != "" {
		body = envelope.Error
		if err, ok := codeErrors[envelope.Code]; ok {
			return fmt.Errorf("%w: %s", err, body)
		}
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
