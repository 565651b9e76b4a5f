package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-volunteer-hub/models"
)

// Field names accepted by RequestValidator.Validate.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"

	// FieldChanges requires a ProfilePatch to change at least one field.
	FieldChanges = "changes"

	FieldTitle              = "title"
	FieldDescription        = "description"
	FieldLocation           = "location"
	FieldCategory           = "category"
	FieldDate               = "date"
	FieldRequiredVolunteers = "requiredVolunteers"
	FieldStatus             = "status"
	FieldAvailability       = "availability"
)

// RequestValidator validates the user and event request models.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.ProfilePatch:
		return v.validateProfilePatch(value, fields...)
	case *models.ProfilePatch:
		return v.validateProfilePatch(*value, fields...)

	case models.CreateEventRequest:
		return v.validateCreateEvent(value, fields...)
	case *models.CreateEventRequest:
		return v.validateCreateEvent(*value, fields...)

	case models.UpdateEventStatusRequest:
		return v.validateStatus(value, fields...)
	case *models.UpdateEventStatusRequest:
		return v.validateStatus(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(req.Username) == "" {
				return ErrUsernameRequired
			}
		case FieldEmail:
			if req.Email == "" {
				return ErrEmailRequired
			}
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrPasswordRequired
			}
		case FieldRole:
			if !req.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateProfilePatch(patch models.ProfilePatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges, FieldUsername, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldChanges:
			if patch.Empty() {
				return ErrNoFieldsToUpdate
			}
		case FieldUsername:
			if patch.Username != nil && strings.TrimSpace(*patch.Username) == "" {
				return ErrUsernameRequired
			}
		case FieldEmail:
			if patch.Email != nil {
				if err := validateEmail(*patch.Email); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateEvent(req models.CreateEventRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldLocation, FieldCategory, FieldDate, FieldRequiredVolunteers}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return ErrTitleRequired
			}
		case FieldDescription:
			if strings.TrimSpace(req.Description) == "" {
				return ErrDescriptionRequired
			}
		case FieldLocation:
			if strings.TrimSpace(req.Location) == "" {
				return ErrLocationRequired
			}
		case FieldCategory:
			if !req.Category.Valid() {
				return fmt.Errorf("%w %q", ErrInvalidCategory, req.Category)
			}
		case FieldDate:
			if req.Date.IsZero() {
				return ErrDateRequired
			}
		case FieldRequiredVolunteers:
			if req.RequiredVolunteers < 1 {
				return ErrInvalidCapacity
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateStatus(req models.UpdateEventStatusRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if !req.Status.Valid() {
				return fmt.Errorf("%w %q", ErrInvalidStatus, req.Status)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAvailability}
	}

	for _, f := range fields {
		switch f {
		case FieldAvailability:
			if !req.Availability.Valid() {
				return fmt.Errorf("%w %q", ErrInvalidAvailability, req.Availability)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// validateEmail only requires a local part and a domain around a single @.
func validateEmail(email string) error {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return ErrInvalidEmail
	}
	return nil
}
