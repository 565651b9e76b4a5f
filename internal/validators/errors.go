package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUsernameRequired = errors.New("username is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrInvalidEmail     = errors.New("email is invalid")
	ErrPasswordRequired = errors.New("password is required")
	ErrInvalidRole      = errors.New("role must be volunteer or organizer")
	ErrNoFieldsToUpdate = errors.New("at least one field (username or email) is required")

	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrLocationRequired    = errors.New("location is required")
	ErrInvalidCategory     = errors.New("unknown category")
	ErrDateRequired        = errors.New("date is required")
	ErrInvalidCapacity     = errors.New("requiredVolunteers must be at least 1")
	ErrInvalidStatus       = errors.New("unknown status")
	ErrInvalidAvailability = errors.New("unknown availability")
)
