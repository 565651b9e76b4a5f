package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-volunteer-hub/internal/config"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/internal/store"
	"github.com/MKhiriev/go-volunteer-hub/internal/utils"
	"github.com/MKhiriev/go-volunteer-hub/internal/validators"
	"github.com/MKhiriev/go-volunteer-hub/models"
)

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification and profile management using
// a UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// eventRepository expands the profile event lists into summaries.
	eventRepository store.EventRepository

	tokens TokenService
	ids    IDGenerator

	validator validators.Validator

	// hashCost is the bcrypt cost used when hashing a new password.
	hashCost int

	// dummyHash is compared against when the username is unknown. It is
	// built at hashCost so both failed logins take the same time.
	dummyHash string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(
	userRepository store.UserRepository,
	eventRepository store.EventRepository,
	tokens TokenService,
	ids IDGenerator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:  userRepository,
		eventRepository: eventRepository,
		tokens:          tokens,
		ids:             ids,
		validator:       validators.NewRequestValidator(),
		hashCost:        cfg.PasswordHashCost,
		dummyHash:       utils.DummyHash(cfg.PasswordHashCost),
		logger:          logger,
	}
}

// Signup creates a new account and issues its first session token.
//
// The user is persisted before the token is issued, so a failed insert
// never hands out a token for a user that does not exist.
//
// Returns:
//   - ErrBadRequest if a field is missing or malformed.
//   - ErrConflict if the username is already taken.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.UserView, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		err = fmt.Errorf("%w: %w", ErrBadRequest, err)
		log.Debug().Err(err).Str("func", "authService.Signup").Str("username", req.Username).Msg("invalid signup data")
		return models.UserView{}, models.Token{}, err
	}

	hash, err := utils.HashPassword(req.Password, a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "authService.Signup").Msg("failed to hash password")
		return models.UserView{}, models.Token{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:       a.ids.Generate(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return models.UserView{}, models.Token{}, fmt.Errorf("%w: username already exists", ErrConflict)
		}
		log.Err(err).Str("func", "authService.Signup").Str("username", req.Username).Msg("user creation ended with error")
		return models.UserView{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.tokens.Issue(ctx, user.UserID)
	if err != nil {
		return models.UserView{}, models.Token{}, err
	}

	log.Info().Str("func", "authService.Signup").Str("user_id", user.UserID).Str("role", string(user.Role)).Msg("user signed up")

	view := user.View()
	view.Token = token.SignedString

	return view, token, nil
}

// Login checks the credentials and issues a session token.
//
// An unknown username and a wrong password both yield
// ErrInvalidCredentials. Unknown usernames still pay for one bcrypt
// comparison so the two cases take the same time.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.UserView, models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		return models.UserView{}, models.Token{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		_ = utils.ComparePassword(a.dummyHash, req.Password)
		log.Debug().Str("func", "authService.Login").Str("username", req.Username).Msg("unknown username")
		return models.UserView{}, models.Token{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Str("func", "authService.Login").Msg("user search by username failed")
		return models.UserView{}, models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := utils.ComparePassword(user.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			log.Err(err).Str("func", "authService.Login").Str("user_id", user.UserID).Msg("stored password hash is unusable")
		}
		return models.UserView{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(ctx, user.UserID)
	if err != nil {
		return models.UserView{}, models.Token{}, err
	}

	view := user.View()
	view.Token = token.SignedString

	return view, token, nil
}

// Logout revokes the token when it still verifies. Invalid, expired or
// absent tokens are ignored: the session is over either way.
func (a *authService) Logout(ctx context.Context, tokenString string) error {
	token, err := a.tokens.Verify(ctx, tokenString)
	if err != nil {
		return nil
	}

	if err := a.tokens.Revoke(ctx, token); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authService.Logout").
			Str("user_id", token.UserID).
			Msg("failed to revoke token, it stays valid until expiry")
	}

	return nil
}

// UpdateProfile changes the username and/or email of userID.
//
// Fields equal to the stored values are dropped from the patch; when
// nothing is left the call succeeds without writing.
//
// Returns:
//   - ErrBadRequest if patch is empty.
//   - ErrNotFound if the user does not exist.
//   - ErrConflict if another user owns the new username or email.
func (a *authService) UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch) (models.ProfileView, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, patch); err != nil {
		return models.ProfileView{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	user, err := a.findUser(ctx, userID)
	if err != nil {
		return models.ProfileView{}, err
	}

	if patch.Username != nil && *patch.Username == user.Username {
		patch.Username = nil
	}
	if patch.Email != nil && *patch.Email == user.Email {
		patch.Email = nil
	}

	if !patch.Empty() {
		user, err = a.userRepository.UpdateUser(ctx, userID, patch)
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			return models.ProfileView{}, fmt.Errorf("%w: username already taken", ErrConflict)
		case errors.Is(err, store.ErrEmailTaken):
			return models.ProfileView{}, fmt.Errorf("%w: email already in use", ErrConflict)
		case errors.Is(err, store.ErrUserNotFound):
			return models.ProfileView{}, fmt.Errorf("%w: user not found", ErrNotFound)
		case err != nil:
			log.Err(err).Str("func", "authService.UpdateProfile").Str("user_id", userID).Msg("failed to update user")
			return models.ProfileView{}, fmt.Errorf("failed to update user: %w", err)
		}

		log.Info().Str("func", "authService.UpdateProfile").Str("user_id", userID).Msg("profile updated")
	}

	return a.profile(ctx, user)
}

// GetCurrentUser returns the public view of userID.
func (a *authService) GetCurrentUser(ctx context.Context, userID string) (models.UserView, error) {
	user, err := a.findUser(ctx, userID)
	if err != nil {
		return models.UserView{}, err
	}

	return user.View(), nil
}

// ListOthers returns every user except userID.
func (a *authService) ListOthers(ctx context.Context, userID string) ([]models.UserView, error) {
	users, err := a.userRepository.ListUsers(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.ListOthers").Msg("failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	views := make([]models.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, user.View())
	}

	return views, nil
}

func (a *authService) findUser(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.findUser").Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// profile expands the event id lists of user into summaries.
func (a *authService) profile(ctx context.Context, user models.User) (models.ProfileView, error) {
	registered, err := a.eventRepository.ListEvents(ctx, models.EventFilter{VolunteerID: user.UserID})
	if err != nil {
		return models.ProfileView{}, fmt.Errorf("failed to list registered events: %w", err)
	}

	created, err := a.eventRepository.ListEvents(ctx, models.EventFilter{OrganizerID: user.UserID})
	if err != nil {
		return models.ProfileView{}, fmt.Errorf("failed to list created events: %w", err)
	}

	return models.ProfileView{
		UserID:           user.UserID,
		Username:         user.Username,
		Email:            user.Email,
		Role:             user.Role,
		RegisteredEvents: summaries(registered),
		CreatedEvents:    summaries(created),
		CreatedAt:        user.CreatedAt,
	}, nil
}

func summaries(events []models.Event) []models.EventSummary {
	out := make([]models.EventSummary, 0, len(events))
	for _, event := range events {
		out = append(out, event.Summary())
	}
	return out
}
