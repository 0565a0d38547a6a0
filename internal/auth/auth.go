package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/session"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/validation"
)

var (
	// ErrDuplicateEmail is returned when sign-up finds the address already
	// registered. Nothing is written in that case.
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is returned when sign-in finds no matching
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// SignUpInput carries the sign-up form fields.
type SignUpInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
}

// Service manages the local account list and the active session.
type Service struct {
	store   storage.Store
	session *session.Manager
}

func NewService(store storage.Store, sess *session.Manager) *Service {
	return &Service{
		store:   store,
		session: sess,
	}
}

// SignUp validates the input, rejects duplicate emails, and appends the
// new account. The new user becomes the active session.
func (s *Service) SignUp(in SignUpInput, now time.Time) (models.User, error) {
	if err := validation.Required("name", in.Name); err != nil {
		return models.User{}, err
	}
	if err := validation.Email(in.Email); err != nil {
		return models.User{}, err
	}
	if err := validation.Required("phone number", in.PhoneNumber); err != nil {
		return models.User{}, err
	}
	if err := validation.Password(in.Password); err != nil {
		return models.User{}, err
	}

	users, err := s.loadUsers()
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Email == in.Email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:          uuid.New().String(),
		Email:       in.Email,
		Password:    in.Password,
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.saveUsers(append(users, user)); err != nil {
		return models.User{}, err
	}

	if err := s.session.Start(user); err != nil {
		// The account exists; a broken session just means signing in again.
		logger.Warn("Failed to start session after sign-up", "email", user.Email, "error", err)
	}

	logger.Info("User registered", "email", user.Email)
	return user, nil
}

// SignIn scans the account list for a matching email/password pair and
// starts a session for it.
func (s *Service) SignIn(email, password string) (models.User, error) {
	users, err := s.loadUsers()
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			if err := s.session.Start(u); err != nil {
				return models.User{}, err
			}
			return u, nil
		}
	}

	return models.User{}, ErrInvalidCredentials
}

// SignOut ends the active session.
func (s *Service) SignOut() error {
	return s.session.End()
}

func (s *Service) loadUsers() ([]models.User, error) {
	raw, err := s.store.Get(constants.UsersKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to parse users: %w", err)
	}

	return users, nil
}

func (s *Service) saveUsers(users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to serialize users: %w", err)
	}
	if err := s.store.Set(constants.UsersKey, raw); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}
