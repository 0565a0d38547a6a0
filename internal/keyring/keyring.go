package keyring

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/habitkit/internal/constants"
)

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Credentials is the "remember me" payload saved by sign-in.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GetCredentials retrieves saved sign-in credentials from the OS keyring.
// Returns ErrNotFound if nothing is stored.
func GetCredentials() (Credentials, error) {
	raw, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return Credentials{}, ErrNotFound
		}
		return Credentials{}, fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse saved credentials: %w", err)
	}
	return creds, nil
}

// SetCredentials stores sign-in credentials in the OS keyring.
func SetCredentials(creds Credentials) error {
	if creds.Email == "" {
		return errors.New("email cannot be empty")
	}
	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to serialize credentials: %w", err)
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, string(raw)); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// DeleteCredentials removes saved credentials from the OS keyring.
func DeleteCredentials() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// GetConnectionString retrieves the database connection string from the OS
// keyring. Returns ErrNotFound if none is stored.
func GetConnectionString() (string, error) {
	connStr, err := keyring.Get(constants.AppName, "database-connection")
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

// SetConnectionString stores the database connection string in the OS keyring.
func SetConnectionString(connStr string) error {
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, "database-connection", connStr); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}
	return nil
}
