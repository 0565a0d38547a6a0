package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetCredentials(t *testing.T) {
	gokeyring.MockInit()

	creds := Credentials{Email: "ada@example.com", Password: "hunter22"}
	if err := SetCredentials(creds); err != nil {
		t.Fatalf("SetCredentials failed: %v", err)
	}

	got, err := GetCredentials()
	if err != nil {
		t.Fatalf("GetCredentials failed: %v", err)
	}
	if got != creds {
		t.Errorf("GetCredentials() = %+v, want %+v", got, creds)
	}
}

func TestSetCredentialsRequiresEmail(t *testing.T) {
	gokeyring.MockInit()

	if err := SetCredentials(Credentials{Password: "hunter22"}); err == nil {
		t.Error("expected an error for empty email")
	}
}

func TestGetCredentialsNotFound(t *testing.T) {
	gokeyring.MockInit()

	if _, err := GetCredentials(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCredentials(t *testing.T) {
	gokeyring.MockInit()

	if err := SetCredentials(Credentials{Email: "ada@example.com", Password: "hunter22"}); err != nil {
		t.Fatalf("SetCredentials failed: %v", err)
	}
	if err := DeleteCredentials(); err != nil {
		t.Fatalf("DeleteCredentials failed: %v", err)
	}
	if _, err := GetCredentials(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := DeleteCredentials(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for repeat delete, got %v", err)
	}
}

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	connStr := "postgres://app@localhost:5432/habitkit?sslmode=disable"
	if err := SetConnectionString(connStr); err != nil {
		t.Fatalf("SetConnectionString failed: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString failed: %v", err)
	}
	if got != connStr {
		t.Errorf("GetConnectionString() = %q, want %q", got, connStr)
	}
}

func TestSetConnectionStringEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString(""); err == nil {
		t.Error("expected an error for an empty connection string")
	}
}
