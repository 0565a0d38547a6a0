package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitkit/internal/auth"
	"github.com/julianstephens/habitkit/internal/keyring"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/session"
	"github.com/julianstephens/habitkit/internal/validation"
)

type SignupCmd struct {
	Name  string `short:"n" help:"Display name."`
	Email string `short:"e" help:"Email address."`
	Phone string `short:"p" help:"Phone number."`
}

func (c *SignupCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	in := auth.SignUpInput{
		Name:        c.Name,
		Email:       c.Email,
		PhoneNumber: c.Phone,
	}

	// Password is never taken as a flag; missing fields mean we run the
	// interactive form for everything.
	if in.Name == "" || in.Email == "" {
		if err := signupForm(&in); err != nil {
			return err
		}
	} else {
		if err := passwordForm(&in.Password); err != nil {
			return err
		}
	}

	user, err := ctx.Auth.SignUp(in, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Welcome, %s! You are signed in as %s.\n", user.Name, user.Email)
	return nil
}

func signupForm(in *auth.SignUpInput) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&in.Name).
				Validate(func(s string) error {
					return validation.Required("name", s)
				}),
			huh.NewInput().
				Title("Email").
				Value(&in.Email).
				Validate(validation.Email),
			huh.NewInput().
				Title("Phone (optional)").
				Value(&in.PhoneNumber),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&in.Password).
				Validate(validation.Password),
		),
	).WithTheme(huh.ThemeDracula()).Run()
}

func passwordForm(password *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(validation.Password),
		),
	).WithTheme(huh.ThemeDracula()).Run()
}

type SigninCmd struct {
	Email    string `short:"e" help:"Email address."`
	Remember bool   `short:"r" help:"Save credentials to the OS keyring."`
}

func (c *SigninCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	email := c.Email
	var password string

	// No email flag: try saved credentials before prompting.
	if email == "" {
		if creds, err := keyring.GetCredentials(); err == nil {
			email = creds.Email
			password = creds.Password
		} else if !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("keyring lookup failed", "error", err)
		}
	}

	if email == "" || password == "" {
		if err := signinForm(&email, &password); err != nil {
			return err
		}
	}

	user, err := ctx.Auth.SignIn(email, password)
	if err != nil {
		return err
	}

	if c.Remember {
		if err := keyring.SetCredentials(keyring.Credentials{Email: email, Password: password}); err != nil {
			logger.Warn("failed to save credentials to keyring", "error", err)
		}
	}

	fmt.Printf("Signed in as %s.\n", user.Email)
	return nil
}

func signinForm(email, password *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(email).
				Validate(validation.Email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(func(s string) error {
					return validation.Required("password", s)
				}),
		),
	).WithTheme(huh.ThemeDracula()).Run()
}

type SignoutCmd struct {
	Forget bool `short:"f" help:"Also remove saved credentials from the OS keyring."`
}

func (c *SignoutCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Auth.SignOut(); err != nil {
		return err
	}
	if c.Forget {
		if err := keyring.DeleteCredentials(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("failed to remove credentials from keyring", "error", err)
		}
	}
	fmt.Println("Signed out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		if errors.Is(err, session.ErrNotSignedIn) {
			fmt.Println("Not signed in.")
			return nil
		}
		return err
	}
	fmt.Printf("%s <%s> (id %s)\n", user.Name, user.Email, user.ID)
	return nil
}
