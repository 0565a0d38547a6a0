package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitkit/internal/auth"
	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/constants"
	apperrors "github.com/julianstephens/habitkit/internal/errors"
	"github.com/julianstephens/habitkit/internal/habits"
	"github.com/julianstephens/habitkit/internal/keyring"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/session"
	"github.com/julianstephens/habitkit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path, a postgres:// URL, or 'postgres' to use the saved connection." default:"~/.config/habitkit/habitkit.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize habitkit storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks on storage and services."`
	Serve  cli.ServeCmd  `cmd:"" help:"Run the local mock REST API."`
	Auth   struct {
		Signup  cli.SignupCmd  `cmd:"" help:"Create an account."`
		Signin  cli.SigninCmd  `cmd:"" help:"Sign in."`
		Signout cli.SignoutCmd `cmd:"" help:"Sign out."`
		Whoami  cli.WhoamiCmd  `cmd:"" help:"Show the signed-in user."`
	} `cmd:"" help:"Manage accounts and sessions."`
	Habit struct {
		Add      cli.HabitAddCmd      `cmd:"" help:"Add a new habit."`
		List     cli.HabitListCmd     `cmd:"" help:"List habits with progress."`
		Toggle   cli.HabitToggleCmd   `cmd:"" help:"Toggle a habit's completion for a date."`
		Progress cli.HabitProgressCmd `cmd:"" help:"Show progress for a habit."`
		Edit     cli.HabitEditCmd     `cmd:"" help:"Edit a habit."`
		Delete   cli.HabitDeleteCmd   `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Task struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a calendar task."`
		List   cli.TaskListCmd   `cmd:"" help:"List calendar tasks."`
		Edit   cli.TaskEditCmd   `cmd:"" help:"Edit a calendar task."`
		Toggle cli.TaskToggleCmd `cmd:"" help:"Toggle a calendar task's completion."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a calendar task."`
	} `cmd:"" help:"Manage calendar tasks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker and day calendar"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	configDir := filepath.Dir(expandHome(constants.DefaultConfigPath))
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	store, err := buildStore(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}

	sess := session.NewManager(store)
	appCtx := &cli.Context{
		Store:    store,
		Session:  sess,
		Auth:     auth.NewService(store, sess),
		Habits:   habits.NewService(store),
		Calendar: calendar.NewService(store),
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

// buildStore picks the primary backend from the config value and pairs
// it with a JSON mirror for offline fallback. A plain .json path runs
// without a mirror.
func buildStore(config string) (storage.Store, error) {
	config = expandHome(config)

	switch {
	case config == "postgres":
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			return nil, fmt.Errorf("no saved postgres connection: %w", err)
		}
		return storage.NewMirroredStore(
			storage.NewPostgresStore(connStr),
			storage.NewJSONStore(defaultMirrorPath()),
		), nil

	case strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://"):
		if storage.HasEmbeddedCredentials(config) {
			return nil, fmt.Errorf("connection string contains credentials; remove them and rely on .pgpass or environment variables")
		}
		// Remember the connection so later runs can use --config postgres.
		if err := keyring.SetConnectionString(config); err != nil {
			logger.Warn("failed to save connection string to keyring", "error", err)
		}
		return storage.NewMirroredStore(
			storage.NewPostgresStore(config),
			storage.NewJSONStore(defaultMirrorPath()),
		), nil

	case strings.HasSuffix(config, ".json"):
		return storage.NewJSONStore(config), nil

	default:
		mirror := strings.TrimSuffix(config, ".db") + ".json"
		return storage.NewMirroredStore(
			storage.NewSQLiteStore(config),
			storage.NewJSONStore(mirror),
		), nil
	}
}

func defaultMirrorPath() string {
	return strings.TrimSuffix(expandHome(constants.DefaultConfigPath), ".db") + ".json"
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}
