package cli

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/migration"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/migrations"
)

var findProcesses = ps.Processes

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	reachable := false

	if err := checkPrimaryReachable(ctx); err != nil {
		fmt.Printf("❌ Primary store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Primary store reachable: OK\n")
		reachable = true
	}

	if err := checkSchemaVersion(ctx); err != nil {
		fmt.Printf("❌ Schema version: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Schema version: OK\n")
	}

	if reachable {
		if err := checkMirrorSync(ctx); err != nil {
			fmt.Printf("⚠ Mirror in sync: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Mirror in sync: OK\n")
		}
	} else {
		fmt.Printf("⊘ Mirror in sync: SKIPPED (primary not reachable)\n")
	}

	if err := checkServeProcess(); err != nil {
		fmt.Printf("⚠ Mock API server: %v\n", err)
	} else {
		fmt.Printf("✓ Mock API server: running\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkPrimaryReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	if db := storeDB(primaryOf(ctx.Store)); db != nil {
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *Context) error {
	primary := primaryOf(ctx.Store)
	db := storeDB(primary)
	if db == nil {
		// JSON primary has no schema version.
		return nil
	}

	dir := "sqlite"
	if _, ok := primary.(*storage.PostgresStore); ok {
		dir = "postgres"
	}
	subFS, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("failed to access migrations: %w", err)
	}

	runner := migration.NewRunner(db, subFS)
	current, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if current > latest {
		return fmt.Errorf("schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}

	return nil
}

// checkMirrorSync compares the session and account documents between
// the primary and the mirror. Divergence is expected after offline
// fallback writes, so it only warns.
func checkMirrorSync(ctx *Context) error {
	mirrored, ok := ctx.Store.(*storage.MirroredStore)
	if !ok {
		return nil
	}

	mirror := mirrored.Mirror()
	if err := mirror.Load(); err != nil {
		return fmt.Errorf("mirror not readable: %v", err)
	}

	var diverged []string
	for _, key := range []string{constants.CurrentUserKey, constants.UsersKey, constants.TasksKey} {
		pv, perr := mirrored.Primary().Get(key)
		mv, merr := mirror.Get(key)
		if errors.Is(perr, storage.ErrNotFound) && errors.Is(merr, storage.ErrNotFound) {
			continue
		}
		if perr != nil || merr != nil || !bytes.Equal(pv, mv) {
			diverged = append(diverged, key)
		}
	}

	if len(diverged) > 0 {
		return fmt.Errorf("mirror differs from primary for: %s", strings.Join(diverged, ", "))
	}
	return nil
}

func checkServeProcess() error {
	procs, err := findProcesses()
	if err != nil {
		return fmt.Errorf("could not inspect processes: %v", err)
	}
	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() != self && strings.HasPrefix(p.Executable(), constants.AppName) {
			return nil
		}
	}
	return fmt.Errorf("not running (start one with 'habitkit serve')")
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func primaryOf(store storage.Store) storage.Store {
	if mirrored, ok := store.(*storage.MirroredStore); ok {
		return mirrored.Primary()
	}
	return store
}

func storeDB(store storage.Store) *sql.DB {
	switch s := store.(type) {
	case *storage.SQLiteStore:
		return s.DB()
	case *storage.PostgresStore:
		return s.DB()
	default:
		return nil
	}
}
