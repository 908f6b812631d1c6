package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/tendapp/tend/internal/cli"
	"github.com/tendapp/tend/internal/cli/backups"
	"github.com/tendapp/tend/internal/cli/system"
	"github.com/tendapp/tend/internal/constants"
	"github.com/tendapp/tend/internal/errors"
	"github.com/tendapp/tend/internal/logger"
	"github.com/tendapp/tend/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"string" default:"~/.config/tend/tend.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init       system.InitCmd    `cmd:"" help:"Initialize tend storage."`
	Migrate    system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor     system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui        system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today      cli.TodayCmd      `cmd:"" help:"Show today's due habits."`
	Stats      cli.StatsCmd      `cmd:"" help:"Show completion statistics."`
	Calendar   cli.CalendarCmd   `cmd:"" help:"Show a month calendar of completions."`
	Review     cli.ReviewCmd     `cmd:"" help:"Review recent progress."`
	Milestones cli.MilestonesCmd `cmd:"" help:"List milestones."`
	Habit      cli.HabitCmd      `cmd:"" help:"Manage habits and habit tracking."`
	Reflect    cli.ReflectCmd    `cmd:"" help:"Record and browse reflections."`
	Profile    cli.ProfileCmd    `cmd:"" help:"View and edit your profile."`
	Backup     struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit tracker with streaks, schedules, and milestones"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	dbPath := expandHome(CLI.Config)
	store := sqlite.NewStore(dbPath)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(dbPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	appCtx := &cli.Context{Store: store}

	// Every command except init needs a loaded store; init creates it.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
