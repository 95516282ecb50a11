package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/phrazzld/lightbnb/internal/catalog"
	"github.com/phrazzld/lightbnb/internal/domain"
	"github.com/phrazzld/lightbnb/internal/platform/postgres"
	"github.com/phrazzld/lightbnb/internal/store"
)

// errUsage marks errors caused by bad command-line input.
var errUsage = errors.New("usage error")

// action runs a parsed command against a ready application.
type action func(ctx context.Context, app *application, out io.Writer) error

type command struct {
	summary string
	parse   func(fs *flag.FlagSet, args []string) (action, error)
}

var commands = map[string]command{
	"migrate": {
		summary: "migrate [up|down|redo|reset|status|version]  apply or inspect schema migrations",
		parse:   parseMigrate,
	},
	"seed": {
		summary: "seed  insert the bundled users and properties",
		parse:   parseSeed,
	},
	"properties": {
		summary: "properties [-city C] [-min N] [-max N] [-rating R] [-limit N]  search reviewed properties",
		parse:   parseProperties,
	},
	"reservations": {
		summary: "reservations -guest ID [-limit N]  list a guest's reservations",
		parse:   parseReservations,
	},
	"user": {
		summary: "user (-email E | -id ID)  look up a user",
		parse:   parseUser,
	},
}

// run parses args and executes the selected command. Flags are validated
// before any configuration is loaded or connection opened.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return fmt.Errorf("%w: no command given", errUsage)
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		printUsage(stdout)
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		printUsage(stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	act, err := cmd.parse(fs, args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %s: %w", errUsage, name, err)
	}

	app, err := newApplication(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			app.logger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	return act(ctx, app, stdout)
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "usage: lightbnb <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].summary)
	}
}

func parseMigrate(fs *flag.FlagSet, args []string) (action, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	migration := "up"
	switch fs.NArg() {
	case 0:
	case 1:
		migration = fs.Arg(0)
	default:
		return nil, fmt.Errorf("expected at most one migration command, got %q", strings.Join(fs.Args(), " "))
	}
	if !postgres.IsMigrationCommand(migration) {
		return nil, fmt.Errorf("unknown migration command %q (expected one of %v)",
			migration, postgres.MigrationCommands)
	}

	return func(ctx context.Context, app *application, _ io.Writer) error {
		return postgres.Migrate(ctx, app.db.DB, migration, app.logger)
	}, nil
}

func parseSeed(fs *flag.FlagSet, args []string) (action, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments %q", strings.Join(fs.Args(), " "))
	}

	return func(ctx context.Context, app *application, out io.Writer) error {
		c, err := catalog.Load(app.logger)
		if err != nil {
			return err
		}
		result, err := c.Seed(ctx, app.users, app.properties)
		if err != nil {
			return err
		}
		return writeJSON(out, result)
	}, nil
}

func parseProperties(fs *flag.FlagSet, args []string) (action, error) {
	city := fs.String("city", "", "substring of the city name")
	minPrice := fs.String("min", "", "minimum price per night")
	maxPrice := fs.String("max", "", "maximum price per night")
	rating := fs.String("rating", "", "minimum average rating")
	limit := fs.Int("limit", store.DefaultLimit, "maximum number of properties")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts, err := domain.ParsePropertySearchOptions(map[string]string{
		domain.OptionCity:                 *city,
		domain.OptionMinimumPricePerNight: *minPrice,
		domain.OptionMaximumPricePerNight: *maxPrice,
		domain.OptionRating:               *rating,
	})
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, app *application, out io.Writer) error {
		properties, err := app.properties.Search(ctx, opts, *limit)
		if err != nil {
			return err
		}
		return writeJSON(out, properties)
	}, nil
}

func parseReservations(fs *flag.FlagSet, args []string) (action, error) {
	guestID := fs.Int64("guest", 0, "guest user id (required)")
	limit := fs.Int("limit", store.DefaultLimit, "maximum number of reservations")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *guestID <= 0 {
		return nil, errors.New("-guest must be a positive user id")
	}

	return func(ctx context.Context, app *application, out io.Writer) error {
		reservations, err := app.reservations.ListByGuest(ctx, *guestID, *limit)
		if err != nil {
			return err
		}
		return writeJSON(out, reservations)
	}, nil
}

func parseUser(fs *flag.FlagSet, args []string) (action, error) {
	email := fs.String("email", "", "user email")
	id := fs.Int64("id", 0, "user id")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	byEmail, byID := *email != "", *id != 0
	if byEmail == byID {
		return nil, errors.New("exactly one of -email or -id is required")
	}

	// A missing user prints null.
	return func(ctx context.Context, app *application, out io.Writer) error {
		var (
			user *domain.User
			err  error
		)
		if byEmail {
			user, err = app.users.GetByEmail(ctx, *email)
		} else {
			user, err = app.users.GetByID(ctx, *id)
		}
		if err != nil {
			return err
		}
		return writeJSON(out, user)
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
