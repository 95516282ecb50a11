package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"testing"

	"github.com/phrazzld/lightbnb/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{name: "no command", args: nil, errContains: "no command given"},
		{name: "unknown command", args: []string{"serve"}, errContains: `unknown command "serve"`},
		{name: "unknown flag", args: []string{"seed", "-force"}, errContains: "flag provided but not defined"},
		{name: "unknown migration", args: []string{"migrate", "create"}, errContains: `unknown migration command "create"`},
		{name: "too many migration args", args: []string{"migrate", "up", "down"}, errContains: "at most one"},
		{name: "seed with arguments", args: []string{"seed", "now"}, errContains: "unexpected arguments"},
		{name: "bad minimum price", args: []string{"properties", "-min", "cheap"}, errContains: "invalid search option"},
		{name: "inverted price range", args: []string{"properties", "-min", "200", "-max", "100"}, errContains: "minimum price"},
		{name: "rating out of range", args: []string{"properties", "-rating", "6"}, errContains: "validation failed"},
		{name: "missing guest", args: []string{"reservations"}, errContains: "-guest"},
		{name: "user without selector", args: []string{"user"}, errContains: "exactly one"},
		{name: "user with both selectors", args: []string{"user", "-email", "a@b.com", "-id", "1"}, errContains: "exactly one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			err := run(context.Background(), tt.args, &stdout, &stderr)
			require.Error(t, err)
			assert.ErrorIs(t, err, errUsage)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"help"}, &stdout, &stderr))
	for name := range commands {
		assert.Contains(t, stdout.String(), name)
	}

	stdout.Reset()
	require.NoError(t, run(context.Background(), []string{"properties", "-h"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "-rating")
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseCommands_Accept(t *testing.T) {
	tests := []struct {
		name  string
		parse func(fs *flag.FlagSet, args []string) (action, error)
		args  []string
	}{
		{name: "migrate default", parse: parseMigrate, args: nil},
		{name: "migrate status", parse: parseMigrate, args: []string{"status"}},
		{name: "seed", parse: parseSeed, args: nil},
		{name: "properties without filters", parse: parseProperties, args: nil},
		{
			name:  "properties with filters",
			parse: parseProperties,
			args:  []string{"-city", "Vancouver", "-min", "50", "-max", "250.5", "-rating", "4", "-limit", "3"},
		},
		{name: "reservations", parse: parseReservations, args: []string{"-guest", "1", "-limit", "5"}},
		{name: "user by email", parse: parseUser, args: []string{"-email", "tristanjacobs@gmail.com"}},
		{name: "user by id", parse: parseUser, args: []string{"-id", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act, err := tt.parse(newFlagSet(tt.name), tt.args)
			require.NoError(t, err)
			assert.NotNil(t, act)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeJSON(&buf, (*domain.User)(nil)))
	assert.Equal(t, "null\n", buf.String())

	buf.Reset()
	require.NoError(t, writeJSON(&buf, &domain.User{ID: 1, Name: "Devin Sanders", Email: "tristanjacobs@gmail.com", Password: "secret"}))
	assert.Contains(t, buf.String(), "\n  \"name\": \"Devin Sanders\"")
	assert.NotContains(t, buf.String(), "secret")
}
