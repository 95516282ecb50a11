package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/lightbnb/internal/domain"
	"github.com/phrazzld/lightbnb/internal/mocks"
	"github.com/phrazzld/lightbnb/internal/platform/logger"
	"github.com/phrazzld/lightbnb/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	app          *application
	users        *mocks.TestifyMockUserStore
	properties   *mocks.TestifyMockPropertyStore
	reservations *mocks.TestifyMockReservationStore
}

func newTestApp(t *testing.T) testApp {
	t.Helper()

	log, _ := logger.NewTestLogger(t)
	ta := testApp{
		users:        &mocks.TestifyMockUserStore{},
		properties:   &mocks.TestifyMockPropertyStore{},
		reservations: &mocks.TestifyMockReservationStore{},
	}
	ta.app = &application{
		logger:       log,
		users:        ta.users,
		properties:   ta.properties,
		reservations: ta.reservations,
	}

	t.Cleanup(func() {
		ta.users.AssertExpectations(t)
		ta.properties.AssertExpectations(t)
		ta.reservations.AssertExpectations(t)
	})
	return ta
}

func TestPropertiesAction(t *testing.T) {
	ta := newTestApp(t)

	expectedOpts := domain.PropertySearchOptions{
		City:                 "van",
		MinimumPricePerNight: domain.Float64(50),
	}
	rating := 4.5
	ta.properties.On("Search", mock.Anything, expectedOpts, 3).
		Return([]domain.Property{{ID: 4, Title: "Headed know", City: "Vancouver", CostPerNight: 8215, AverageRating: &rating}}, nil)

	act, err := parseProperties(newFlagSet("properties"), []string{"-city", "van", "-min", "50", "-limit", "3"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, act(context.Background(), ta.app, &out))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Headed know", got[0]["title"])
	assert.EqualValues(t, 8215, got[0]["cost_per_night"])
	assert.EqualValues(t, 4.5, got[0]["average_rating"])
}

func TestPropertiesAction_DefaultLimit(t *testing.T) {
	ta := newTestApp(t)

	ta.properties.On("Search", mock.Anything, domain.PropertySearchOptions{}, store.DefaultLimit).
		Return([]domain.Property{}, nil)

	act, err := parseProperties(newFlagSet("properties"), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, act(context.Background(), ta.app, &out))
	assert.Equal(t, "[]\n", out.String())
}

func TestReservationsAction(t *testing.T) {
	t.Run("lists reservations", func(t *testing.T) {
		ta := newTestApp(t)

		start := time.Date(2018, time.September, 11, 0, 0, 0, 0, time.UTC)
		ta.reservations.On("ListByGuest", mock.Anything, int64(1), 2).
			Return([]domain.Reservation{{ID: 1, StartDate: start, EndDate: start.AddDate(0, 0, 15), PropertyID: 1, GuestID: 1}}, nil)

		act, err := parseReservations(newFlagSet("reservations"), []string{"-guest", "1", "-limit", "2"})
		require.NoError(t, err)

		var out bytes.Buffer
		require.NoError(t, act(context.Background(), ta.app, &out))
		assert.Contains(t, out.String(), `"start_date": "2018-09-11T00:00:00Z"`)
	})

	t.Run("store failure", func(t *testing.T) {
		ta := newTestApp(t)

		failure := errors.New("connection refused")
		ta.reservations.On("ListByGuest", mock.Anything, int64(1), store.DefaultLimit).Return(nil, failure)

		act, err := parseReservations(newFlagSet("reservations"), []string{"-guest", "1"})
		require.NoError(t, err)

		var out bytes.Buffer
		assert.ErrorIs(t, act(context.Background(), ta.app, &out), failure)
		assert.Empty(t, out.String())
	})
}

func TestUserAction(t *testing.T) {
	t.Run("by email", func(t *testing.T) {
		ta := newTestApp(t)

		ta.users.On("GetByEmail", mock.Anything, "tristanjacobs@gmail.com").
			Return(&domain.User{ID: 1, Name: "Devin Sanders", Email: "tristanjacobs@gmail.com", Password: "hash"}, nil)

		act, err := parseUser(newFlagSet("user"), []string{"-email", "tristanjacobs@gmail.com"})
		require.NoError(t, err)

		var out bytes.Buffer
		require.NoError(t, act(context.Background(), ta.app, &out))
		assert.Contains(t, out.String(), `"name": "Devin Sanders"`)
		assert.NotContains(t, out.String(), "hash")
	})

	t.Run("missing user prints null", func(t *testing.T) {
		ta := newTestApp(t)

		ta.users.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)

		act, err := parseUser(newFlagSet("user"), []string{"-id", "404"})
		require.NoError(t, err)

		var out bytes.Buffer
		require.NoError(t, act(context.Background(), ta.app, &out))
		assert.Equal(t, "null\n", out.String())
	})
}

func TestSeedAction(t *testing.T) {
	ta := newTestApp(t)

	ta.users.On("GetByEmail", mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)
	ta.users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(&domain.User{ID: 10}, nil)
	ta.properties.On("Create", mock.Anything, mock.AnythingOfType("*domain.Property")).
		Return(&domain.Property{ID: 1}, nil)

	act, err := parseSeed(newFlagSet("seed"), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, act(context.Background(), ta.app, &out))

	var result map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, 4, result["users_created"])
	assert.Equal(t, 5, result["properties_created"])

	ta.users.AssertNumberOfCalls(t, "Create", 4)
	ta.properties.AssertNumberOfCalls(t, "Create", 5)
	for _, call := range ta.properties.Calls {
		property := call.Arguments.Get(1).(*domain.Property)
		assert.Equal(t, int64(10), property.OwnerID)
	}
}
