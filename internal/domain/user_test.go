package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  bool
	}{
		{
			name:     "valid",
			userName: "Devin Sanders",
			email:    "tristanjacobs@gmail.com",
			password: "$2a$10$FB/BOAVhpuLvpOREQVmvmezD4ED/.JBIDRh70tGevYzYzQgFId2u.",
		},
		{name: "missing name", email: "a@example.com", password: "pw", wantErr: true},
		{name: "missing email", userName: "Ann", password: "pw", wantErr: true},
		{name: "malformed email", userName: "Ann", email: "not-an-email", password: "pw", wantErr: true},
		{name: "missing password", userName: "Ann", email: "a@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.userName, tt.email, tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.userName, user.Name)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, tt.password, user.Password)
			assert.Zero(t, user.ID)
		})
	}
}
