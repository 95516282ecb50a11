// Package mocks provides centralized mock implementations for testing.
//
// Each mock embeds testify's mock.Mock, so tests declare expectations with On
// and verify them with AssertExpectations:
//
//	users := &mocks.TestifyMockUserStore{}
//	users.On("GetByEmail", mock.Anything, "tristanjacobs@gmail.com").Return(nil, nil)
//
//	// Use the mock in your test...
//
//	users.AssertExpectations(t)
//
// When adding a new mock to this package, create a file named after the
// interface being mocked and add a compile-time interface assertion.
package mocks
