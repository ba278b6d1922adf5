// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockEmailHasher mocks service.EmailHasher.
type MockEmailHasher struct {
	mock.Mock
}

func (m *MockEmailHasher) HashForLookup(email string) (string, error) {
	args := m.Called(email)

	return args.String(0), args.Error(1)
}

func (m *MockEmailHasher) Verify(email, hash string) (bool, error) {
	args := m.Called(email, hash)

	return args.Bool(0), args.Error(1)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(username, role string, userID int64) (string, error) {
	args := m.Called(username, role, userID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString, expectedUsername string) bool {
	args := m.Called(tokenString, expectedUsername)

	return args.Bool(0)
}

func (m *MockTokenService) ExtractUsername(tokenString string) (string, error) {
	args := m.Called(tokenString)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ExtractUserID(tokenString string) (int64, error) {
	args := m.Called(tokenString)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenService) ExtractRole(tokenString string) (string, error) {
	args := m.Called(tokenString)

	return args.String(0), args.Error(1)
}
