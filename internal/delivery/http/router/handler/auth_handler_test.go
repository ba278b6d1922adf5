package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory/internal/delivery/http/validator"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase lets each test script the usecase outcome directly.
type stubAccountUsecase struct {
	signupOutput *usecase.SignupOutput
	signupErr    error
	loginOutput  *usecase.LoginOutput
	loginErr     error
	accounts     []*usecase.AccountSummary

	lastSignupInput *usecase.SignupInput
	lastLoginInput  *usecase.LoginInput
}

func (s *stubAccountUsecase) Signup(_ context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	s.lastSignupInput = input

	return s.signupOutput, s.signupErr
}

func (s *stubAccountUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	s.lastLoginInput = input

	return s.loginOutput, s.loginErr
}

func (s *stubAccountUsecase) ListAccounts(_ context.Context) ([]*usecase.AccountSummary, error) {
	return s.accounts, nil
}

func (s *stubAccountUsecase) FindByUsername(_ context.Context, _ string) (*entity.Account, error) {
	return nil, domainerrors.ErrAccountUnknown
}

func newHandlerTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAccountUsecase{
		signupOutput: &usecase.SignupOutput{
			UserID:    1,
			Firstname: "Alice",
			Lastname:  "Smith",
			Username:  "alice",
			Email:     "alice@example.com",
			Role:      "USER",
		},
	}
	h := NewAuthHandler(stub, testLogger())

	body := `{"firstname":"Alice","lastname":"Smith","username":"alice","email":"alice@example.com","password":"secret123","role":"ADMIN"}`
	c, rec := newHandlerTestContext(http.MethodPost, "/api/auth/signup", body)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, stub.lastSignupInput)
	assert.Equal(t, "alice", stub.lastSignupInput.Username)
	assert.Equal(t, "secret123", stub.lastSignupInput.Password)
	assert.Equal(t, "ADMIN", stub.lastSignupInput.Role)

	var envelope struct {
		Success bool           `json:"success"`
		Data    SignupResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, int64(1), envelope.Data.UserID)
	assert.Equal(t, "USER", envelope.Data.Role)
}

func TestAuthHandler_Signup_UsecaseErrorPropagates(t *testing.T) {
	stub := &stubAccountUsecase{signupErr: domainerrors.ErrUsernameTaken}
	h := NewAuthHandler(stub, testLogger())

	c, _ := newHandlerTestContext(http.MethodPost, "/api/auth/signup", `{"username":"alice"}`)

	err := h.Signup(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthHandler_Signup_RejectsOversizedFields(t *testing.T) {
	stub := &stubAccountUsecase{}
	h := NewAuthHandler(stub, testLogger())

	body := `{"username":"` + strings.Repeat("a", 256) + `","password":"secret123"}`
	c, rec := newHandlerTestContext(http.MethodPost, "/api/auth/signup", body)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.lastSignupInput)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAccountUsecase{
		loginOutput: &usecase.LoginOutput{
			Token:    "signed.jwt.token",
			Type:     "Bearer",
			UserID:   7,
			Username: "alice",
			Role:     "USER",
			Message:  "Login successful",
		},
	}
	h := NewAuthHandler(stub, testLogger())

	c, rec := newHandlerTestContext(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"secret123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Message string        `json:"message"`
		Data    LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Login successful", envelope.Message)
	assert.Equal(t, "signed.jwt.token", envelope.Data.Token)
	assert.Equal(t, "Bearer", envelope.Data.Type)
	assert.Equal(t, int64(7), envelope.Data.UserID)
}

func TestAuthHandler_Login_InvalidPasswordPropagates(t *testing.T) {
	stub := &stubAccountUsecase{loginErr: domainerrors.ErrInvalidPassword}
	h := NewAuthHandler(stub, testLogger())

	c, _ := newHandlerTestContext(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"wrong"}`)

	err := h.Login(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
}

func TestAuthHandler_ListAccounts(t *testing.T) {
	stub := &stubAccountUsecase{
		accounts: []*usecase.AccountSummary{
			{UserID: 1, Username: "alice", Role: "USER"},
			{UserID: 2, Username: "bob", Role: "ADMIN"},
		},
	}
	h := NewAuthHandler(stub, testLogger())

	c, rec := newHandlerTestContext(http.MethodGet, "/api/auth/accounts", "")

	require.NoError(t, h.ListAccounts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []AccountResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "bob", envelope.Data[1].Username)
}
