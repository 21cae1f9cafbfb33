package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"swipedeck/internal/delivery/http/middleware"
	"swipedeck/internal/delivery/http/validator"
	domainerrors "swipedeck/internal/domain/errors"
	"swipedeck/internal/usecase"
)

// newTestServer wires an echo instance with the real error handler and
// validator so tests observe the same JSON bodies clients get.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserHandler_Register_Success(t *testing.T) {
	e := newTestServer(t)
	uc := &mockUserUsecase{}
	handler := NewUserHandler(uc, discardLogger())
	e.POST("/register", handler.Register)

	uc.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.Username == "alice" && input.Password == "hunter2"
	})).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User registered successfully")
	uc.AssertExpectations(t)
}

func TestUserHandler_Register_EmptyAndNullBodies(t *testing.T) {
	e := newTestServer(t)
	uc := &mockUserUsecase{}
	handler := NewUserHandler(uc, discardLogger())
	e.POST("/register", handler.Register)

	// Neither body carries fields; both must answer 400 without reaching
	// the usecase.
	for _, body := range []string{"", "null", "{}"} {
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Contains(t, rec.Body.String(), "Username and password are required")
	}

	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_DuplicateUsername(t *testing.T) {
	e := newTestServer(t)
	uc := &mockUserUsecase{}
	handler := NewUserHandler(uc, discardLogger())
	e.POST("/register", handler.Register)

	uc.On("Register", mock.Anything, mock.Anything).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("username alice is taken"))

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
}

func TestUserHandler_Register_StorageFailure(t *testing.T) {
	e := newTestServer(t)
	uc := &mockUserUsecase{}
	handler := NewUserHandler(uc, discardLogger())
	e.POST("/register", handler.Register)

	uc.On("Register", mock.Anything, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(assertableErr("connection refused"), "insert failed"))

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Database error")
	// Internal detail stays in the logs.
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.NotContains(t, rec.Body.String(), "insert failed")
}

func TestUserHandler_Login_Success(t *testing.T) {
	e := newTestServer(t)
	uc := &mockUserUsecase{}
	handler := NewUserHandler(uc, discardLogger())
	e.POST("/login", handler.Login)

	uc.On("Login", mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
		return input.Username == "alice" && input.Password == "hunter2"
	})).Return(&usecase.LoginOutput{Token: "signed.session.token"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed.session.token"`)
}

func TestUserHandler_Login_BadCredentials(t *testing.T) {
	e := newTestServer(t)
	uc := &mockUserUsecase{}
	handler := NewUserHandler(uc, discardLogger())
	e.POST("/login", handler.Login)

	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown username"))

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"ghost","password":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
	assert.NotContains(t, rec.Body.String(), "unknown username")
}

func TestUserHandler_Login_EmptyAndNullBodies(t *testing.T) {
	e := newTestServer(t)
	uc := &mockUserUsecase{}
	handler := NewUserHandler(uc, discardLogger())
	e.POST("/login", handler.Login)

	// Missing credentials answer like wrong ones.
	for _, body := range []string{"", "null", "{}"} {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Contains(t, rec.Body.String(), "Invalid username or password")
	}

	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t)
	e.GET("/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

// assertableErr keeps test error text obvious in failure output.
type assertableErr string

func (e assertableErr) Error() string { return string(e) }
