package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/space/planet-moon-api/internal/core/domain"
	"github.com/space/planet-moon-api/internal/core/ports"
)

func TestUserHandler_Create_Success(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.Username != "carol" || input.Role != domain.RoleStaff {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Enabled != nil {
				t.Fatalf("enabled should be nil when omitted")
			}
			return &domain.User{
				UserID:       6,
				Username:     input.Username,
				PasswordHash: "$2a$10$hash",
				Enabled:      true,
				Active:       true,
				Role:         input.Role,
				CreatedAt:    time.Now().UTC(),
				UpdatedAt:    time.Now().UTC(),
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"username":"carol","password":"secret9","role":"STAFF"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["userId"] != float64(6) || resp["role"] != "STAFF" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "hash") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("credential leaked in response: %s", rec.Body.String())
	}
}

func TestUserHandler_Create_InvalidRole(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"username":"carol","password":"secret9","role":"OVERLORD"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Create_Duplicate(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"username":"admin","password":"secret9","role":"ADMIN"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserHandler_Update_EmptyPasswordAccepted(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
			if input.Password != "" {
				t.Fatalf("expected empty password, got %q", input.Password)
			}
			return &domain.User{UserID: id, Username: input.Username, Enabled: input.Enabled, Active: input.Active, Role: input.Role}, nil
		},
	}
	handler := NewUserHandler(stub)

	body := strings.NewReader(`{"username":"carol","enabled":true,"active":false,"role":"STAFF"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/users/6", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("6")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"active":false`) {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := handler.Get(c)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_GetByUsername_Success(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			if username != "lee" {
				t.Fatalf("unexpected username: %s", username)
			}
			return &domain.User{UserID: 5, Username: "lee", Role: domain.RoleStudent}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users/username/lee", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("lee")

	if err := handler.GetByUsername(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"username":"lee"`) {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestUserHandler_ListByRole(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		getByRoleFn: func(ctx context.Context, role string) ([]*domain.User, error) {
			if role != "STAFF" {
				t.Fatalf("unexpected role: %s", role)
			}
			return []*domain.User{
				{UserID: 2, Username: "john", Role: domain.RoleStaff},
				{UserID: 4, Username: "maria", Role: domain.RoleStaff},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users/role/STAFF", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("role")
	c.SetParamValues("STAFF")

	if err := handler.ListByRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[1]["username"] != "maria" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Summaries_NoCredentialFields(t *testing.T) {
	e := newEcho()
	stub := &stubUserService{
		getAllSummariesFn: func(ctx context.Context) ([]*domain.UserSummary, error) {
			return []*domain.UserSummary{
				{UserID: 1, Username: "admin", Role: domain.RoleAdmin, Enabled: true, Active: true},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users/summaries", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListSummaries(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("credential leaked in response: %s", rec.Body.String())
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["username"] != "admin" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
