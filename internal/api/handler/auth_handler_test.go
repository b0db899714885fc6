package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-system/internal/api/middleware"
	"github.com/staffdesk/employee-system/internal/core/domain"
	"github.com/staffdesk/employee-system/internal/core/ports"
)

type stubAuthService struct {
	loginAdminFn    func(ctx context.Context, email, password string) (string, *domain.Admin, error)
	registerAdminFn func(ctx context.Context, email, password string) (*domain.Admin, error)
	profileFn       func(ctx context.Context, claims domain.TokenClaims) (*ports.Profile, error)
	adminRecordsFn  func(ctx context.Context) ([]*domain.Admin, error)
	adminCountFn    func(ctx context.Context) (int64, error)
}

func (s *stubAuthService) LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	return s.loginAdminFn(ctx, email, password)
}

func (s *stubAuthService) RegisterAdmin(ctx context.Context, email, password string) (*domain.Admin, error) {
	return s.registerAdminFn(ctx, email, password)
}

func (s *stubAuthService) Profile(ctx context.Context, claims domain.TokenClaims) (*ports.Profile, error) {
	return s.profileFn(ctx, claims)
}

func (s *stubAuthService) AdminRecords(ctx context.Context) ([]*domain.Admin, error) {
	return s.adminRecordsFn(ctx)
}

func (s *stubAuthService) AdminCount(ctx context.Context) (int64, error) {
	return s.adminCountFn(ctx)
}

type stubEmployeeService struct {
	createFn      func(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error)
	signUpFn      func(ctx context.Context, input ports.CreateEmployeeInput) (string, *domain.Employee, error)
	listFn        func(ctx context.Context, filter ports.ListEmployeesFilter) (*ports.EmployeePage, error)
	getByIDFn     func(ctx context.Context, id string) (*domain.Employee, error)
	updateFn      func(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error)
	deleteFn      func(ctx context.Context, id string) error
	countFn       func(ctx context.Context) (int64, error)
	salaryTotalFn func(ctx context.Context) (float64, error)
}

func (s *stubEmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	return s.createFn(ctx, input)
}

func (s *stubEmployeeService) SignUp(ctx context.Context, input ports.CreateEmployeeInput) (string, *domain.Employee, error) {
	return s.signUpFn(ctx, input)
}

func (s *stubEmployeeService) List(ctx context.Context, filter ports.ListEmployeesFilter) (*ports.EmployeePage, error) {
	return s.listFn(ctx, filter)
}

func (s *stubEmployeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubEmployeeService) Update(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubEmployeeService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubEmployeeService) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func (s *stubEmployeeService) SalaryTotal(ctx context.Context) (float64, error) {
	return s.salaryTotalFn(ctx)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.TokenCookie {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_AdminLogin_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginAdminFn: func(ctx context.Context, email, password string) (string, *domain.Admin, error) {
			if email != "admin@x.com" || password != "secret" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "signed-token", &domain.Admin{ID: "admin_1", Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub, &stubEmployeeService{})

	body := strings.NewReader(`{"email":"admin@x.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/adminlogin", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AdminLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["loginStatus"] != true {
		t.Fatalf("expected loginStatus true, got %+v", resp)
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("session cookie not set")
	}
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
}

func TestAuthHandler_AdminLogin_WrongPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginAdminFn: func(ctx context.Context, email, password string) (string, *domain.Admin, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, &stubEmployeeService{})

	body := strings.NewReader(`{"email":"admin@x.com","password":"bad"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/adminlogin", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AdminLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// Login failures answer 200 with the failure embedded in the envelope.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["loginStatus"] == true {
		t.Fatalf("expected loginStatus false, got %+v", resp)
	}
	if resp["Error"] != "wrong email or password" {
		t.Fatalf("unexpected error message %q", resp["Error"])
	}
	if sessionCookie(rec) != nil {
		t.Fatalf("cookie set on failed login")
	}
}

func TestAuthHandler_AdminSignup_Duplicate(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerAdminFn: func(ctx context.Context, email, password string) (*domain.Admin, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	handler := NewAuthHandler(stub, &stubEmployeeService{})

	body := strings.NewReader(`{"email":"admin@x.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/adminsignup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AdminSignup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["Status"] == true {
		t.Fatalf("expected Status false, got %+v", resp)
	}
	if resp["Error"] == "" {
		t.Fatalf("expected error message")
	}
}

func TestAuthHandler_AdminSignup_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{
		registerAdminFn: func(ctx context.Context, email, password string) (*domain.Admin, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}, &stubEmployeeService{})

	body := strings.NewReader(`{"email":"not-an-email","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/adminsignup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.AdminSignup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["Status"] == true {
		t.Fatalf("expected Status false, got %+v", resp)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{}, &stubEmployeeService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("expected expired cookie in response")
	}
	if cookie.MaxAge != -1 || cookie.Value != "" {
		t.Fatalf("cookie not cleared: MaxAge=%d Value=%q", cookie.MaxAge, cookie.Value)
	}
}

func TestAuthHandler_Counts(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(
		&stubAuthService{
			adminCountFn: func(ctx context.Context) (int64, error) { return 2, nil },
		},
		&stubEmployeeService{
			countFn:       func(ctx context.Context) (int64, error) { return 7, nil },
			salaryTotalFn: func(ctx context.Context) (float64, error) { return 120500, nil },
		},
	)

	cases := []struct {
		name    string
		call    func(echo.Context) error
		key     string
		wantNum float64
	}{
		{"admin", handler.AdminCount, "admin", 2},
		{"employee", handler.EmployeeCount, "employee", 7},
		{"salary", handler.SalaryTotal, "salaryOFEmp", 120500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := tc.call(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			var resp map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["Status"] != true {
				t.Fatalf("expected Status true, got %+v", resp)
			}

			result, ok := resp["Result"].([]any)
			if !ok || len(result) != 1 {
				t.Fatalf("expected one-element Result, got %+v", resp["Result"])
			}
			row, ok := result[0].(map[string]any)
			if !ok {
				t.Fatalf("unexpected row shape: %+v", result[0])
			}
			if row[tc.key] != tc.wantNum {
				t.Fatalf("expected %s=%v, got %+v", tc.key, tc.wantNum, row)
			}
		})
	}
}
