package departments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-management-api/internal/apperrors"
	"github.com/oksasatya/employee-management-api/internal/domain/service"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(&strings.Builder{})
	return l
}

func TestValidateDepartmentExists(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, testLogger())
	if err := c.ValidateDepartmentExists(context.Background(), "d-42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/department/exists/d-42" {
		t.Errorf("called %q", gotPath)
	}
}

func TestValidateDepartmentNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, testLogger())
	err := c.ValidateDepartmentExists(context.Background(), "missing")
	if !errors.Is(err, service.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestValidateDepartmentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, testLogger())
	err := c.ValidateDepartmentExists(context.Background(), "d-1")

	var derr *apperrors.DependencyError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DependencyError, got %v", err)
	}
	if errors.Is(err, service.ErrDepartmentNotFound) {
		t.Fatal("server error must never be converted into not-found")
	}
}

func TestValidateDepartmentUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down immediately

	c := NewClient(srv.URL, 200*time.Millisecond, testLogger())
	err := c.ValidateDepartmentExists(context.Background(), "d-1")

	var derr *apperrors.DependencyError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DependencyError, got %v", err)
	}
}
