package tests

import (
	"net/http"
	"strings"
	"testing"
)

func Test_home(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); !strings.Contains(body, "Karniella Revisions") {
		t.Errorf("unexpected home body: %v", body)
	}
}

func Test_trailingSlashIsRemoved(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/api/subjects/")
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
}
