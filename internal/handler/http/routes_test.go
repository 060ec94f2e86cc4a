package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-secret-notes/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/session/invalidate"},
		{http.MethodGet, "/api/notes"},
		{http.MethodPost, "/api/notes"},
		{http.MethodPost, "/api/notes/n-1/open"},
		{http.MethodDelete, "/api/notes/n-1"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			d := newTestDeps(t)
			rr := d.do(rt.method, rt.path, nil, false)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInit_WrongMethod_Returns404(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/notes"},
		{http.MethodGet, "/api/session/login"},
		{http.MethodDelete, "/api/password"},
		{http.MethodGet, "/api/notes/n-1/open"},
		{http.MethodPatch, "/api/notes/n-1"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			d := newTestDeps(t)
			rr := d.do(rt.method, rt.path, nil, false)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_UnknownRoute_Returns404(t *testing.T) {
	d := newTestDeps(t)
	rr := d.do(http.MethodGet, "/api/unknown", nil, false)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	d := newTestDeps(t)
	d.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{}).Times(1)

	rr := d.do(http.MethodGet, "/api/version/", nil, false)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	d := newTestDeps(t)
	d.appInfo.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(any) models.VersionResponse {
		panic("boom")
	})

	rr := d.do(http.MethodGet, "/api/version/", nil, false)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
