package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/mock"
	"github.com/MKhiriev/go-secret-notes/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "test-token"

type testDeps struct {
	passwords *mock.MockMasterPasswordService
	gate      *mock.MockLoginGate
	notes     *mock.MockNoteService
	auth      *mock.MockAuthService
	appInfo   *mock.MockAppInfoService
	sessions  *service.SessionManager

	handler *Handler
	router  http.Handler
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &testDeps{
		passwords: mock.NewMockMasterPasswordService(ctrl),
		gate:      mock.NewMockLoginGate(ctrl),
		notes:     mock.NewMockNoteService(ctrl),
		auth:      mock.NewMockAuthService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
		sessions:  service.NewSessionManager(service.SystemClock()),
	}
	d.handler = NewHandler(&service.Services{
		MasterPassword: d.passwords,
		LoginGate:      d.gate,
		NoteService:    d.notes,
		AuthService:    d.auth,
		AppInfo:        d.appInfo,
		Sessions:       d.sessions,
	}, logger.Nop())
	d.router = d.handler.Init()

	return d
}

// authenticated registers a live session and lets testToken resolve to it.
func (d *testDeps) authenticated() *service.Session {
	session := service.NewSession(service.SystemClock())
	d.sessions.Register(session)
	d.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(session, nil).AnyTimes()
	return session
}

func (d *testDeps) do(method, path string, body any, authorized bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	d.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
