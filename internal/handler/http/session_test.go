package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-notes/internal/service"
	"github.com/MKhiriev/go-secret-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogin_Success(t *testing.T) {
	d := newTestDeps(t)
	d.auth.EXPECT().Login(gomock.Any(), "Secret1").
		Return(models.Token{SignedString: "signed.jwt.value", SessionID: "s-1"}, nil)

	rr := d.do(http.MethodPost, "/api/session/login", models.PasswordRequest{Password: "Secret1"}, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed.jwt.value", rr.Header().Get("Authorization"))
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatus     int
		wantRetryAfter string
		wantBodyRetry  int64
	}{
		{
			name:           "wrong password carries the new delay",
			err:            &service.WrongPasswordError{Delay: 6 * time.Second},
			wantStatus:     http.StatusUnauthorized,
			wantRetryAfter: "6",
			wantBodyRetry:  6,
		},
		{
			name:       "first wrong password has no delay",
			err:        &service.WrongPasswordError{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:           "rate limited rounds remaining up",
			err:            &service.RateLimitedError{Remaining: 1500 * time.Millisecond},
			wantStatus:     http.StatusTooManyRequests,
			wantRetryAfter: "2",
			wantBodyRetry:  2,
		},
		{
			name:       "attempt in progress",
			err:        service.ErrAttemptInProgress,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "password not set",
			err:        service.ErrPasswordNotSet,
			wantStatus: http.StatusPreconditionFailed,
		},
		{
			name:       "algorithm mismatch",
			err:        service.ErrAlgorithmMismatch,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.auth.EXPECT().Login(gomock.Any(), "Wrong11").Return(models.Token{}, tt.err)

			rr := d.do(http.MethodPost, "/api/session/login", models.PasswordRequest{Password: "Wrong11"}, false)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantRetryAfter, rr.Header().Get("Retry-After"))
			assert.Empty(t, rr.Header().Get("Authorization"))
			assert.Equal(t, tt.wantBodyRetry, decodeBody[models.ErrorResponse](t, rr).RetryAfter)
		})
	}
}

func TestLockout(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		want      int64
	}{
		{"no lockout", 0, 0},
		{"partial second rounds up", 2100 * time.Millisecond, 3},
		{"whole seconds", 14 * time.Second, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.gate.EXPECT().Remaining(gomock.Any()).Return(tt.remaining, nil)

			rr := d.do(http.MethodGet, "/api/session/lockout", nil, false)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.want, decodeBody[models.LockoutResponse](t, rr).RetryAfter)
		})
	}
}

func TestInvalidate(t *testing.T) {
	d := newTestDeps(t)
	session := d.authenticated()
	d.auth.EXPECT().Logout(gomock.Any(), session.ID()).Return(nil)

	rr := d.do(http.MethodPost, "/api/session/invalidate", nil, true)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestInvalidate_Unauthorized(t *testing.T) {
	d := newTestDeps(t)

	rr := d.do(http.MethodPost, "/api/session/invalidate", nil, false)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
