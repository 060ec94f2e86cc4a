package handler

import (
	"testing"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// http.NewHandler only stores the services pointer, so nil is safe for
// construction-time tests.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	h, err := NewHandlers(nil, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
