package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/crypto"
	"github.com/MKhiriev/go-secret-notes/internal/mock/storemock"
	"github.com/MKhiriev/go-secret-notes/models"
)

func TestPinKDF(t *testing.T) {
	tests := []struct {
		name       string
		pinned     string
		notes      []models.Note
		cfg        config.Crypto
		wantErr    error
		wantPinned string
	}{
		{
			name:       "empty store pins configured settings",
			cfg:        config.Crypto{KDFAlgorithm: crypto.AlgorithmPBKDF2SHA256, KDFIterations: 500},
			wantPinned: "PBKDF2WithHmacSHA256:500",
		},
		{
			name:       "same settings as pinned",
			pinned:     "PBKDF2WithHmacSHA1:10000",
			cfg:        config.Crypto{},
			wantPinned: "PBKDF2WithHmacSHA1:10000",
		},
		{
			name:       "different iterations than pinned",
			pinned:     "PBKDF2WithHmacSHA1:10000",
			cfg:        config.Crypto{KDFIterations: 20000},
			wantErr:    ErrKDFMismatch,
			wantPinned: "PBKDF2WithHmacSHA1:10000",
		},
		{
			name:       "different algorithm than pinned",
			pinned:     "PBKDF2WithHmacSHA1:10000",
			cfg:        config.Crypto{KDFAlgorithm: crypto.AlgorithmPBKDF2SHA512},
			wantErr:    ErrKDFMismatch,
			wantPinned: "PBKDF2WithHmacSHA1:10000",
		},
		{
			name:       "unpinned notes with default settings",
			notes:      []models.Note{{ID: "a"}},
			cfg:        config.Crypto{KDFAlgorithm: config.DefaultKDFAlgorithm, KDFIterations: config.DefaultKDFIterations},
			wantPinned: "PBKDF2WithHmacSHA1:10000",
		},
		{
			name:    "unpinned notes with other settings",
			notes:   []models.Note{{ID: "a"}},
			cfg:     config.Crypto{KDFIterations: 1},
			wantErr: ErrKDFMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			ctrl := gomock.NewController(t)
			notes := storemock.NewMockNoteRepository(ctrl)
			notes.EXPECT().GetAllNotes(ctx).Return(tt.notes, nil).AnyTimes()

			prefs := memoryPrefs(t)
			if tt.pinned != "" {
				require.NoError(t, prefs.Put(ctx, map[string]string{PrefKDF: tt.pinned}))
			}

			err := pinKDF(ctx, prefs, notes, tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			got, ok, err := prefs.Get(ctx, PrefKDF)
			require.NoError(t, err)
			if tt.wantPinned == "" {
				assert.False(t, ok, "a refused start must not pin anything")
				return
			}
			assert.Equal(t, tt.wantPinned, got)
		})
	}
}

func TestPinKDF_StoreErrors(t *testing.T) {
	ctx := context.Background()
	failure := errors.New("io")

	t.Run("preferences", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prefs := storemock.NewMockPreferenceStore(ctrl)
		prefs.EXPECT().Get(ctx, PrefKDF).Return("", false, failure)

		err := pinKDF(ctx, prefs, storemock.NewMockNoteRepository(ctrl), config.Crypto{})
		assert.ErrorIs(t, err, failure)
	})

	t.Run("notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prefs := storemock.NewMockPreferenceStore(ctrl)
		notes := storemock.NewMockNoteRepository(ctrl)
		prefs.EXPECT().Get(ctx, PrefKDF).Return("", false, nil)
		notes.EXPECT().GetAllNotes(ctx).Return(nil, failure)

		err := pinKDF(ctx, prefs, notes, config.Crypto{})
		assert.ErrorIs(t, err, failure)
	})
}
