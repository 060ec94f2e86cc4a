package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/crypto"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/store"
)

// pinKDF records the key derivation settings in the preference store the
// first time they are used and refuses different ones afterwards.
//
// A store that has notes but no record was written with the default
// settings.
func pinKDF(ctx context.Context, prefs store.PreferenceStore, notes store.NoteRepository, cfg config.Crypto) error {
	log := logger.FromContext(ctx)
	current := crypto.DescribeKDF(cfg.KDFAlgorithm, cfg.KDFIterations)

	pinned, ok, err := prefs.Get(ctx, PrefKDF)
	if err != nil {
		log.Err(err).Str("func", "pinKDF").Msg("error reading key derivation settings")
		return err
	}

	if !ok {
		existing, err := notes.GetAllNotes(ctx)
		if err != nil {
			log.Err(err).Str("func", "pinKDF").Msg("error listing notes")
			return err
		}
		if len(existing) > 0 {
			pinned = crypto.DescribeKDF("", 0)
		} else {
			pinned = current
		}
	}

	if pinned != current {
		return fmt.Errorf("%w: notes use %s, configured %s", ErrKDFMismatch, pinned, current)
	}

	if !ok {
		if err = prefs.Put(ctx, map[string]string{PrefKDF: current}); err != nil {
			log.Err(err).Str("func", "pinKDF").Msg("error saving key derivation settings")
			return err
		}
	}
	return nil
}
