package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/store"
)

// noDelay is the backoff counter before the first failed attempt.
const noDelay = -1

// loginGate implements [LoginGate].
//
// Both the last backoff in seconds (login_delay) and the end of the current
// window (delay_time, epoch milliseconds) live in the preference store, so
// the escalation carries over restarts and separate CLI invocations.
type loginGate struct {
	passwords MasterPasswordService
	prefs     store.PreferenceStore
	clock     Clock

	// attempt is held for the whole of one Login. A second concurrent Login
	// fails instead of queueing.
	attempt sync.Mutex

	logger *logger.Logger
}

// LoginGateOpt configures a [LoginGate].
type LoginGateOpt func(*loginGate)

// WithClock replaces the wall clock.
func WithClock(clock Clock) LoginGateOpt {
	return func(g *loginGate) {
		g.clock = clock
	}
}

func NewLoginGate(passwords MasterPasswordService, prefs store.PreferenceStore, logger *logger.Logger, opts ...LoginGateOpt) LoginGate {
	g := &loginGate{
		passwords: passwords,
		prefs:     prefs,
		clock:     SystemClock(),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *loginGate) Login(ctx context.Context, candidate string) (*Session, error) {
	log := logger.FromContext(ctx)

	if !g.attempt.TryLock() {
		return nil, ErrAttemptInProgress
	}
	defer g.attempt.Unlock()

	remaining, err := g.Remaining(ctx)
	if err != nil {
		return nil, err
	}
	if remaining > 0 {
		return nil, &RateLimitedError{Remaining: remaining}
	}

	ok, err := g.passwords.Check(ctx, candidate)
	if err != nil {
		log.Err(err).Str("func", "*loginGate.Login").Msg("error checking master password")
		return nil, err
	}

	if !ok {
		seconds, err := g.lastDelay(ctx)
		if err != nil {
			return nil, err
		}
		seconds = (seconds + 1) * 2
		delay := time.Duration(seconds) * time.Second
		until := g.clock.Now().Add(delay)

		err = g.prefs.Put(ctx, map[string]string{
			PrefLoginDelay: strconv.FormatInt(seconds, 10),
			PrefDelayTime:  strconv.FormatInt(until.UnixMilli(), 10),
		})
		if err != nil {
			log.Err(err).Str("func", "*loginGate.Login").Msg("error persisting login backoff")
			return nil, err
		}

		log.Warn().Str("func", "*loginGate.Login").Dur("delay", delay).Msg("wrong master password")
		return nil, &WrongPasswordError{Delay: delay}
	}

	if err = g.prefs.Remove(ctx, PrefLoginDelay); err != nil {
		log.Warn().Err(err).Str("func", "*loginGate.Login").Msg("error resetting login backoff")
	}
	log.Info().Str("func", "*loginGate.Login").Msg("login succeeded")
	return NewSession(g.clock), nil
}

// lastDelay returns the persisted backoff counter, noDelay when it is
// missing or malformed.
func (g *loginGate) lastDelay(ctx context.Context) (int64, error) {
	raw, ok, err := g.prefs.Get(ctx, PrefLoginDelay)
	if err != nil {
		return 0, err
	}
	if !ok {
		return noDelay, nil
	}

	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || seconds < noDelay {
		logger.FromContext(ctx).Warn().Str("func", "*loginGate.lastDelay").Str("value", raw).Msg("ignoring malformed login_delay")
		return noDelay, nil
	}
	return seconds, nil
}

func (g *loginGate) Remaining(ctx context.Context) (time.Duration, error) {
	raw, ok, err := g.prefs.Get(ctx, PrefDelayTime)
	if err != nil {
		return 0, err
	}
	if !ok || raw == "" {
		return 0, nil
	}

	untilMillis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromContext(ctx).Warn().Str("func", "*loginGate.Remaining").Str("value", raw).Msg("ignoring malformed delay_time")
		return 0, nil
	}

	remaining := time.UnixMilli(untilMillis).Sub(g.clock.Now())
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

func (g *loginGate) Wait(ctx context.Context) error {
	for {
		remaining, err := g.Remaining(ctx)
		if err != nil {
			return err
		}
		if remaining <= 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.clock.After(remaining):
		}
	}
}
