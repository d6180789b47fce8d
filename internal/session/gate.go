// Package session implements the single-use, time-boxed admin session flag
// that gates the add/edit/delete overlay dispatch.
package session

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/Folio-25-26J-118/portfolio-backend/internal/kv"
)

// Key holds the serialized session flag. The JSON field names are part of
// the stored contract.
const Key = "admin:session"

type Flag struct {
	LoggedIn  bool  `json:"loggedIn"`
	Timestamp int64 `json:"timestamp"` // unix milliseconds at open time
}

// Gate validates and consumes the admin session flag. The flag is written
// with a TTL matching the window, but age is still checked explicitly: a
// flag that outlived its window by any means is treated as absent and
// cleared on sight.
type Gate struct {
	store  kv.Store
	window time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewGate(store kv.Store, window time.Duration, logger *zap.Logger) *Gate {
	return &Gate{store: store, window: window, logger: logger, now: time.Now}
}

// Open starts an authenticated action window.
func (g *Gate) Open(ctx context.Context) error {
	flag := Flag{LoggedIn: true, Timestamp: g.now().UnixMilli()}
	raw, err := json.Marshal(flag)
	if err != nil {
		return err
	}
	return g.store.SetTTL(ctx, Key, string(raw), g.window)
}

// Check reports whether an unexpired session is open. Stale, unreadable or
// logged-out flags are deleted as a side effect.
func (g *Gate) Check(ctx context.Context) (bool, error) {
	raw, found, err := g.store.Get(ctx, Key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	var flag Flag
	if err := json.Unmarshal([]byte(raw), &flag); err != nil {
		g.logger.Warn("clearing unreadable session flag", zap.Error(err))
		return false, g.store.Delete(ctx, Key)
	}

	age := g.now().UnixMilli() - flag.Timestamp
	if !flag.LoggedIn || age > g.window.Milliseconds() {
		return false, g.store.Delete(ctx, Key)
	}
	return true, nil
}

// Consume checks the gate and, if open, closes it. Each opened session
// authorizes exactly one gated dispatch.
func (g *Gate) Consume(ctx context.Context) (bool, error) {
	ok, err := g.Check(ctx)
	if err != nil || !ok {
		return false, err
	}
	return true, g.store.Delete(ctx, Key)
}

// Close discards the session flag regardless of state.
func (g *Gate) Close(ctx context.Context) error {
	return g.store.Delete(ctx, Key)
}
