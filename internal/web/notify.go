package web

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Folio-25-26J-118/portfolio-backend/internal/kv"
)

const (
	noticeKey = "notice:flash"
	// noticeTTL is the auto-dismiss window: a notice nobody renders in
	// time simply disappears.
	noticeTTL = time.Minute
)

// FlashNotifier stores one success message under a short-lived key. The
// page handler pops it on the next render.
type FlashNotifier struct {
	store  kv.Store
	logger *zap.Logger
}

func NewFlashNotifier(store kv.Store, logger *zap.Logger) *FlashNotifier {
	return &FlashNotifier{store: store, logger: logger}
}

func (n *FlashNotifier) Notify(ctx context.Context, message string) {
	if err := n.store.SetTTL(ctx, noticeKey, message, noticeTTL); err != nil {
		n.logger.Warn("failed to store notice", zap.Error(err))
	}
}

// popNotice returns the pending notice, if any, consuming it.
func popNotice(ctx context.Context, store kv.Store) string {
	notice, _, err := store.GetDel(ctx, noticeKey)
	if err != nil {
		return ""
	}
	return notice
}
