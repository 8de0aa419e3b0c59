package infra

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"homiehub/internal/services"
)

const (
	changeChannel = "record_changes"

	minReconnectInterval = time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// ChangeListener feeds row-change notifications from Postgres
// (LISTEN/NOTIFY, raised by the triggers in scripts/schema.sql) into
// the embedding service. Payloads are JSON-encoded RecordChange
// values.
type ChangeListener struct {
	listener  *pq.Listener
	embedding services.EmbeddingServiceInterface
	logger    *zap.Logger
}

func NewChangeListener(embedding services.EmbeddingServiceInterface, logger *zap.Logger) *ChangeListener {
	dsn := os.Getenv("POSTGRES_URL")

	listener := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				logger.Error("change listener connection event", zap.Int("event", int(event)), zap.Error(err))
			}
		})

	return &ChangeListener{
		listener:  listener,
		embedding: embedding,
		logger:    logger,
	}
}

// Run blocks until ctx is cancelled. Each notification is handled in
// its own goroutine; triggers for different records are independent
// and the per-record idempotence guard lives in the embedding service.
func (l *ChangeListener) Run(ctx context.Context) error {
	if err := l.listener.Listen(changeChannel); err != nil {
		return err
	}
	l.logger.Info("listening for record changes", zap.String("channel", changeChannel))

	for {
		select {
		case <-ctx.Done():
			return l.listener.Close()

		case notification := <-l.listener.Notify:
			if notification == nil {
				// Connection was re-established; notifications may have
				// been missed, but the idempotence guard makes
				// reprocessing safe, so nothing to do here.
				continue
			}
			l.dispatch(ctx, notification.Extra)

		case <-time.After(pingInterval):
			if err := l.listener.Ping(); err != nil {
				l.logger.Error("change listener ping failed", zap.Error(err))
			}
		}
	}
}

func (l *ChangeListener) dispatch(ctx context.Context, payload string) {
	var ev services.RecordChange
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		l.logger.Error("malformed change notification", zap.String("payload", payload), zap.Error(err))
		return
	}

	go func() {
		if err := l.embedding.HandleChange(ctx, ev); err != nil {
			l.logger.Error("failed to handle record change",
				zap.String("collection", ev.Collection),
				zap.String("document_id", ev.DocumentID),
				zap.Error(err))
		}
	}()
}
