package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pushnotify/metrics"
	"pushnotify/models"
	"pushnotify/services/presence"

	"go.uber.org/zap"
)

const (
	DeliveryRealtime      = "realtime"
	DeliverySavedForLater = "saved_for_later"
)

var ErrUnknownUser = errors.New("unknown user")

// Directory resolves recipients. User records are owned elsewhere; a nil user
// with a nil error means the recipient does not exist.
type Directory interface {
	GetById(ctx context.Context, id uint) (*models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
}

// Store is the durable side of dispatch.
type Store interface {
	Append(ctx context.Context, userID uint, title, body, category string) (*models.Notification, error)
}

// Result reports the persisted notification and how it was delivered.
type Result struct {
	Notification *models.Notification
	Delivery     string
}

// Service persists every notification and then attempts a best-effort
// realtime push. Durability never depends on delivery success: a failed or
// impossible push downgrades the result to saved_for_later, it never raises
// an error.
type Service struct {
	store    Store
	registry *presence.Registry
	dir      Directory
	log      *zap.Logger
}

func New(store Store, registry *presence.Registry, dir Directory, log *zap.Logger) *Service {
	return &Service{store: store, registry: registry, dir: dir, log: log}
}

type pushEvent struct {
	Type string               `json:"type"`
	Data *models.Notification `json:"data"`
}

// Dispatch persists the notification and pushes it to the user's live
// connection when one is registered. Safe for concurrent use.
func (s *Service) Dispatch(ctx context.Context, userID uint, title, body, category string) (Result, error) {
	u, err := s.dir.GetById(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	if u == nil {
		return Result{}, fmt.Errorf("%w: id %d", ErrUnknownUser, userID)
	}

	n, err := s.store.Append(ctx, userID, title, body, category)
	if err != nil {
		return Result{}, err
	}

	delivery := DeliverySavedForLater
	if conn, ok := s.registry.Lookup(userID); ok {
		if err := s.push(conn, n); err != nil {
			// Benign race: the handle closed between lookup and write. The
			// record is durable, so the user catches up on reconnect.
			s.log.Warn("realtime push failed",
				zap.Uint("user_id", userID),
				zap.Uint("notification_id", n.ID),
				zap.Error(err),
			)
		} else {
			delivery = DeliveryRealtime
		}
	}

	metrics.NotificationsDispatchedTotal.WithLabelValues(delivery).Inc()
	return Result{Notification: n, Delivery: delivery}, nil
}

// DispatchToRole runs the same sequence for every user holding role. A single
// recipient's failure is logged and skipped, never aborts the batch. Returns
// the number of recipients dispatched to.
func (s *Service) DispatchToRole(ctx context.Context, role, title, body, category string) (int, error) {
	users, err := s.dir.ListByRole(ctx, role)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, u := range users {
		if _, err := s.Dispatch(ctx, u.ID, title, body, category); err != nil {
			s.log.Warn("dispatch skipped in role broadcast",
				zap.Uint("user_id", u.ID),
				zap.String("role", role),
				zap.Error(err),
			)
			continue
		}
		sent++
	}
	return sent, nil
}

func (s *Service) push(conn presence.Conn, n *models.Notification) error {
	payload, err := json.Marshal(pushEvent{Type: "notification", Data: n})
	if err != nil {
		return err
	}
	return conn.Send(payload)
}
