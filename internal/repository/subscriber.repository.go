package repository

import (
	"context"
	"database/sql"
	"fmt"
	"stockpulse/internal/domain"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// SubscriberRepository manages digest subscribers. Records are never
// deleted; unsubscribing only flips the active flag.
type SubscriberRepository interface {
	ListActive(ctx context.Context) ([]domain.Subscriber, error)
	Upsert(ctx context.Context, subscriber domain.Subscriber) error
	SetActive(ctx context.Context, email string, active bool) error
}

type subscriberRepositoryHandler struct {
	Db  *sql.DB
	Now func() time.Time
}

func NewSubscriberRepository(db *sql.DB) SubscriberRepository {
	return subscriberRepositoryHandler{
		Db:  db,
		Now: time.Now,
	}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var subscriberColumns = []string{
	"email",
	"symbols",
	"active",
	"frequency",
	"delivery_time",
	"subscribed_at",
	"unsubscribed_at",
}

func listActiveQuery() sq.SelectBuilder {
	return psql.Select(subscriberColumns...).
		From("subscriber").
		Where(sq.Eq{"active": true}).
		OrderBy("subscribed_at", "email")
}

func upsertSubscriberQuery(s domain.Subscriber) sq.InsertBuilder {
	return psql.Insert("subscriber").
		Columns(subscriberColumns...).
		Values(
			s.Email,
			pq.Array(s.Symbols),
			s.Active,
			s.Preferences.Frequency,
			s.Preferences.DeliveryTime,
			s.SubscribedAt,
			s.UnsubscribedAt,
		).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			symbols = EXCLUDED.symbols,
			active = EXCLUDED.active,
			frequency = EXCLUDED.frequency,
			delivery_time = EXCLUDED.delivery_time,
			subscribed_at = EXCLUDED.subscribed_at,
			unsubscribed_at = EXCLUDED.unsubscribed_at`)
}

func setActiveQuery(email string, active bool, now time.Time) sq.UpdateBuilder {
	q := psql.Update("subscriber").
		Set("active", active).
		Where(sq.Eq{"email": email})
	if active {
		return q.Set("unsubscribed_at", nil)
	}
	return q.Set("unsubscribed_at", now)
}

func (h subscriberRepositoryHandler) ListActive(ctx context.Context) ([]domain.Subscriber, error) {
	query, args, err := listActiveQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list subscribers query: %w", err)
	}

	rows, err := h.Db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active subscribers: %w", err)
	}
	defer rows.Close()

	out := []domain.Subscriber{}
	for rows.Next() {
		s := domain.Subscriber{}
		var unsubscribedAt sql.NullTime
		if err := rows.Scan(
			&s.Email,
			pq.Array(&s.Symbols),
			&s.Active,
			&s.Preferences.Frequency,
			&s.Preferences.DeliveryTime,
			&s.SubscribedAt,
			&unsubscribedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		if unsubscribedAt.Valid {
			s.UnsubscribedAt = &unsubscribedAt.Time
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscribers: %w", err)
	}

	return out, nil
}

func (h subscriberRepositoryHandler) Upsert(ctx context.Context, subscriber domain.Subscriber) error {
	if subscriber.SubscribedAt.IsZero() {
		subscriber.SubscribedAt = h.Now().UTC()
	}

	query, args, err := upsertSubscriberQuery(subscriber).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert subscriber query: %w", err)
	}

	if _, err := h.Db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert subscriber %s: %w", subscriber.Email, err)
	}
	return nil
}

// SetActive on an unknown email is a no-op.
func (h subscriberRepositoryHandler) SetActive(ctx context.Context, email string, active bool) error {
	query, args, err := setActiveQuery(email, active, h.Now().UTC()).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set active query: %w", err)
	}

	if _, err := h.Db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set active=%t for %s: %w", active, email, err)
	}
	return nil
}
