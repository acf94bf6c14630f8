package bodyweight

import (
	"context"
	"fmt"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns the user's entries, newest day first (same day: newest entry first).
func (r *Repo) List(ctx context.Context, userID string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, date, weight_kg, created_at
			FROM body_weight_entry
			WHERE user_id = $1
			ORDER BY date DESC, id DESC
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("body weight entries [query]: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var (
			e   Entry
			day time.Time
		)
		if err := rows.Scan(&e.ID, &day, &e.WeightKg, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("body weight entries [rows scan]: %w", err)
		}
		e.Date = day.Format(time.DateOnly)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("body weight entries [rows error]: %w", err)
	}

	span.SetAttributes(attribute.Int("entries.count", len(entries)))
	return entries, nil
}

func (r *Repo) Add(ctx context.Context, userID string, day time.Time, weightKg float64) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e := Entry{Date: day.Format(time.DateOnly), WeightKg: weightKg}
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO body_weight_entry (user_id, date, weight_kg)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`,
		userID, day, weightKg,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add body weight entry: %w", err)
	}
	return &e, nil
}
