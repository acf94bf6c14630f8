package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
	"github.com/gorillabuild/gorillabuild/pkg"

	"github.com/jackc/pgx/v5"
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

// Ensure creates the user row if it does not exist yet.
func (r *Repo) Ensure(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.ensure")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO app_user (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("ensure user [%s]: %w", userID, err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanOne(r.db.QueryRow(
		ctx,
		`SELECT id, username, units, created_at FROM app_user WHERE id = $1`,
		userID,
	))
}

func (r *Repo) scanOne(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.Units, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user [query row]: %w", err)
	}
	return &u, nil
}

// UpdateProfile applies the update in one transaction. The handle can be set once.
func (r *Repo) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update_profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var updated *User
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		current, err := r.scanOne(tx.QueryRow(
			ctx,
			`SELECT id, username, units, created_at FROM app_user WHERE id = $1 FOR UPDATE`,
			userID,
		))
		if err != nil {
			return err
		}

		if update.Username != nil {
			if current.Username != nil && *current.Username != *update.Username {
				return ErrHandleImmutable
			}
			current.Username = update.Username
		}
		if update.Units != nil {
			current.Units = *update.Units
		}

		_, err = tx.Exec(
			ctx,
			`UPDATE app_user SET username = $2, units = $3 WHERE id = $1`,
			userID, current.Username, current.Units,
		)
		if err != nil {
			if pkg.IsUniqueViolationError(err) {
				return ErrHandleTaken
			}
			return fmt.Errorf("update user: %w", err)
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the user and, by cascade, everything the user owns.
func (r *Repo) Delete(ctx context.Context, userID string) (deleted bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM app_user WHERE id = $1`, userID)
	if err != nil {
		return false, fmt.Errorf("delete user [%s]: %w", userID, err)
	}
	return tag.RowsAffected() > 0, nil
}
