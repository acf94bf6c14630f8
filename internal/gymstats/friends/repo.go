package friends

import (
	"context"
	"fmt"

	"github.com/gorillabuild/gorillabuild/internal/gymstats/stats"
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

func collectPeers(rows pgx.Rows) ([]Peer, error) {
	peers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Peer, error) {
		var p Peer
		err := row.Scan(&p.FriendshipID, &p.UserID, &p.Username, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, err
	}
	if peers == nil {
		peers = make([]Peer, 0)
	}
	return peers, nil
}

// ListAccepted returns the other side of every accepted friendship of the user, in either direction.
func (r *Repo) ListAccepted(ctx context.Context, userID string) (_ []Peer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.friends.list_accepted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT f.id, u.id, u.username, f.created_at
			FROM friendship f
			JOIN app_user u ON u.id = CASE WHEN f.from_user_id = $1 THEN f.to_user_id ELSE f.from_user_id END
			WHERE f.status = 'accepted' AND (f.from_user_id = $1 OR f.to_user_id = $1)
			ORDER BY f.created_at, f.id
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("accepted friends [query]: %w", err)
	}
	peers, err := collectPeers(rows)
	if err != nil {
		return nil, fmt.Errorf("accepted friends [rows]: %w", err)
	}

	span.SetAttributes(attribute.Int("friends.count", len(peers)))
	return peers, nil
}

// PendingIncoming returns the senders of pending requests addressed to the user.
func (r *Repo) PendingIncoming(ctx context.Context, userID string) (_ []Peer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.friends.pending_incoming")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT f.id, u.id, u.username, f.created_at
			FROM friendship f
			JOIN app_user u ON u.id = f.from_user_id
			WHERE f.to_user_id = $1 AND f.status = 'pending'
			ORDER BY f.created_at DESC, f.id DESC
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("pending requests [query]: %w", err)
	}
	peers, err := collectPeers(rows)
	if err != nil {
		return nil, fmt.Errorf("pending requests [rows]: %w", err)
	}

	span.SetAttributes(attribute.Int("requests.count", len(peers)))
	return peers, nil
}

// Create sends a friend request from the user to whoever owns handle.
func (r *Repo) Create(ctx context.Context, fromUserID, handle string) (_ *Friendship, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.friends.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var toUserID string
	if err := r.db.QueryRow(ctx, `SELECT id FROM app_user WHERE username = $1`, handle).Scan(&toUserID); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user by handle [query]: %w", err)
	}
	if toUserID == fromUserID {
		return nil, ErrSelfFriendship
	}

	// the pair index is on the unordered pair, so a request in either direction conflicts
	var f Friendship
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO friendship (from_user_id, to_user_id)
			VALUES ($1, $2)
			RETURNING id, from_user_id, to_user_id, status, created_at
		`,
		fromUserID, toUserID,
	).Scan(&f.ID, &f.FromUserID, &f.ToUserID, &f.Status, &f.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrFriendshipExists
		}
		return nil, fmt.Errorf("insert friendship: %w", err)
	}

	span.SetAttributes(attribute.Int("friendship.id", f.ID))
	return &f, nil
}

// Accept turns a pending request addressed to the user into a friendship.
func (r *Repo) Accept(ctx context.Context, userID string, friendshipID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.friends.accept")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("friendship.id", friendshipID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE friendship SET status = 'accepted' WHERE id = $1 AND to_user_id = $2 AND status = 'pending'`,
		friendshipID, userID,
	)
	if err != nil {
		return fmt.Errorf("accept friendship [%d]: %w", friendshipID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFriendshipNotFound
	}
	return nil
}

// Accepted loads an accepted friendship the user belongs to.
func (r *Repo) Accepted(ctx context.Context, userID string, friendshipID int) (_ *Pair, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.friends.accepted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("friendship.id", friendshipID))

	p := Pair{FriendshipID: friendshipID}
	err = r.db.QueryRow(
		ctx,
		`
			SELECT me.id, me.username, friend.id, friend.username
			FROM friendship f
			JOIN app_user me ON me.id = $2
			JOIN app_user friend ON friend.id = CASE WHEN f.from_user_id = $2 THEN f.to_user_id ELSE f.from_user_id END
			WHERE f.id = $1 AND f.status = 'accepted' AND (f.from_user_id = $2 OR f.to_user_id = $2)
		`,
		friendshipID, userID,
	).Scan(&p.Me.UserID, &p.Me.Username, &p.Friend.UserID, &p.Friend.Username)
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrFriendshipNotFound
		}
		return nil, fmt.Errorf("accepted friendship [%d]: %w", friendshipID, err)
	}
	return &p, nil
}

// FinishedSetsOf returns every set the given users logged in finished workouts.
func (r *Repo) FinishedSetsOf(ctx context.Context, userIDs []string) (_ []stats.OwnedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.friends.finished_sets_of")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT we.exercise_id, e.name, w.user_id, s.weight_kg, s.reps
			FROM set_entry s
			JOIN workout_exercise we ON we.id = s.workout_exercise_id
			JOIN workout w ON w.id = we.workout_id
			JOIN exercise e ON e.id = we.exercise_id
			WHERE w.user_id = ANY($1) AND w.finished_at IS NOT NULL
		`,
		userIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("finished sets [query]: %w", err)
	}
	sets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (stats.OwnedSet, error) {
		var s stats.OwnedSet
		err := row.Scan(&s.ExerciseID, &s.ExerciseName, &s.UserID, &s.WeightKg, &s.Reps)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("finished sets [rows]: %w", err)
	}

	span.SetAttributes(attribute.Int("sets.count", len(sets)))
	return sets, nil
}
