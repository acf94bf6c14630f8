package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/gorillabuild/gorillabuild/internal/gymstats/stats"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"

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

func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name FROM exercise ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	list := make([]Exercise, 0)
	for rows.Next() {
		var ex Exercise
		if err := rows.Scan(&ex.ID, &ex.Name); err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		list = append(list, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}

	return list, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	var ex Exercise
	err = r.db.QueryRow(ctx, `SELECT id, name FROM exercise WHERE id = $1`, id).Scan(&ex.ID, &ex.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("exercise [query row]: %w", err)
	}
	return &ex, nil
}

// FinishedSets returns the user's sets of the exercise from finished workouts only,
// in workout date order and, within a workout, in the order they were logged.
func (r *Repo) FinishedSets(ctx context.Context, userID string, exerciseID int) (_ []stats.SetSample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.finished_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT w.id, COALESCE(w.finished_at, w.started_at), s.weight_kg, s.reps
			FROM set_entry s
			JOIN workout_exercise we ON we.id = s.workout_exercise_id
			JOIN workout w ON w.id = we.workout_id
			WHERE w.user_id = $1 AND we.exercise_id = $2 AND w.finished_at IS NOT NULL
			ORDER BY COALESCE(w.finished_at, w.started_at), w.id, we.position, s.position, s.id
		`,
		userID, exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("finished sets [query]: %w", err)
	}
	defer rows.Close()

	sets := make([]stats.SetSample, 0)
	for rows.Next() {
		var s stats.SetSample
		if err := rows.Scan(&s.WorkoutID, &s.Date, &s.WeightKg, &s.Reps); err != nil {
			return nil, fmt.Errorf("finished sets [rows scan]: %w", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("finished sets [rows error]: %w", err)
	}

	span.SetAttributes(attribute.Int("sets.count", len(sets)))
	return sets, nil
}
