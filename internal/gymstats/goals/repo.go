package goals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/gymstats/stats"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
	"github.com/gorillabuild/gorillabuild/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const goalColumns = `g.id, g.exercise_id, e.name, g.target_one_rm, g.target_date, g.is_active, g.created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanGoal(row pgx.Row) (*Goal, error) {
	var (
		g   Goal
		day time.Time
	)
	if err := row.Scan(&g.ID, &g.ExerciseID, &g.ExerciseName, &g.TargetOneRm, &day, &g.IsActive, &g.CreatedAt); err != nil {
		return nil, err
	}
	g.TargetDate = day.Format(time.DateOnly)
	return &g, nil
}

func (r *Repo) ListActive(ctx context.Context, userID string) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list_active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+goalColumns+`
			FROM goal g
			JOIN exercise e ON e.id = g.exercise_id
			WHERE g.user_id = $1 AND g.is_active
			ORDER BY g.created_at DESC, g.id DESC
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("active goals [query]: %w", err)
	}
	defer rows.Close()

	goals := make([]Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("active goals [rows scan]: %w", err)
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("active goals [rows error]: %w", err)
	}

	span.SetAttributes(attribute.Int("goals.count", len(goals)))
	return goals, nil
}

// ActiveForExercise returns nil, nil when the user has no active goal for the exercise.
func (r *Repo) ActiveForExercise(ctx context.Context, userID string, exerciseID int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.active_for_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	g, err := scanGoal(r.db.QueryRow(
		ctx,
		`
			SELECT `+goalColumns+`
			FROM goal g
			JOIN exercise e ON e.id = g.exercise_id
			WHERE g.user_id = $1 AND g.exercise_id = $2 AND g.is_active
		`,
		userID, exerciseID,
	))
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("active goal for exercise [%d]: %w", exerciseID, err)
	}
	return g, nil
}

// BestOneRms returns, per exercise, the best 1RM over the user's finished workouts.
// Exercises without any finished set are absent from the map.
func (r *Repo) BestOneRms(ctx context.Context, userID string, exerciseIDs []int) (_ map[int]float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.best_one_rms")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	best := make(map[int]float64)
	if len(exerciseIDs) == 0 {
		return best, nil
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT we.exercise_id, s.weight_kg, s.reps
			FROM set_entry s
			JOIN workout_exercise we ON we.id = s.workout_exercise_id
			JOIN workout w ON w.id = we.workout_id
			WHERE w.user_id = $1 AND w.finished_at IS NOT NULL AND we.exercise_id = ANY($2)
		`,
		userID, exerciseIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("best sets [query]: %w", err)
	}
	defer rows.Close()

	byExercise := make(map[int][]stats.SetSample)
	for rows.Next() {
		var (
			exerciseID int
			s          stats.SetSample
		)
		if err := rows.Scan(&exerciseID, &s.WeightKg, &s.Reps); err != nil {
			return nil, fmt.Errorf("best sets [rows scan]: %w", err)
		}
		byExercise[exerciseID] = append(byExercise[exerciseID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("best sets [rows error]: %w", err)
	}

	for exerciseID, sets := range byExercise {
		if oneRm, ok := stats.BestOneRm(sets); ok {
			best[exerciseID] = oneRm
		}
	}
	return best, nil
}

type NewGoal struct {
	ExerciseID  int
	TargetOneRm float64
	TargetDate  time.Time
}

// Create deactivates the current goal for the exercise and inserts the new one, atomically.
func (r *Repo) Create(ctx context.Context, userID string, ng NewGoal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", ng.ExerciseID))

	var created *Goal
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`UPDATE goal SET is_active = FALSE WHERE user_id = $1 AND exercise_id = $2 AND is_active`,
			userID, ng.ExerciseID,
		); err != nil {
			return fmt.Errorf("deactivate previous goal: %w", err)
		}

		g, err := scanGoal(tx.QueryRow(
			ctx,
			`
				WITH inserted AS (
					INSERT INTO goal (user_id, exercise_id, target_one_rm, target_date)
					VALUES ($1, $2, $3, $4)
					RETURNING *
				)
				SELECT `+goalColumns+`
				FROM inserted g
				JOIN exercise e ON e.id = g.exercise_id
			`,
			userID, ng.ExerciseID, ng.TargetOneRm, ng.TargetDate,
		))
		if err != nil {
			switch {
			case pkg.IsForeignKeyViolationError(err):
				return ErrExerciseNotFound
			case pkg.IsUniqueViolationError(err):
				return ErrActiveGoalRace
			}
			return fmt.Errorf("insert goal: %w", err)
		}
		created = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update changes target and date of an active goal owned by userID.
func (r *Repo) Update(ctx context.Context, userID string, goalID int, targetOneRm float64, targetDate time.Time) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", goalID))

	g, err := scanGoal(r.db.QueryRow(
		ctx,
		`
			WITH updated AS (
				UPDATE goal SET target_one_rm = $3, target_date = $4
				WHERE id = $2 AND user_id = $1 AND is_active
				RETURNING *
			)
			SELECT `+goalColumns+`
			FROM updated g
			JOIN exercise e ON e.id = g.exercise_id
		`,
		userID, goalID, targetOneRm, targetDate,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("update goal [%d]: %w", goalID, err)
	}
	return g, nil
}

// Deactivate turns a goal of userID off. Deactivating an already inactive goal is not an error.
func (r *Repo) Deactivate(ctx context.Context, userID string, goalID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.deactivate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", goalID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE goal SET is_active = FALSE WHERE id = $1 AND user_id = $2`,
		goalID, userID,
	)
	if err != nil {
		return fmt.Errorf("deactivate goal [%d]: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}
