package workouts

import (
	"context"
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

// Active returns the user's unfinished workout with its exercises and sets,
// or nil, nil when there is none.
func (r *Repo) Active(ctx context.Context, userID string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var w Workout
	err = r.db.QueryRow(
		ctx,
		`SELECT id, started_at, finished_at FROM workout WHERE user_id = $1 AND finished_at IS NULL`,
		userID,
	).Scan(&w.ID, &w.StartedAt, &w.FinishedAt)
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("active workout [query]: %w", err)
	}
	span.SetAttributes(attribute.Int("workout.id", w.ID))

	exercises, err := r.workoutExercises(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	w.Exercises = exercises
	return &w, nil
}

func (r *Repo) workoutExercises(ctx context.Context, workoutID int) ([]WorkoutExercise, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT we.id, we.workout_id, we.exercise_id, e.name, we.position
			FROM workout_exercise we
			JOIN exercise e ON e.id = we.exercise_id
			WHERE we.workout_id = $1
			ORDER BY we.position, we.id
		`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("workout exercises [query]: %w", err)
	}
	defer rows.Close()

	exercises := make([]WorkoutExercise, 0)
	byID := make(map[int]int)
	for rows.Next() {
		var we WorkoutExercise
		if err := rows.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.ExerciseName, &we.Position); err != nil {
			return nil, fmt.Errorf("workout exercises [rows scan]: %w", err)
		}
		we.Sets = make([]Set, 0)
		byID[we.ID] = len(exercises)
		exercises = append(exercises, we)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout exercises [rows error]: %w", err)
	}
	if len(exercises) == 0 {
		return exercises, nil
	}

	setRows, err := r.db.Query(
		ctx,
		`
			SELECT s.id, s.workout_exercise_id, s.position, s.weight_kg, s.reps
			FROM set_entry s
			JOIN workout_exercise we ON we.id = s.workout_exercise_id
			WHERE we.workout_id = $1
			ORDER BY s.position, s.id
		`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("workout sets [query]: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var s Set
		if err := setRows.Scan(&s.ID, &s.WorkoutExerciseID, &s.Position, &s.WeightKg, &s.Reps); err != nil {
			return nil, fmt.Errorf("workout sets [rows scan]: %w", err)
		}
		s.fillOneRm()
		if i, ok := byID[s.WorkoutExerciseID]; ok {
			exercises[i].Sets = append(exercises[i].Sets, s)
		}
	}
	if err := setRows.Err(); err != nil {
		return nil, fmt.Errorf("workout sets [rows error]: %w", err)
	}
	return exercises, nil
}

type planExercise struct {
	exerciseID      int
	plannedSetCount *int
}

// Start opens a new workout for the user. With a plan, the plan's exercises are copied
// in order and their sets prefilled from the user's previous workouts, all in one transaction.
func (r *Repo) Start(ctx context.Context, userID string, planID *int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if planID != nil {
		span.SetAttributes(attribute.Int("plan.id", *planID))
	}

	var workoutID int
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var planExercises []planExercise
		if planID != nil {
			pe, err := ownedPlanExercises(ctx, tx, userID, *planID)
			if err != nil {
				return err
			}
			planExercises = pe
		}

		err := tx.QueryRow(
			ctx,
			`
				INSERT INTO workout (user_id)
				SELECT $1
				WHERE NOT EXISTS (SELECT 1 FROM workout WHERE user_id = $1 AND finished_at IS NULL)
				RETURNING id
			`,
			userID,
		).Scan(&workoutID)
		if err != nil {
			if pkg.IsNoRows(err) || pkg.IsUniqueViolationError(err) {
				return ErrWorkoutActive
			}
			return fmt.Errorf("insert workout: %w", err)
		}

		for i, pe := range planExercises {
			if err := prefillExercise(ctx, tx, userID, workoutID, i+1, pe); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int("workout.id", workoutID))
	return workoutID, nil
}

func ownedPlanExercises(ctx context.Context, tx pgx.Tx, userID string, planID int) ([]planExercise, error) {
	var exists bool
	if err := tx.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM workout_plan WHERE id = $1 AND user_id = $2)`,
		planID, userID,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("plan ownership [%d]: %w", planID, err)
	}
	if !exists {
		return nil, ErrPlanNotFound
	}

	rows, err := tx.Query(
		ctx,
		`SELECT exercise_id, planned_set_count FROM plan_exercise WHERE plan_id = $1 ORDER BY position, id`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("plan exercises [query]: %w", err)
	}
	defer rows.Close()

	var result []planExercise
	for rows.Next() {
		var pe planExercise
		if err := rows.Scan(&pe.exerciseID, &pe.plannedSetCount); err != nil {
			return nil, fmt.Errorf("plan exercises [rows scan]: %w", err)
		}
		result = append(result, pe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("plan exercises [rows error]: %w", err)
	}
	return result, nil
}

func prefillExercise(ctx context.Context, tx pgx.Tx, userID string, workoutID, position int, pe planExercise) error {
	var workoutExerciseID int
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO workout_exercise (workout_id, exercise_id, position) VALUES ($1, $2, $3) RETURNING id`,
		workoutID, pe.exerciseID, position,
	).Scan(&workoutExerciseID); err != nil {
		return fmt.Errorf("insert workout exercise [%d]: %w", pe.exerciseID, err)
	}

	rows, err := tx.Query(
		ctx,
		`
			SELECT s.weight_kg, s.reps
			FROM set_entry s
			JOIN workout_exercise we ON we.id = s.workout_exercise_id
			JOIN workout w ON w.id = we.workout_id
			WHERE w.user_id = $1 AND we.exercise_id = $2 AND w.id <> $3
			ORDER BY w.started_at DESC, s.position
			LIMIT $4
		`,
		userID, pe.exerciseID, workoutID, historyLimit(pe.plannedSetCount),
	)
	if err != nil {
		return fmt.Errorf("previous sets [query]: %w", err)
	}
	lastSets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (PrefillSet, error) {
		var s PrefillSet
		err := row.Scan(&s.WeightKg, &s.Reps)
		return s, err
	})
	if err != nil {
		return fmt.Errorf("previous sets [rows]: %w", err)
	}

	for i, s := range Prefill(pe.plannedSetCount, lastSets) {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO set_entry (workout_exercise_id, position, weight_kg, reps) VALUES ($1, $2, $3, $4)`,
			workoutExerciseID, i+1, s.WeightKg, s.Reps,
		); err != nil {
			return fmt.Errorf("insert prefilled set: %w", err)
		}
	}
	return nil
}

// Finish closes an active workout owned by the user.
func (r *Repo) Finish(ctx context.Context, userID string, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout SET finished_at = now() WHERE id = $1 AND user_id = $2 AND finished_at IS NULL`,
		workoutID, userID,
	)
	if err != nil {
		return fmt.Errorf("finish workout [%d]: %w", workoutID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// AddExercise appends an exercise to a workout owned by the user.
func (r *Repo) AddExercise(ctx context.Context, userID string, workoutID, exerciseID int) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID), attribute.Int("exercise.id", exerciseID))

	we := WorkoutExercise{
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		Sets:       make([]Set, 0),
	}
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		// locking the workout row serializes position assignment
		var owned int
		if err := tx.QueryRow(
			ctx,
			`SELECT id FROM workout WHERE id = $1 AND user_id = $2 FOR UPDATE`,
			workoutID, userID,
		).Scan(&owned); err != nil {
			if pkg.IsNoRows(err) {
				return ErrWorkoutNotFound
			}
			return fmt.Errorf("lock workout [%d]: %w", workoutID, err)
		}

		err := tx.QueryRow(
			ctx,
			`
				WITH inserted AS (
					INSERT INTO workout_exercise (workout_id, exercise_id, position)
					SELECT $1, $2, COUNT(*) + 1 FROM workout_exercise WHERE workout_id = $1
					RETURNING id, exercise_id, position
				)
				SELECT i.id, e.name, i.position
				FROM inserted i
				JOIN exercise e ON e.id = i.exercise_id
			`,
			workoutID, exerciseID,
		).Scan(&we.ID, &we.ExerciseName, &we.Position)
		if err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return ErrExerciseNotFound
			}
			return fmt.Errorf("insert workout exercise: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &we, nil
}

// AddSet appends a set to a workout exercise whose workout the user owns.
func (r *Repo) AddSet(ctx context.Context, userID string, workoutExerciseID int, weightKg float64, reps int) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_exercise.id", workoutExerciseID))

	s := Set{
		WorkoutExerciseID: workoutExerciseID,
		WeightKg:          weightKg,
		Reps:              reps,
	}
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var owned int
		if err := tx.QueryRow(
			ctx,
			`
				SELECT we.id
				FROM workout_exercise we
				JOIN workout w ON w.id = we.workout_id
				WHERE we.id = $1 AND w.user_id = $2
				FOR UPDATE OF we
			`,
			workoutExerciseID, userID,
		).Scan(&owned); err != nil {
			if pkg.IsNoRows(err) {
				return ErrWorkoutExerciseNotFound
			}
			return fmt.Errorf("lock workout exercise [%d]: %w", workoutExerciseID, err)
		}

		if err := tx.QueryRow(
			ctx,
			`
				INSERT INTO set_entry (workout_exercise_id, position, weight_kg, reps)
				SELECT $1, COUNT(*) + 1, $2, $3 FROM set_entry WHERE workout_exercise_id = $1
				RETURNING id, position
			`,
			workoutExerciseID, weightKg, reps,
		).Scan(&s.ID, &s.Position); err != nil {
			return fmt.Errorf("insert set: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.fillOneRm()
	return &s, nil
}

// UpdateSet changes weight and/or reps of a set the user owns. Nil fields stay as they are.
func (r *Repo) UpdateSet(ctx context.Context, userID string, setID int, weightKg *float64, reps *int) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))

	var s Set
	err = r.db.QueryRow(
		ctx,
		`
			UPDATE set_entry s
			SET weight_kg = COALESCE($3, s.weight_kg), reps = COALESCE($4, s.reps)
			FROM workout_exercise we, workout w
			WHERE s.id = $1 AND we.id = s.workout_exercise_id AND w.id = we.workout_id AND w.user_id = $2
			RETURNING s.id, s.workout_exercise_id, s.position, s.weight_kg, s.reps
		`,
		setID, userID, weightKg, reps,
	).Scan(&s.ID, &s.WorkoutExerciseID, &s.Position, &s.WeightKg, &s.Reps)
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrSetNotFound
		}
		return nil, fmt.Errorf("update set [%d]: %w", setID, err)
	}

	s.fillOneRm()
	return &s, nil
}

func (r *Repo) DeleteSet(ctx context.Context, userID string, setID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))

	tag, err := r.db.Exec(
		ctx,
		`
			DELETE FROM set_entry s
			USING workout_exercise we, workout w
			WHERE s.id = $1 AND we.id = s.workout_exercise_id AND w.id = we.workout_id AND w.user_id = $2
		`,
		setID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete set [%d]: %w", setID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}
