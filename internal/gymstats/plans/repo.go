package plans

import (
	"context"
	"fmt"

	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
	"github.com/gorillabuild/gorillabuild/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const planColumns = `id, user_id, name, created_at, updated_at`

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanPlan(row pgx.Row) (*Plan, error) {
	var p Plan
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) List(ctx context.Context, userID string) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+planColumns+` FROM workout_plan WHERE user_id = $1 ORDER BY updated_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("plans [query]: %w", err)
	}
	defer rows.Close()

	plans := make([]Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("plans [rows scan]: %w", err)
		}
		plans = append(plans, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("plans [rows error]: %w", err)
	}

	span.SetAttributes(attribute.Int("plans.count", len(plans)))
	return plans, nil
}

func (r *Repo) Get(ctx context.Context, userID string, planID int) (_ *WithExercises, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	return withExercises(ctx, r.db, userID, planID, false)
}

func (r *Repo) Create(ctx context.Context, userID, name string, exercises []ExerciseInput) (_ *WithExercises, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))

	var created *WithExercises
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var planID int
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO workout_plan (user_id, name) VALUES ($1, $2) RETURNING id`,
			userID, name,
		).Scan(&planID); err != nil {
			return fmt.Errorf("insert plan: %w", err)
		}

		if err := insertExercises(ctx, tx, planID, exercises); err != nil {
			return err
		}

		p, err := withExercises(ctx, tx, userID, planID, false)
		if err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update renames the plan and/or replaces its exercises in one transaction.
// Any change bumps updated_at.
func (r *Repo) Update(ctx context.Context, userID string, planID int, changes Changes) (_ *WithExercises, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	var updated *WithExercises
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		current, err := withExercises(ctx, tx, userID, planID, true)
		if err != nil {
			return err
		}
		if changes.empty() {
			updated = current
			return nil
		}

		if changes.Exercises != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM plan_exercise WHERE plan_id = $1`, planID); err != nil {
				return fmt.Errorf("clear plan exercises [%d]: %w", planID, err)
			}
			if err := insertExercises(ctx, tx, planID, changes.Exercises); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(
			ctx,
			`UPDATE workout_plan SET name = COALESCE($2, name), updated_at = now() WHERE id = $1`,
			planID, changes.Name,
		); err != nil {
			return fmt.Errorf("update plan [%d]: %w", planID, err)
		}

		p, err := withExercises(ctx, tx, userID, planID, false)
		if err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repo) Delete(ctx context.Context, userID string, planID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_plan WHERE id = $1 AND user_id = $2`, planID, userID)
	if err != nil {
		return fmt.Errorf("delete plan [%d]: %w", planID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func insertExercises(ctx context.Context, q querier, planID int, exercises []ExerciseInput) error {
	for _, e := range exercises {
		if _, err := q.Exec(
			ctx,
			`INSERT INTO plan_exercise (plan_id, exercise_id, position, planned_set_count) VALUES ($1, $2, $3, $4)`,
			planID, e.ExerciseID, e.Order, e.PlannedSetCount,
		); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return ErrExerciseNotFound
			}
			return fmt.Errorf("insert plan exercise [%d]: %w", e.ExerciseID, err)
		}
	}
	return nil
}

func withExercises(ctx context.Context, q querier, userID string, planID int, forUpdate bool) (*WithExercises, error) {
	query := `SELECT ` + planColumns + ` FROM workout_plan WHERE id = $1 AND user_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	p, err := scanPlan(q.QueryRow(ctx, query, planID, userID))
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("plan [%d]: %w", planID, err)
	}

	rows, err := q.Query(
		ctx,
		`
			SELECT pe.id, pe.plan_id, pe.exercise_id, e.name, pe.position, pe.planned_set_count
			FROM plan_exercise pe
			JOIN exercise e ON e.id = pe.exercise_id
			WHERE pe.plan_id = $1
			ORDER BY pe.position, pe.id
		`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("plan exercises [query]: %w", err)
	}
	exercises, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (PlanExercise, error) {
		var pe PlanExercise
		err := row.Scan(&pe.ID, &pe.PlanID, &pe.ExerciseID, &pe.ExerciseName, &pe.Order, &pe.PlannedSetCount)
		return pe, err
	})
	if err != nil {
		return nil, fmt.Errorf("plan exercises [rows]: %w", err)
	}
	if exercises == nil {
		exercises = make([]PlanExercise, 0)
	}

	return &WithExercises{Plan: *p, Exercises: exercises}, nil
}
