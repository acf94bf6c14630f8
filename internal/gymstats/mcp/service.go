package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/gymstats/bodyweight"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/exercises"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/goals"
)

type exerciseService interface {
	List(ctx context.Context) ([]exercises.Exercise, error)
	Detail(ctx context.Context, userID string, exerciseID int) (*exercises.Detail, error)
}

type bodyWeightLister interface {
	List(ctx context.Context, userID string) ([]bodyweight.Entry, error)
}

// progressService is what the tool handlers need. Every read is scoped to one user.
type progressService interface {
	GetSchema(ctx context.Context) (string, error)
	ListExercises(ctx context.Context) ([]exercises.Exercise, error)
	ExerciseProgress(ctx context.Context, userID string, exerciseID int) (*exercises.Detail, error)
	GoalsProgress(ctx context.Context, userID string) ([]goals.WithProgress, error)
	BodyWeight(ctx context.Context, userID string, from, to *time.Time) ([]bodyweight.Entry, error)
}

// ProgressService reads a user's training progress for the MCP tools.
type ProgressService struct {
	schema      SchemaRepo
	exercises   exerciseService
	goals       goals.ProgressReader
	bodyWeights bodyWeightLister
}

func NewProgressService(schemaRepo SchemaRepo, exercises exerciseService, goals goals.ProgressReader, bodyWeights bodyWeightLister) *ProgressService {
	return &ProgressService{
		schema:      schemaRepo,
		exercises:   exercises,
		goals:       goals,
		bodyWeights: bodyWeights,
	}
}

// GetSchema returns the columns of the progress tables as markdown.
func (s *ProgressService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.ProgressColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Progress DB Schema\n\nNo progress tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Progress DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(tableOrder, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ProgressService) ListExercises(ctx context.Context) ([]exercises.Exercise, error) {
	return s.exercises.List(ctx)
}

// ExerciseProgress returns the same detail the exercise page shows.
func (s *ProgressService) ExerciseProgress(ctx context.Context, userID string, exerciseID int) (*exercises.Detail, error) {
	return s.exercises.Detail(ctx, userID, exerciseID)
}

func (s *ProgressService) GoalsProgress(ctx context.Context, userID string) ([]goals.WithProgress, error) {
	return goals.ActiveWithProgress(ctx, s.goals, userID)
}

// BodyWeight lists entries oldest first, limited to [from, to] when given.
func (s *ProgressService) BodyWeight(ctx context.Context, userID string, from, to *time.Time) ([]bodyweight.Entry, error) {
	entries, err := s.bodyWeights.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := make([]bodyweight.Entry, 0, len(entries))
	for _, e := range bodyweight.Ascending(entries) {
		if from != nil && e.Date < from.Format(time.DateOnly) {
			continue
		}
		if to != nil && e.Date > to.Format(time.DateOnly) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}
