package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lvalenti/liftlog/internal/fit"
	"github.com/lvalenti/liftlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// ListWorkouts returns all workout templates owned by the given user,
// newest first.
func (s *Store) ListWorkouts(ctx context.Context, userID string) (_ []fit.WorkoutTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := s.db.Query(
		ctx,
		`SELECT id, name, notes, exercises, created_at
			FROM workouts
			WHERE user_id = $1
			ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	templates, err := rows2templates(rows)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workouts.count", len(templates)))
	return templates, nil
}

// GetWorkout looks a template up by primary key, deliberately unscoped by
// owning user - this is what makes share codes redeemable across users.
func (s *Store) GetWorkout(ctx context.Context, id string) (_ *fit.WorkoutTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	rows, err := s.db.Query(
		ctx,
		`SELECT id, name, notes, exercises, created_at FROM workouts WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	templates, err := rows2templates(rows)
	if err != nil {
		return nil, err
	}
	if len(templates) != 1 {
		return nil, ErrWorkoutNotFound
	}
	return &templates[0], nil
}

// UpsertWorkouts writes the given templates for the user, insert-or-replace
// keyed by id.
func (s *Store) UpsertWorkouts(ctx context.Context, userID string, templates []fit.WorkoutTemplate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.workouts.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.Int("workouts.count", len(templates)))

	if len(templates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, t := range templates {
		exercisesJson, err := json.Marshal(t.Exercises)
		if err != nil {
			return fmt.Errorf("marshal exercises of workout %s: %w", t.ID, err)
		}
		batch.Queue(`
			INSERT INTO workouts (id, user_id, name, notes, exercises, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				user_id = EXCLUDED.user_id,
				name = EXCLUDED.name,
				notes = EXCLUDED.notes,
				exercises = EXCLUDED.exercises,
				created_at = EXCLUDED.created_at;`,
			t.ID, userID, t.Name, nullable(t.Notes), exercisesJson, t.CreatedAt,
		)
	}

	return s.db.SendBatch(ctx, batch).Close()
}

// InsertWorkout adds a single template for the user, used for imports.
func (s *Store) InsertWorkout(ctx context.Context, userID string, template fit.WorkoutTemplate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.workouts.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", template.ID))

	exercisesJson, err := json.Marshal(template.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = s.db.Exec(
		ctx,
		`INSERT INTO workouts (id, user_id, name, notes, exercises, created_at)
			VALUES ($1, $2, $3, $4, $5, $6);`,
		template.ID, userID, template.Name, nullable(template.Notes), exercisesJson, template.CreatedAt,
	)
	return err
}

func rows2templates(rows pgx.Rows) ([]fit.WorkoutTemplate, error) {
	var templates []fit.WorkoutTemplate
	for rows.Next() {
		var id, name string
		var notes *string
		var exercisesBytes []byte
		var createdAt time.Time
		if err := rows.Scan(&id, &name, &notes, &exercisesBytes, &createdAt); err != nil {
			return nil, err
		}

		t := fit.WorkoutTemplate{
			ID:        id,
			Name:      name,
			CreatedAt: createdAt,
		}
		if notes != nil {
			t.Notes = *notes
		}
		if len(exercisesBytes) > 0 {
			if err := json.Unmarshal(exercisesBytes, &t.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises of workout %s: %w", id, err)
			}
		}
		templates = append(templates, t)
	}

	if templates == nil {
		templates = make([]fit.WorkoutTemplate, 0)
	}
	return templates, nil
}
