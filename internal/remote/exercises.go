package remote

import (
	"context"
	"time"

	"github.com/lvalenti/liftlog/internal/fit"
	"github.com/lvalenti/liftlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// ListExercises returns the whole global exercise catalog, name ascending.
// The catalog is not user-scoped.
func (s *Store) ListExercises(ctx context.Context) (_ []fit.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.db.Query(
		ctx,
		`SELECT id, name, category, notes, created_at FROM exercises ORDER BY name ASC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))
	return exercises, nil
}

// UpsertExercises writes the given catalog entries, insert-or-replace keyed
// by id. Re-pushing identical data produces no observable change.
func (s *Store) UpsertExercises(ctx context.Context, exercises []fit.Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.exercises.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))

	if len(exercises) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range exercises {
		batch.Queue(`
			INSERT INTO exercises (id, name, category, notes, created_at)
				VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				category = EXCLUDED.category,
				notes = EXCLUDED.notes,
				created_at = EXCLUDED.created_at;`,
			e.ID, e.Name, string(e.Category), nullable(e.Notes), e.CreatedAt,
		)
	}

	return s.db.SendBatch(ctx, batch).Close()
}

func rows2exercises(rows pgx.Rows) ([]fit.Exercise, error) {
	var exercises []fit.Exercise
	for rows.Next() {
		var id, name, category string
		var notes *string
		var createdAt time.Time
		if err := rows.Scan(&id, &name, &category, &notes, &createdAt); err != nil {
			return nil, err
		}

		e := fit.Exercise{
			ID:        id,
			Name:      name,
			Category:  fit.Category(category),
			CreatedAt: createdAt,
		}
		if notes != nil {
			e.Notes = *notes
		}
		exercises = append(exercises, e)
	}

	if exercises == nil {
		exercises = make([]fit.Exercise, 0)
	}
	return exercises, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
