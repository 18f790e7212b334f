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

// ListCalendar returns all completed workout sessions of the given user,
// most recent date first. The date column comes back as a timestamp, it is
// formatted to its date-only form here.
func (s *Store) ListCalendar(ctx context.Context, userID string) (_ []fit.CalendarEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.calendar.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := s.db.Query(
		ctx,
		`SELECT id, name, date, notes, duration, completed_at, exercises, created_at
			FROM calendar
			WHERE user_id = $1
			ORDER BY date DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var entries []fit.CalendarEntry
	for rows.Next() {
		var id, name string
		var date time.Time
		var notes *string
		var duration int
		var completedAt, createdAt time.Time
		var exercisesBytes []byte
		if err := rows.Scan(&id, &name, &date, &notes, &duration, &completedAt, &exercisesBytes, &createdAt); err != nil {
			return nil, err
		}

		e := fit.CalendarEntry{
			ID:          id,
			Name:        name,
			Date:        date.Format(time.DateOnly),
			Duration:    duration,
			CompletedAt: completedAt,
			CreatedAt:   createdAt,
		}
		if notes != nil {
			e.Notes = *notes
		}
		if len(exercisesBytes) > 0 {
			if err := json.Unmarshal(exercisesBytes, &e.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises of calendar entry %s: %w", id, err)
			}
		}
		entries = append(entries, e)
	}

	if entries == nil {
		entries = make([]fit.CalendarEntry, 0)
	}

	span.SetAttributes(attribute.Int("calendar.count", len(entries)))
	return entries, nil
}

// UpsertCalendar writes the given calendar entries for the user,
// insert-or-replace keyed by id.
func (s *Store) UpsertCalendar(ctx context.Context, userID string, entries []fit.CalendarEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.calendar.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.Int("calendar.count", len(entries)))

	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		exercisesJson, err := json.Marshal(e.Exercises)
		if err != nil {
			return fmt.Errorf("marshal exercises of calendar entry %s: %w", e.ID, err)
		}
		batch.Queue(`
			INSERT INTO calendar (id, user_id, name, date, notes, duration, completed_at, exercises, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO UPDATE SET
				user_id = EXCLUDED.user_id,
				name = EXCLUDED.name,
				date = EXCLUDED.date,
				notes = EXCLUDED.notes,
				duration = EXCLUDED.duration,
				completed_at = EXCLUDED.completed_at,
				exercises = EXCLUDED.exercises,
				created_at = EXCLUDED.created_at;`,
			e.ID, userID, e.Name, fit.DateOnly(e.Date), nullable(e.Notes),
			e.Duration, e.CompletedAt, exercisesJson, e.CreatedAt,
		)
	}

	return s.db.SendBatch(ctx, batch).Close()
}
