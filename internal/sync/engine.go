package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lvalenti/liftlog/internal/fit"
	"github.com/lvalenti/liftlog/internal/telemetry/metrics"
	"github.com/lvalenti/liftlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/singleflight"
)

// ErrNoUser is returned by user-scoped operations invoked without a resolved
// identity, before any I/O is attempted.
var ErrNoUser = errors.New("no user")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=sync_test

type localCache interface {
	CurrentUser(ctx context.Context) *fit.UserIdentity
	GetExercises(ctx context.Context) []fit.Exercise
	SaveExercises(ctx context.Context, exercises []fit.Exercise)
	GetTemplates(ctx context.Context) []fit.WorkoutTemplate
	SaveTemplates(ctx context.Context, templates []fit.WorkoutTemplate)
	GetCalendar(ctx context.Context) []fit.CalendarEntry
	SaveCalendar(ctx context.Context, calendar []fit.CalendarEntry)
}

type remoteStore interface {
	ListExercises(ctx context.Context) ([]fit.Exercise, error)
	UpsertExercises(ctx context.Context, exercises []fit.Exercise) error
	ListWorkouts(ctx context.Context, userID string) ([]fit.WorkoutTemplate, error)
	UpsertWorkouts(ctx context.Context, userID string, templates []fit.WorkoutTemplate) error
	ListCalendar(ctx context.Context, userID string) ([]fit.CalendarEntry, error)
	UpsertCalendar(ctx context.Context, userID string, entries []fit.CalendarEntry) error
}

// Engine reconciles the local cache against the remote store.
//
// Pulls (Load*) are destructive: the local collection is replaced wholesale
// with the mapped remote result, and only after the full query succeeded.
// Pushes (Sync*) upsert the whole local collection keyed by primary key,
// so re-pushing identical data changes nothing. Conflicts resolve as
// last-write-wins by id, by design.
type Engine struct {
	cache          localCache
	remote         remoteStore
	metricsManager *metrics.Manager

	// coalesces concurrent full sync triggers (rapid pull-to-refresh)
	// into a single in-flight run
	fullSyncGroup singleflight.Group
}

func NewEngine(cache localCache, remote remoteStore, metricsManager *metrics.Manager) *Engine {
	return &Engine{
		cache:          cache,
		remote:         remote,
		metricsManager: metricsManager,
	}
}

// LoadTemplates pulls the user's workout templates from the remote store and
// replaces the local collection with them.
func (e *Engine) LoadTemplates(ctx context.Context) (_ []fit.WorkoutTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sync.templates.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user := e.cache.CurrentUser(ctx)
	if user == nil {
		return nil, ErrNoUser
	}

	templates, err := e.remote.ListWorkouts(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	e.cache.SaveTemplates(ctx, templates)
	log.Debugf("sync: %d templates loaded from remote", len(templates))
	return templates, nil
}

// LoadCalendar pulls the user's completed sessions from the remote store and
// replaces the local collection with them. Dates are normalized to their
// YYYY-MM-DD prefix in case the backend attached a time component.
func (e *Engine) LoadCalendar(ctx context.Context) (_ []fit.CalendarEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sync.calendar.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user := e.cache.CurrentUser(ctx)
	if user == nil {
		return nil, ErrNoUser
	}

	calendar, err := e.remote.ListCalendar(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list calendar: %w", err)
	}

	for i := range calendar {
		calendar[i].Date = fit.DateOnly(calendar[i].Date)
	}

	e.cache.SaveCalendar(ctx, calendar)
	log.Debugf("sync: %d calendar workouts loaded from remote", len(calendar))
	return calendar, nil
}

// LoadExercises pulls the global exercise catalog. It needs no identity,
// the catalog is shared between all users.
func (e *Engine) LoadExercises(ctx context.Context) (_ []fit.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sync.exercises.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercises, err := e.remote.ListExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	e.cache.SaveExercises(ctx, exercises)
	log.Debugf("sync: %d exercises loaded from remote", len(exercises))
	return exercises, nil
}

// SyncTemplates pushes the whole local template collection to the remote
// store, upserting by id.
func (e *Engine) SyncTemplates(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sync.templates.push")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user := e.cache.CurrentUser(ctx)
	if user == nil {
		return ErrNoUser
	}

	templates := e.cache.GetTemplates(ctx)
	if err := e.remote.UpsertWorkouts(ctx, user.ID, templates); err != nil {
		return fmt.Errorf("upsert workouts: %w", err)
	}

	log.Debugf("sync: %d templates pushed to remote", len(templates))
	return nil
}

// SyncCalendar pushes the whole local calendar collection to the remote
// store, upserting by id.
func (e *Engine) SyncCalendar(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sync.calendar.push")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user := e.cache.CurrentUser(ctx)
	if user == nil {
		return ErrNoUser
	}

	calendar := e.cache.GetCalendar(ctx)
	if err := e.remote.UpsertCalendar(ctx, user.ID, calendar); err != nil {
		return fmt.Errorf("upsert calendar: %w", err)
	}

	log.Debugf("sync: %d calendar workouts pushed to remote", len(calendar))
	return nil
}

// SyncExercises pushes the local exercise catalog to the remote store.
// Only admins may write the shared catalog: for everyone else this is a
// silent no-op success, not an error - a non-admin editing the catalog
// locally is expected behavior, not a failure to surface.
func (e *Engine) SyncExercises(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sync.exercises.push")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user := e.cache.CurrentUser(ctx)
	if user == nil {
		return ErrNoUser
	}

	if !user.IsAdmin {
		log.Debugf("sync: non-admin user %s, skipping exercise push", user.ID)
		return nil
	}

	exercises := e.cache.GetExercises(ctx)
	if err := e.remote.UpsertExercises(ctx, exercises); err != nil {
		return fmt.Errorf("upsert exercises: %w", err)
	}

	log.Debugf("sync: %d exercises pushed to remote", len(exercises))
	return nil
}

// FullSync runs all six sync steps in fixed order: pull templates, pull
// calendar, pull exercises, then push templates, push calendar, push
// exercises. Pull-before-push keeps local records created offline alive:
// they survive the pulls of other collections and are then pushed.
//
// A failing step is logged and recorded but never aborts the remaining
// steps. The returned error aggregates all step failures, nil means a fully
// clean run. Concurrent calls coalesce into the one in-flight run.
func (e *Engine) FullSync(ctx context.Context) error {
	_, err, _ := e.fullSyncGroup.Do("full-sync", func() (interface{}, error) {
		return nil, e.fullSync(ctx)
	})
	return err
}

func (e *Engine) fullSync(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sync.full")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()
	log.Debugln("sync: starting full sync ...")

	steps := []struct {
		name string
		run  func(ctx context.Context) error
	}{
		{"load-templates", func(ctx context.Context) error {
			_, err := e.LoadTemplates(ctx)
			return err
		}},
		{"load-calendar", func(ctx context.Context) error {
			_, err := e.LoadCalendar(ctx)
			return err
		}},
		{"load-exercises", func(ctx context.Context) error {
			_, err := e.LoadExercises(ctx)
			return err
		}},
		{"push-templates", e.SyncTemplates},
		{"push-calendar", e.SyncCalendar},
		{"push-exercises", e.SyncExercises},
	}

	var errs error
	for _, step := range steps {
		if stepErr := step.run(ctx); stepErr != nil {
			log.Errorf("sync: step %s: %s", step.name, stepErr)
			if e.metricsManager != nil {
				e.metricsManager.CounterSyncStepErrors.WithLabelValues(step.name).Inc()
			}
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", step.name, stepErr))
		}
	}

	if e.metricsManager != nil {
		e.metricsManager.CounterFullSyncs.Inc()
		e.metricsManager.HistFullSyncDuration.Observe(time.Since(start).Seconds())
	}

	log.Debugf("sync: full sync completed in %s", time.Since(start))
	return errs
}
