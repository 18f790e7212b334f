package sharing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lvalenti/liftlog/internal/fit"
	"github.com/lvalenti/liftlog/internal/remote"
	"github.com/lvalenti/liftlog/internal/telemetry/metrics"
	"github.com/lvalenti/liftlog/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrNoUser   = errors.New("no user")
	ErrNotFound = errors.New("not found")
)

const importedNameSuffix = " (imported)"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=sharing_test

type templatesCache interface {
	CurrentUser(ctx context.Context) *fit.UserIdentity
	GetTemplates(ctx context.Context) []fit.WorkoutTemplate
	SaveTemplates(ctx context.Context, templates []fit.WorkoutTemplate)
}

type workoutsRepo interface {
	GetWorkout(ctx context.Context, id string) (*fit.WorkoutTemplate, error)
	InsertWorkout(ctx context.Context, userID string, template fit.WorkoutTemplate) error
}

// Service produces and redeems workout share codes. A share code is the
// template's own primary key, verbatim: no indirection table, no expiry.
// Whoever holds the code can read the row.
type Service struct {
	cache          templatesCache
	workouts       workoutsRepo
	metricsManager *metrics.Manager
}

func NewService(cache templatesCache, workouts workoutsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		cache:          cache,
		workouts:       workouts,
		metricsManager: metricsManager,
	}
}

// ShareWorkout returns the share code for the given template.
func (s *Service) ShareWorkout(ctx context.Context, templateID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sharing.share")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user := s.cache.CurrentUser(ctx)
	if user == nil {
		return "", ErrNoUser
	}

	for _, t := range s.cache.GetTemplates(ctx) {
		if t.ID == templateID {
			span.SetAttributes(attribute.String("share.code", t.ID))
			return t.ID, nil
		}
	}

	return "", fmt.Errorf("template %s: %w", templateID, ErrNotFound)
}

// GetSharedWorkout resolves a share code to the shared template, without
// copying anything yet. The lookup is deliberately unscoped by owning user,
// that is the whole point of sharing.
func (s *Service) GetSharedWorkout(ctx context.Context, code string) (_ *fit.WorkoutTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sharing.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("share.code", code))

	template, err := s.workouts.GetWorkout(ctx, code)
	if err != nil {
		if errors.Is(err, remote.ErrWorkoutNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return template, nil
}

// ImportWorkout redeems a share code for the current user: the shared
// template is copied under a fresh id, its name marked as imported, prepended
// to the local collection and pushed to the remote store. A failing remote
// insert is logged, not fatal - the next full sync pushes it anyway.
func (s *Service) ImportWorkout(ctx context.Context, code string) (_ *fit.WorkoutTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sharing.import")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("share.code", code))

	user := s.cache.CurrentUser(ctx)
	if user == nil {
		return nil, ErrNoUser
	}

	shared, err := s.GetSharedWorkout(ctx, code)
	if err != nil {
		return nil, err
	}

	imported := *shared
	imported.ID = uuid.NewString()
	if !strings.HasSuffix(imported.Name, importedNameSuffix) {
		imported.Name += importedNameSuffix
	}

	templates := append([]fit.WorkoutTemplate{imported}, s.cache.GetTemplates(ctx)...)
	s.cache.SaveTemplates(ctx, templates)

	if err := s.workouts.InsertWorkout(ctx, user.ID, imported); err != nil {
		log.Errorf("sharing: push imported workout %s (non-fatal): %s", imported.ID, err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterImportedWorkouts.Inc()
	}

	log.Debugf("sharing: workout %s imported as %s for user %s", code, imported.ID, user.ID)
	return &imported, nil
}
