package fit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lvalenti/liftlog/internal/telemetry/tracing"
	"github.com/lvalenti/liftlog/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=fit_test

type localStore interface {
	GetExercises(ctx context.Context) []Exercise
	SaveExercises(ctx context.Context, exercises []Exercise)
	GetTemplates(ctx context.Context) []WorkoutTemplate
	SaveTemplates(ctx context.Context, templates []WorkoutTemplate)
	GetCalendar(ctx context.Context) []CalendarEntry
	SaveCalendar(ctx context.Context, calendar []CalendarEntry)
}

// Handler serves the local collections the app screens read and write.
// Everything here talks to the local cache only; reconciliation with the
// remote backend is the sync engine's job.
type Handler struct {
	store localStore
}

func NewHandler(store localStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	router.HandleFunc("/exercises", handler.HandleSaveExercises).Methods("POST", "OPTIONS").Name("save-exercises")
	router.HandleFunc("/templates", handler.HandleListTemplates).Methods("GET", "OPTIONS").Name("list-templates")
	router.HandleFunc("/templates", handler.HandleSaveTemplates).Methods("POST", "OPTIONS").Name("save-templates")
	router.HandleFunc("/templates/{id}/complete", handler.HandleCompleteWorkout).Methods("POST", "OPTIONS").Name("complete-workout")
	router.HandleFunc("/calendar", handler.HandleListCalendar).Methods("GET", "OPTIONS").Name("list-calendar")
	router.HandleFunc("/calendar", handler.HandleSaveCalendar).Methods("POST", "OPTIONS").Name("save-calendar")
	router.HandleFunc("/stats/volume/{date}", handler.HandleVolumeOnDate).Methods("GET", "OPTIONS").Name("stats-volume")
	router.HandleFunc("/stats/counts", handler.HandleWorkoutCounts).Methods("GET", "OPTIONS").Name("stats-counts")
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "fitHandler.listExercises")
	defer span.End()
	writeJSON(w, handler.store.GetExercises(ctx), http.StatusOK)
}

func (handler *Handler) HandleSaveExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "fitHandler.saveExercises")
	defer span.End()

	var exercises []Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercises); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	for _, e := range exercises {
		if err := e.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	handler.store.SaveExercises(ctx, exercises)
	pkg.WriteJSONResponseOK(w, `{"success": true}`)
}

func (handler *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "fitHandler.listTemplates")
	defer span.End()
	writeJSON(w, handler.store.GetTemplates(ctx), http.StatusOK)
}

func (handler *Handler) HandleSaveTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "fitHandler.saveTemplates")
	defer span.End()

	var templates []WorkoutTemplate
	if err := json.NewDecoder(r.Body).Decode(&templates); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	for i := range templates {
		templates[i].NormalizeSets()
	}

	handler.store.SaveTemplates(ctx, templates)
	pkg.WriteJSONResponseOK(w, `{"success": true}`)
}

// HandleCompleteWorkout turns a performed template into a calendar entry
// with a fresh id, prepended to the local calendar. The remote copy follows
// on the next sync.
func (handler *Handler) HandleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "fitHandler.completeWorkout")
	defer span.End()

	var req struct {
		DurationSeconds int `json:"duration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	templateID := mux.Vars(r)["id"]
	var template *WorkoutTemplate
	for _, t := range handler.store.GetTemplates(ctx) {
		if t.ID == templateID {
			template = &t
			break
		}
	}
	if template == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	entry := CompleteWorkout(
		uuid.NewString(),
		*template,
		time.Now(),
		time.Duration(req.DurationSeconds)*time.Second,
	)
	calendar := append([]CalendarEntry{entry}, handler.store.GetCalendar(ctx)...)
	handler.store.SaveCalendar(ctx, calendar)

	log.Debugf("workout %s completed as calendar entry %s", templateID, entry.ID)
	writeJSON(w, entry, http.StatusOK)
}

func (handler *Handler) HandleListCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "fitHandler.listCalendar")
	defer span.End()
	writeJSON(w, handler.store.GetCalendar(ctx), http.StatusOK)
}

func (handler *Handler) HandleSaveCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "fitHandler.saveCalendar")
	defer span.End()

	var calendar []CalendarEntry
	if err := json.NewDecoder(r.Body).Decode(&calendar); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	for i := range calendar {
		calendar[i].Date = DateOnly(calendar[i].Date)
	}

	handler.store.SaveCalendar(ctx, calendar)
	pkg.WriteJSONResponseOK(w, `{"success": true}`)
}

func (handler *Handler) HandleVolumeOnDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "fitHandler.volumeOnDate")
	defer span.End()

	date := mux.Vars(r)["date"]
	var total float64
	for _, entry := range WorkoutsOnDate(handler.store.GetCalendar(ctx), date) {
		total += Volume(entry.Exercises)
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"date": "%s", "volume": %g}`, date, total))
}

func (handler *Handler) HandleWorkoutCounts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "fitHandler.workoutCounts")
	defer span.End()

	now := time.Now()
	calendar := handler.store.GetCalendar(ctx)

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(
		`{"week": %d, "month": %d}`,
		WorkoutsInWeek(calendar, now),
		WorkoutsInMonth(calendar, now.Year(), now.Month()),
	))
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dataBytes, statusCode)
}
