package sync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lvalenti/liftlog/internal/fit"
	"github.com/lvalenti/liftlog/internal/telemetry/tracing"
	"github.com/lvalenti/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sync_test

type syncEngine interface {
	LoadTemplates(ctx context.Context) ([]fit.WorkoutTemplate, error)
	LoadCalendar(ctx context.Context) ([]fit.CalendarEntry, error)
	LoadExercises(ctx context.Context) ([]fit.Exercise, error)
	SyncTemplates(ctx context.Context) error
	SyncCalendar(ctx context.Context) error
	SyncExercises(ctx context.Context) error
	FullSync(ctx context.Context) error
}

type Handler struct {
	engine syncEngine
}

func NewHandler(engine syncEngine) *Handler {
	return &Handler{
		engine: engine,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/sync", handler.HandleFullSync).Methods("POST", "OPTIONS").Name("full-sync")
	router.HandleFunc("/sync/load/{collection}", handler.HandleLoad).Methods("POST", "OPTIONS").Name("sync-load")
	router.HandleFunc("/sync/push/{collection}", handler.HandlePush).Methods("POST", "OPTIONS").Name("sync-push")
}

// Result is the envelope every sync endpoint responds with. Error is set
// only on failure, Data only for pulls.
type Result struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func (handler *Handler) HandleFullSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sync.full")
	defer span.End()

	if err := handler.engine.FullSync(ctx); err != nil {
		log.Errorf("full sync: %s", err)
		writeResult(w, Result{Success: false, Error: errMessage(err)}, statusForErr(err))
		return
	}
	writeResult(w, Result{Success: true}, http.StatusOK)
}

func (handler *Handler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sync.load")
	defer span.End()

	var data interface{}
	var err error
	switch collection := mux.Vars(r)["collection"]; collection {
	case "templates":
		data, err = handler.engine.LoadTemplates(ctx)
	case "calendar":
		data, err = handler.engine.LoadCalendar(ctx)
	case "exercises":
		data, err = handler.engine.LoadExercises(ctx)
	default:
		http.Error(w, "unknown collection", http.StatusBadRequest)
		return
	}

	if err != nil {
		log.Errorf("sync load: %s", err)
		writeResult(w, Result{Success: false, Error: errMessage(err)}, statusForErr(err))
		return
	}
	writeResult(w, Result{Success: true, Data: data}, http.StatusOK)
}

func (handler *Handler) HandlePush(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sync.push")
	defer span.End()

	var err error
	switch collection := mux.Vars(r)["collection"]; collection {
	case "templates":
		err = handler.engine.SyncTemplates(ctx)
	case "calendar":
		err = handler.engine.SyncCalendar(ctx)
	case "exercises":
		err = handler.engine.SyncExercises(ctx)
	default:
		http.Error(w, "unknown collection", http.StatusBadRequest)
		return
	}

	if err != nil {
		log.Errorf("sync push: %s", err)
		writeResult(w, Result{Success: false, Error: errMessage(err)}, statusForErr(err))
		return
	}
	writeResult(w, Result{Success: true}, http.StatusOK)
}

func writeResult(w http.ResponseWriter, result Result, statusCode int) {
	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal sync result: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, statusCode)
}

// errMessage keeps the wire message for a missing identity stable for the
// app, regardless of any wrapping.
func errMessage(err error) string {
	if errors.Is(err, ErrNoUser) {
		return "No user"
	}
	return err.Error()
}

func statusForErr(err error) int {
	if errors.Is(err, ErrNoUser) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
