package sharing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lvalenti/liftlog/internal/telemetry/tracing"
	"github.com/lvalenti/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/share/{code}", handler.HandleGetShared).Methods("GET", "OPTIONS").Name("share-get")
	router.HandleFunc("/share/{code}/import", handler.HandleImport).Methods("POST", "OPTIONS").Name("share-import")
	router.HandleFunc("/workout/{id}/share", handler.HandleShare).Methods("POST", "OPTIONS").Name("share-create")
}

type shareResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
	Workout interface{} `json:"workout,omitempty"`
}

func (handler *Handler) HandleShare(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "sharingHandler.share")
	defer span.End()

	code, err := handler.service.ShareWorkout(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeShareErr(w, err)
		return
	}
	writeShareResponse(w, shareResponse{Success: true, Code: code}, http.StatusOK)
}

func (handler *Handler) HandleGetShared(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "sharingHandler.get")
	defer span.End()

	workout, err := handler.service.GetSharedWorkout(ctx, mux.Vars(r)["code"])
	if err != nil {
		writeShareErr(w, err)
		return
	}
	writeShareResponse(w, shareResponse{Success: true, Workout: workout}, http.StatusOK)
}

func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "sharingHandler.import")
	defer span.End()

	workout, err := handler.service.ImportWorkout(ctx, mux.Vars(r)["code"])
	if err != nil {
		writeShareErr(w, err)
		return
	}
	writeShareResponse(w, shareResponse{Success: true, Workout: workout}, http.StatusOK)
}

func writeShareErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeShareResponse(w, shareResponse{Success: false, Error: "not found"}, http.StatusNotFound)
	case errors.Is(err, ErrNoUser):
		writeShareResponse(w, shareResponse{Success: false, Error: "No user"}, http.StatusUnauthorized)
	default:
		log.Errorf("sharing handler: %s", err)
		writeShareResponse(w, shareResponse{Success: false, Error: "internal error"}, http.StatusInternalServerError)
	}
}

func writeShareResponse(w http.ResponseWriter, resp shareResponse, statusCode int) {
	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal share response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, statusCode)
}
