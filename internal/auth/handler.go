package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lvalenti/liftlog/internal/middleware"
	"github.com/lvalenti/liftlog/internal/telemetry/metrics"
	"github.com/lvalenti/liftlog/internal/telemetry/tracing"
	"github.com/lvalenti/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	authService    *Service
	metricsManager *metrics.Manager
}

func NewHandler(authService *Service, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		authService:    authService,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginAllowedPerMin int,
) {
	authSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	authSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	authSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("GET", "POST", "OPTIONS").Name("logout")
	authSubrouter.
		HandleFunc("/register", handler.handleRegister).
		Methods("POST", "OPTIONS").Name("register")
	authSubrouter.
		HandleFunc("/me", handler.handleMe).
		Methods("GET", "OPTIONS").Name("me")

	// rate limit the credential endpoints to prevent abuse
	authSubrouter.Use(middleware.RateLimit(rateLimiter, "auth", loginAllowedPerMin, handler.metricsManager))
	authSubrouter.Use(middleware.Cors())
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	email, password, _, ok := credentialsFromRequest(w, r)
	if !ok {
		return
	}

	token, user, err := handler.authService.Login(ctx, email, password, time.Now())
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			log.Tracef("failed login attempt for: %s", email)
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login failed: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterLogins.Inc()
	}

	log.Tracef("new login success: %s", user.ID)
	writeUserResponse(w, token, user)
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := r.Header.Get("X-LIFTLOG-TOKEN")
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.authService.Logout(ctx, authToken); err != nil {
		log.Errorf("logout for [%s...]: %s", authToken[:min(6, len(authToken))], err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.register")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	email, password, username, ok := credentialsFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := handler.authService.Register(ctx, email, password, username)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			http.Error(w, "error, email already registered", http.StatusConflict)
			return
		}
		log.Errorf("register failed: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	// registering does not log the user in, the app follows up with a login
	log.Tracef("new profile registered: %s", profile.ID)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"id": "%s"}`, profile.ID))
}

// handleMe resolves the session token to the current identity. The app calls
// it on startup to restore a session.
func (handler *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.me")
	defer span.End()

	authToken := r.Header.Get("X-LIFTLOG-TOKEN")
	user, err := handler.authService.ResolveSession(ctx, authToken)
	if err != nil {
		log.Errorf("resolve session: %s", err)
		http.Error(w, "session check failed", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	writeUserResponse(w, authToken, user)
}

func credentialsFromRequest(w http.ResponseWriter, r *http.Request) (email, password, username string, ok bool) {
	type credentialsRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Username string `json:"username"`
	}

	var req credentialsRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("auth, unmarshal json params: %s", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return "", "", "", false
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("auth, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return "", "", "", false
		}
		req = credentialsRequest{
			Email:    r.Form.Get("email"),
			Password: r.Form.Get("password"),
			Username: r.Form.Get("username"),
		}
	}

	if req.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return "", "", "", false
	}
	if req.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return "", "", "", false
	}

	return req.Email, req.Password, req.Username, true
}

func writeUserResponse(w http.ResponseWriter, token string, user interface{}) {
	respBytes, err := json.Marshal(struct {
		Token string      `json:"token"`
		User  interface{} `json:"user"`
	}{Token: token, User: user})
	if err != nil {
		log.Errorf("marshal auth response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}
