package ui

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gosaju/app"
	"gosaju/internal/errors"
	"gosaju/models"
)

// App is the minimal chi surface: chart analysis only, no billing and
// no persistence. It backs the standalone api binary.
type App struct {
	router   *chi.Mux
	analysis *app.AnalysisService
	now      func() time.Time
}

// NewApp creates the minimal API application
func NewApp(analysis *app.AnalysisService) *App {
	a := &App{
		router:   chi.NewRouter(),
		analysis: analysis,
		now:      time.Now,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)
	a.router.Post("/v1/analyze", a.handleAnalyze)
}

// ServeHTTP makes App an http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

func (a *App) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	a.writeJSON(w, statusFor(err), map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input models.BirthInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		a.writeError(w, errors.InvalidInput("invalid request body"))
		return
	}

	analysis, err := a.analysis.Analyze(r.Context(), input, a.now())
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, analysis)
}
