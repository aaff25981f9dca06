package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
	"github.com/khangai-labs/khuvaari-cli/internal/core/ports/driving"
	"github.com/khangai-labs/khuvaari-cli/internal/logger"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Server renders the timetable as HTML and JSON.
type Server struct {
	svc       driving.TimetableService
	templates *template.Template
	handler   http.Handler
}

// NewServer builds the HTTP surface. The rate limit is applied per
// client IP; limit is requests per second, burst the bucket size.
func NewServer(svc driving.TimetableService, limit float64, burst int) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{svc: svc, templates: tmpl}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /class", s.handleClass)
	mux.HandleFunc("GET /teacher", s.handleTeacher)
	mux.HandleFunc("GET /api/class/{name}", s.handleAPIClass)
	mux.HandleFunc("GET /api/teacher/{name}", s.handleAPITeacher)
	mux.HandleFunc("GET /api/names", s.handleAPINames)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.handler = rateLimit(mux, limit, burst)
	return s, nil
}

// Handler returns the root handler, rate limiting included. Exposed
// for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves HTTP on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

// indexView feeds the front page: classes grouped by school, plus the
// flat teacher list.
type indexView struct {
	Schools       []string
	SchoolClasses map[string][]string
	Teachers      []string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := indexView{
		Schools:       s.svc.Schools(),
		SchoolClasses: map[string][]string{},
		Teachers:      s.svc.TeacherNames(),
	}
	for _, school := range view.Schools {
		view.SchoolClasses[school] = s.svc.SchoolClasses(school)
	}
	s.render(w, "index.html.tmpl", view)
}

// gridView is a SectionGrid pre-arranged for row-major template
// iteration, one row per period.
type gridView struct {
	Title string
	Week  domain.Week
	Days  []string
	Rows  []gridRow

	// BackKind selects the query parameter for the week toggle links.
	BackKind string
	Name     string
}

type gridRow struct {
	Period  string
	Entries []domain.Entry
}

func newGridView(grid domain.SectionGrid, week domain.Week, kind string) gridView {
	matrix := grid.Odd
	if week == domain.WeekEven {
		matrix = grid.Even
	}
	view := gridView{
		Title:    grid.Name,
		Week:     week,
		Days:     grid.Days,
		BackKind: kind,
		Name:     grid.Name,
	}
	for i, period := range grid.Periods {
		view.Rows = append(view.Rows, gridRow{Period: period, Entries: matrix[i]})
	}
	return view
}

func (s *Server) handleClass(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("class_name")
	week, _ := domain.ParseWeek(r.URL.Query().Get("week"))

	grid, err := s.svc.Class(name)
	if err != nil {
		s.lookupError(w, name, err)
		return
	}
	s.render(w, "grid.html.tmpl", newGridView(grid, week, "class"))
}

func (s *Server) handleTeacher(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("teacher_name")
	week, _ := domain.ParseWeek(r.URL.Query().Get("week"))

	grid, err := s.svc.Teacher(name)
	if err != nil {
		s.lookupError(w, name, err)
		return
	}
	s.render(w, "grid.html.tmpl", newGridView(grid, week, "teacher"))
}

func (s *Server) handleAPIClass(w http.ResponseWriter, r *http.Request) {
	grid, err := s.svc.Class(r.PathValue("name"))
	if err != nil {
		s.jsonError(w, err)
		return
	}
	s.writeJSON(w, grid)
}

func (s *Server) handleAPITeacher(w http.ResponseWriter, r *http.Request) {
	grid, err := s.svc.Teacher(r.PathValue("name"))
	if err != nil {
		s.jsonError(w, err)
		return
	}
	s.writeJSON(w, grid)
}

func (s *Server) handleAPINames(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{
		"classes":  s.svc.ClassNames(),
		"teachers": s.svc.TeacherNames(),
		"schools":  s.svc.Schools(),
		"days":     s.svc.Days(),
		"periods":  s.svc.Periods(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if len(s.svc.Days()) == 0 {
		http.Error(w, "not loaded", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Warn("rendering %s: %v", name, err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encoding response: %v", err)
	}
}

func (s *Server) lookupError(w http.ResponseWriter, name string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, fmt.Sprintf("unknown name: %s", name), http.StatusNotFound)
	case errors.Is(err, domain.ErrNotLoaded):
		http.Error(w, "timetable not loaded", http.StatusServiceUnavailable)
	default:
		logger.Warn("lookup failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) jsonError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNotLoaded):
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}) //nolint:errcheck
}
