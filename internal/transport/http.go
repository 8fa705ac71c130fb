package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vpstudios/backlot/internal/catalog"
	"github.com/vpstudios/backlot/internal/domain/asset"
	"github.com/vpstudios/backlot/internal/domain/credits"
	"github.com/vpstudios/backlot/internal/domain/history"
	"github.com/vpstudios/backlot/internal/domain/submission"
	"github.com/vpstudios/backlot/internal/export"
	"github.com/vpstudios/backlot/internal/storage"
)

// Server wires HTTP handlers over the domain services.
type Server struct {
	submissions *submission.Service
	history     *history.Service
	assets      *asset.Service
	credits     *credits.Service
	catalog     *catalog.Catalog
	files       storage.FileStore
	logger      *slog.Logger
}

// Services bundles the dependencies of the HTTP layer.
type Services struct {
	Submissions *submission.Service
	History     *history.Service
	Assets      *asset.Service
	Credits     *credits.Service
	Catalog     *catalog.Catalog
	Files       storage.FileStore
	Logger      *slog.Logger
}

// NewServer creates the HTTP router with middleware.
func NewServer(deps Services) *chi.Mux {
	srv := &Server{
		submissions: deps.Submissions,
		history:     deps.History,
		assets:      deps.Assets,
		credits:     deps.Credits,
		catalog:     deps.Catalog,
		files:       deps.Files,
		logger:      deps.Logger,
	}
	if srv.logger == nil {
		srv.logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(IdentityMiddleware)

	r.Get("/health", srv.handleHealth)
	r.Get("/api/packages", srv.handlePackages)

	r.Route("/api/submissions", func(r chi.Router) {
		r.Post("/", srv.handleCreateSubmission)
		r.Get("/", srv.handleListSubmissions)
		r.With(RequireRole(RoleAdmin)).Get("/export/csv", srv.handleExportCSV)
		r.Get("/{id}", srv.handleGetSubmission)
		r.Get("/{id}/history", srv.handleSubmissionHistory)
		r.With(RequireRole(RoleAdmin)).Patch("/{id}/status", srv.handleUpdateStatus)
	})

	r.Route("/api/assets", func(r chi.Router) {
		r.Get("/", srv.handleListAssets)
		r.Get("/featured", srv.handleFeaturedAssets)
		r.Get("/category/{category}", srv.handleAssetsByCategory)
		r.Get("/{id}", srv.handleGetAsset)
		r.With(RequireRole(RoleAdmin)).Post("/", srv.handleCreateAsset)
	})

	r.Route("/api/credits", func(r chi.Router) {
		r.Get("/{email}", srv.handleGetCredits)
		r.Post("/{email}/add", srv.handleAddCredits)
	})

	if srv.files != nil {
		r.Post("/api/uploads", srv.handleUpload)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handlePackages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Packages())
}

func (s *Server) handleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be a JSON object")
		return
	}

	in, err := submission.ParseInput(raw, s.catalog)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	sub, err := s.submissions.Create(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := export.Filter{
		Status:  query.Get("status"),
		Package: query.Get("package"),
		Date:    query.Get("date"),
	}

	subs, err := s.listFiltered(r, filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if subs == nil {
		subs = []submission.Submission{}
	}
	writeJSON(w, http.StatusOK, subs)
}

// listFiltered resolves a filter against the store, using the dedicated
// single-dimension queries when possible and in-memory narrowing otherwise.
func (s *Server) listFiltered(r *http.Request, filter export.Filter) ([]submission.Submission, error) {
	ctx := r.Context()
	status := filter.Status
	if status == "all" {
		status = ""
	}
	pkg := filter.Package
	if pkg == "all" {
		pkg = ""
	}

	if status != "" && !submission.ValidStatus(submission.Status(status)) {
		return nil, submission.ErrInvalidStatus
	}

	switch {
	case status != "" && pkg == "" && filter.Date == "":
		return s.submissions.ListByStatus(ctx, submission.Status(status))
	case pkg != "" && status == "" && filter.Date == "":
		return s.submissions.ListByPackage(ctx, pkg)
	default:
		subs, err := s.submissions.List(ctx)
		if err != nil {
			return nil, err
		}
		return filter.Apply(subs), nil
	}
}

func (s *Server) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	sub, err := s.submissions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (s *Server) handleSubmissionHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.submissions.Get(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	entries, err := s.history.ForSubmission(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	sub, err := s.submissions.UpdateStatus(r.Context(), chi.URLParam(r, "id"), submission.Status(req.Status))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := export.Filter{
		Status:  query.Get("status"),
		Package: query.Get("package"),
		Date:    query.Get("date"),
	}

	subs, err := s.listFiltered(r, filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="submissions_export.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.CSV(subs)))
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_upload", "multipart field 'file' is required")
		return
	}
	defer file.Close()

	ref, err := s.files.Store(r.Context(), header.Filename, file)
	if err != nil {
		s.logger.Error("upload failed", "name", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, "upload_failed", "could not store file")
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		storage.Reference
		Type string `json:"type"`
	}{Reference: ref, Type: header.Header.Get("Content-Type")})
}
