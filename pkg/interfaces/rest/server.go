package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/rackline/stockboard/pkg/application/services"
	csvrepo "github.com/rackline/stockboard/pkg/infrastructure/repositories/csv"
)

// Server wraps the mux router and the stock service. It is the HTTP
// surface consumed by the stock board front end.
type Server struct {
	*mux.Router
	stock    *services.StockService
	loader   *csvrepo.Loader
	exporter *csvrepo.Exporter
	logger   zerolog.Logger
}

// NewServer creates an HTTP server with all routes registered
func NewServer(stock *services.StockService, logger zerolog.Logger) *Server {
	s := &Server{
		Router:   mux.NewRouter(),
		stock:    stock,
		loader:   csvrepo.NewLoader(),
		exporter: csvrepo.NewExporter(),
		logger:   logger,
	}

	s.Use(s.logRequests)

	s.HandleFunc("/health", s.health).Methods("GET")

	api := s.PathPrefix("/api").Subrouter()
	api.HandleFunc("/movements", s.applyMovement).Methods("POST")
	api.HandleFunc("/racks", s.listRacks).Methods("GET")
	api.HandleFunc("/racks/{rack}/cells", s.listRackGrid).Methods("GET")
	api.HandleFunc("/racks/{rack}/cells/{cell}", s.getCell).Methods("GET")
	api.HandleFunc("/parts", s.listParts).Methods("GET")
	api.HandleFunc("/parts/import", s.importParts).Methods("POST")
	api.HandleFunc("/parts/{part}", s.upsertPart).Methods("PUT")
	api.HandleFunc("/fifo/{part}", s.findFIFO).Methods("GET")
	api.HandleFunc("/history", s.listHistory).Methods("GET")
	api.HandleFunc("/summary", s.summary).Methods("GET")
	api.HandleFunc("/export/grid", s.exportGrid).Methods("GET")
	api.HandleFunc("/export/parts", s.exportParts).Methods("GET")
	api.HandleFunc("/export/history", s.exportHistory).Methods("GET")

	return s
}

func (s *Server) health(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// logRequests records method, path, status and duration for every call
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, req)
		s.logger.Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", recorder.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends a JSON error body
func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
