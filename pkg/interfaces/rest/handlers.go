package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/rackline/stockboard/pkg/domain/entities"
)

// statusForError maps domain error kinds onto HTTP statuses
func statusForError(err error) int {
	switch {
	case errors.Is(err, entities.ErrOutOfRange), errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrPartMismatch),
		errors.Is(err, entities.ErrCapacityExceeded),
		errors.Is(err, entities.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrInvalidInput),
		errors.Is(err, entities.ErrImport):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type movementRequest struct {
	Rack       string `json:"rack"`
	CellNo     int    `json:"cell"`
	PartNumber string `json:"part_number"`
	Quantity   int    `json:"quantity"`
	Action     string `json:"action"`
	User       string `json:"user"`
}

func (s *Server) applyMovement(w http.ResponseWriter, req *http.Request) {
	var body movementRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	action, err := entities.ParseAction(body.Action)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	entry, err := s.stock.ApplyMovement(
		entities.RackID(body.Rack),
		entities.CellNo(body.CellNo),
		entities.PartNumber(body.PartNumber),
		entities.Quantity(body.Quantity),
		action,
		body.User,
	)
	if err != nil {
		respondError(w, statusForError(err), err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

func (s *Server) listRacks(w http.ResponseWriter, req *http.Request) {
	shapes, err := s.stock.RackShapes()
	if err != nil {
		respondError(w, statusForError(err), err)
		return
	}
	respondJSON(w, http.StatusOK, shapes)
}

func (s *Server) listRackGrid(w http.ResponseWriter, req *http.Request) {
	rackID := entities.RackID(mux.Vars(req)["rack"])

	views, err := s.stock.ListRackGrid(rackID)
	if err != nil {
		respondError(w, statusForError(err), err)
		return
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) getCell(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	rackID := entities.RackID(vars["rack"])

	cellNo, err := strconv.Atoi(vars["cell"])
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("invalid cell number: %s", vars["cell"]))
		return
	}

	view, err := s.stock.GetCell(rackID, entities.CellNo(cellNo))
	if err != nil {
		respondError(w, statusForError(err), err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) listParts(w http.ResponseWriter, req *http.Request) {
	rows, err := s.stock.CatalogSnapshot()
	if err != nil {
		respondError(w, statusForError(err), err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

type partRequest struct {
	WeightKG     float64 `json:"weight_kg"`
	Customer     string  `json:"customer"`
	TubeLengthMM int     `json:"tube_length_mm"`
	User         string  `json:"user"`
}

func (s *Server) upsertPart(w http.ResponseWriter, req *http.Request) {
	partNumber := entities.PartNumber(mux.Vars(req)["part"])

	var body partRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	err := s.stock.UpsertPart(partNumber, decimal.NewFromFloat(body.WeightKG), body.Customer, body.TubeLengthMM, body.User)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"part_number": string(partNumber)})
}

func (s *Server) importParts(w http.ResponseWriter, req *http.Request) {
	parts, err := s.loader.ParseParts(req.Body)
	if err != nil {
		respondError(w, statusForError(err), err)
		return
	}

	count, err := s.stock.BulkUpsertParts(parts, req.URL.Query().Get("user"))
	if err != nil {
		respondError(w, statusForError(err), err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"imported": count})
}

func (s *Server) findFIFO(w http.ResponseWriter, req *http.Request) {
	partNumber := entities.PartNumber(mux.Vars(req)["part"])

	result, err := s.stock.FindFIFO(partNumber)
	if err != nil {
		respondError(w, statusForError(err), err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) listHistory(w http.ResponseWriter, req *http.Request) {
	rows, err := s.stock.HistorySnapshot()
	if err != nil {
		respondError(w, statusForError(err), err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (s *Server) summary(w http.ResponseWriter, req *http.Request) {
	total, err := s.stock.TotalQuantity()
	if err != nil {
		respondError(w, statusForError(err), err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]entities.Quantity{"total_quantity": total})
}

func (s *Server) exportGrid(w http.ResponseWriter, req *http.Request) {
	rows, err := s.stock.GridSnapshot()
	if err != nil {
		respondError(w, statusForError(err), err)
		return
	}

	writeCSVHeaders(w, "grid.csv")
	if err := s.exporter.WriteGrid(w, rows); err != nil {
		s.logger.Error().Err(err).Msg("failed to stream grid export")
	}
}

func (s *Server) exportParts(w http.ResponseWriter, req *http.Request) {
	rows, err := s.stock.CatalogSnapshot()
	if err != nil {
		respondError(w, statusForError(err), err)
		return
	}

	writeCSVHeaders(w, "part_master.csv")
	if err := s.exporter.WriteParts(w, rows); err != nil {
		s.logger.Error().Err(err).Msg("failed to stream parts export")
	}
}

func (s *Server) exportHistory(w http.ResponseWriter, req *http.Request) {
	rows, err := s.stock.HistorySnapshot()
	if err != nil {
		respondError(w, statusForError(err), err)
		return
	}

	writeCSVHeaders(w, "history.csv")
	if err := s.exporter.WriteHistory(w, rows); err != nil {
		s.logger.Error().Err(err).Msg("failed to stream history export")
	}
}

func writeCSVHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
}
