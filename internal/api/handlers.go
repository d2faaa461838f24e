package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/config"
	"github.com/pdrpinto/gridpath/internal/imaging"
)

const (
	maxBodyBytes   = 4 << 20
	maxImagePixels = 16 << 20
)

type handlers struct {
	limits   config.LimitsConfig
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// GridRequest describes a grid as width, height and a flat x,y wall list.
type GridRequest struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Walls  []int `json:"walls"`
}

// PathRequest asks for one path.
type PathRequest struct {
	GridRequest
	Source [2]int `json:"source"`
	Target [2]int `json:"target"`
}

// PathResponse carries the path as flat x,y pairs from target to source.
type PathResponse struct {
	Path     []int   `json:"path"`
	Cost     float64 `json:"cost"`
	Expanded int     `json:"expanded"`
	Found    bool    `json:"found"`
	Error    string  `json:"error,omitempty"`
}

// BatchQuery is one source/target pair of a batch.
type BatchQuery struct {
	Source [2]int `json:"source"`
	Target [2]int `json:"target"`
}

// BatchRequest runs many queries on one grid.
type BatchRequest struct {
	GridRequest
	Queries []BatchQuery `json:"queries"`
}

// BatchResponse keeps the order of the request's queries.
type BatchResponse struct {
	Results []PathResponse `json:"results"`
}

// DemoResponse describes the built-in demo grid.
type DemoResponse struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Walls  []int `json:"walls"`
}

func cellOf(p [2]int) gridpath.Cell { return gridpath.Cell{X: p[0], Y: p[1]} }

// buildGrid enforces the configured area limit before allocating anything.
func (h *handlers) buildGrid(req GridRequest) (*gridpath.Grid, int, error) {
	if req.Width > 0 && req.Height > 0 && req.Width > h.limits.MaxCells/req.Height {
		RecordRejected("too_large")
		return nil, http.StatusRequestEntityTooLarge,
			fmt.Errorf("grid %dx%d exceeds %d cells", req.Width, req.Height, h.limits.MaxCells)
	}
	grid, err := gridpath.NewGridFromPairs(req.Width, req.Height, req.Walls)
	if err != nil {
		RecordRejected("bad_request")
		return nil, http.StatusBadRequest, err
	}
	return grid, http.StatusOK, nil
}

func (h *handlers) searchOptions() []gridpath.Option {
	return []gridpath.Option{
		gridpath.WithMaxExpansions(h.limits.MaxExpansions),
		gridpath.WithWorkers(h.limits.Workers),
		gridpath.WithLogger(h.logger),
	}
}

// outcome names a search error for metrics and picks its HTTP status.
func outcome(err error) (string, int) {
	switch {
	case err == nil:
		return "found", http.StatusOK
	case errors.Is(err, gridpath.ErrNoPathFound):
		return "no_path", http.StatusUnprocessableEntity
	case errors.Is(err, gridpath.ErrConfiguration):
		return "invalid", http.StatusBadRequest
	case errors.Is(err, gridpath.ErrBudgetExceeded):
		return "budget", http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled", http.StatusServiceUnavailable
	default:
		return "error", http.StatusInternalServerError
	}
}

func toResponse(result gridpath.Result, err error) PathResponse {
	resp := PathResponse{
		Path:     gridpath.FlattenCells(result.Path),
		Cost:     result.TotalCost,
		Expanded: result.ExpandedNodes,
		Found:    result.Found,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

func (h *handlers) search(ctx context.Context, grid *gridpath.Grid, source, target gridpath.Cell) (gridpath.Result, error) {
	start := time.Now()
	result, err := gridpath.Search(ctx, grid, source, target, h.searchOptions()...)
	name, _ := outcome(err)
	RecordSearch(name, result.ExpandedNodes)
	RecordSearchDuration(time.Since(start))
	return result, err
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		RecordRejected("bad_request")
		writeJSON(w, http.StatusBadRequest, PathResponse{Path: []int{}, Error: "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *handlers) handleDemo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DemoResponse{
		Width:  gridpath.DemoWidth,
		Height: gridpath.DemoHeight,
		Walls:  gridpath.DemoWalls(),
	})
}

func (h *handlers) handlePath(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	grid, status, err := h.buildGrid(req.GridRequest)
	if err != nil {
		writeJSON(w, status, PathResponse{Path: []int{}, Error: err.Error()})
		return
	}

	result, err := h.search(r.Context(), grid, cellOf(req.Source), cellOf(req.Target))
	_, status = outcome(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("search failed",
			"request_id", middleware.GetReqID(r.Context()), "err", err)
	}
	writeJSON(w, status, toResponse(result, err))
}

func (h *handlers) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Queries) > h.limits.MaxQueries {
		RecordRejected("too_large")
		writeJSON(w, http.StatusRequestEntityTooLarge, BatchResponse{Results: []PathResponse{}})
		return
	}
	grid, status, err := h.buildGrid(req.GridRequest)
	if err != nil {
		writeJSON(w, status, PathResponse{Path: []int{}, Error: err.Error()})
		return
	}

	queries := make([]gridpath.Query, len(req.Queries))
	for i, q := range req.Queries {
		queries[i] = gridpath.Query{Source: cellOf(q.Source), Target: cellOf(q.Target)}
	}
	start := time.Now()
	results, err := gridpath.SearchAll(r.Context(), grid, queries, h.searchOptions()...)
	if err != nil {
		_, status := outcome(err)
		writeJSON(w, status, BatchResponse{Results: []PathResponse{}})
		return
	}

	resp := BatchResponse{Results: make([]PathResponse, len(results))}
	for i, qr := range results {
		name, _ := outcome(qr.Err)
		RecordSearch(name, qr.Result.ExpandedNodes)
		resp.Results[i] = toResponse(qr.Result, qr.Err)
	}
	h.logger.Debug("batch finished",
		"request_id", middleware.GetReqID(r.Context()),
		"queries", len(queries), "duration", time.Since(start))
	writeJSON(w, http.StatusOK, resp)
}

// handlePathPNG renders the grid and, when one exists, the path.
// The X-Path-Found header tells the two cases apart.
func (h *handlers) handlePathPNG(w http.ResponseWriter, r *http.Request) {
	cellSize := 16
	if v := r.URL.Query().Get("cell"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > imaging.MaxCellSize {
			RecordRejected("bad_request")
			http.Error(w, "cell must be between 1 and "+strconv.Itoa(imaging.MaxCellSize), http.StatusBadRequest)
			return
		}
		cellSize = n
	}

	var req PathRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	grid, status, err := h.buildGrid(req.GridRequest)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}
	if grid.Width()*grid.Height()*cellSize*cellSize > maxImagePixels {
		RecordRejected("too_large")
		http.Error(w, "image too large", http.StatusRequestEntityTooLarge)
		return
	}

	result, err := h.search(r.Context(), grid, cellOf(req.Source), cellOf(req.Target))
	if name, status := outcome(err); name != "found" && name != "no_path" {
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Path-Found", strconv.FormatBool(result.Found))
	if err := imaging.RenderPNG(w, grid, result.Path, cellSize); err != nil {
		h.logger.Error("png render failed",
			"request_id", middleware.GetReqID(r.Context()), "err", err)
	}
}
