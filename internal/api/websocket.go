package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/pdrpinto/gridpath"
)

const (
	stepWriteWait = 10 * time.Second
	stepReadWait  = 30 * time.Second
	maxStepDelay  = time.Second
)

// StepMessage is one frame of a step session. Coordinates are x,y pairs;
// Path is flat like PathResponse.Path.
type StepMessage struct {
	Session  string   `json:"session"`
	Step     int      `json:"step"`
	Current  [2]int   `json:"current"`
	Open     [][2]int `json:"open,omitempty"`
	Closed   [][2]int `json:"closed,omitempty"`
	Done     bool     `json:"done"`
	Found    bool     `json:"found"`
	Path     []int    `json:"path,omitempty"`
	Cost     float64  `json:"cost,omitempty"`
	Error    string   `json:"error,omitempty"`
	Estimate float64  `json:"estimate,omitempty"`
}

func pairsOf(cells []gridpath.Cell) [][2]int {
	if len(cells) == 0 {
		return nil
	}
	out := make([][2]int, len(cells))
	for i, c := range cells {
		out[i] = [2]int{c.X, c.Y}
	}
	return out
}

// handleSteps upgrades to a websocket, reads one PathRequest and streams a
// StepMessage per expansion until the search ends. The optional delay query
// parameter (milliseconds) paces the frames for visualisation.
func (h *handlers) handleSteps(w http.ResponseWriter, r *http.Request) {
	var delay time.Duration
	if v := r.URL.Query().Get("delay"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			RecordRejected("bad_request")
			http.Error(w, "delay must be a non-negative number of milliseconds", http.StatusBadRequest)
			return
		}
		delay = min(time.Duration(ms)*time.Millisecond, maxStepDelay)
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	stepSessionsActive.Inc()
	defer stepSessionsActive.Dec()
	logger := h.logger.With("session", session)
	logger.Info("step session opened", "remote", clientIP(r))

	conn.SetReadLimit(maxBodyBytes)
	_ = conn.SetReadDeadline(time.Now().Add(stepReadWait))
	var req PathRequest
	if err := conn.ReadJSON(&req); err != nil {
		logger.Warn("step session request unreadable", "err", err)
		h.finish(conn, StepMessage{Session: session, Done: true, Error: "invalid request: " + err.Error()})
		return
	}

	fail := func(err error) {
		h.finish(conn, StepMessage{Session: session, Done: true, Error: err.Error()})
	}
	grid, _, err := h.buildGrid(req.GridRequest)
	if err != nil {
		fail(err)
		return
	}
	// The reader notices the peer going away and stops the stream.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	stepper, err := gridpath.NewStepper(ctx, grid, cellOf(req.Source), cellOf(req.Target),
		gridpath.WithMaxExpansions(h.limits.MaxExpansions),
		gridpath.WithLogger(logger))
	if err != nil {
		RecordSearch("invalid", 0)
		fail(err)
		return
	}
	_ = conn.SetReadDeadline(time.Time{})
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	var ticker *time.Ticker
	if delay > 0 {
		ticker = time.NewTicker(delay)
		defer ticker.Stop()
	}

	start := time.Now()
	for {
		snapshot, stepErr := stepper.Step()
		msg := StepMessage{
			Session:  session,
			Step:     snapshot.StepIndex,
			Current:  [2]int{snapshot.Current.X, snapshot.Current.Y},
			Open:     pairsOf(snapshot.Open),
			Closed:   pairsOf(snapshot.Closed),
			Done:     snapshot.Done,
			Found:    snapshot.Found,
			Estimate: snapshot.CurrentEstimate,
		}
		if snapshot.Found {
			msg.Path = gridpath.FlattenCells(snapshot.Path)
			msg.Cost = snapshot.TotalCost
		}
		if stepErr != nil {
			msg.Error = stepErr.Error()
		}

		if snapshot.Done {
			name, _ := outcome(stepErr)
			RecordSearch(name, snapshot.StepIndex)
			RecordSearchDuration(time.Since(start))
			logger.Info("step session finished",
				"found", snapshot.Found, "steps", snapshot.StepIndex, "cost", snapshot.TotalCost)
			h.finish(conn, msg)
			return
		}
		if err := h.write(conn, msg); err != nil {
			logger.Info("step session aborted", "err", err)
			return
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				logger.Info("step session closed by peer", "steps", snapshot.StepIndex)
				return
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			logger.Info("step session closed by peer", "steps", snapshot.StepIndex)
			return
		}
	}
}

func (h *handlers) write(conn *websocket.Conn, msg StepMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(stepWriteWait))
	if err := conn.WriteJSON(msg); err != nil {
		if !errors.Is(err, websocket.ErrCloseSent) {
			return err
		}
	}
	return nil
}

// finish sends the last frame and a normal close.
func (h *handlers) finish(conn *websocket.Conn, msg StepMessage) {
	if err := h.write(conn, msg); err != nil {
		return
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(stepWriteWait))
}
