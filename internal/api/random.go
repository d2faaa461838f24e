package api

import (
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/pdrpinto/gridpath"
)

// RandomGridResponse is a generated grid plus free source and target cells.
type RandomGridResponse struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Walls  []int  `json:"walls"`
	Source [2]int `json:"source"`
	Target [2]int `json:"target"`
	Seed   uint64 `json:"seed"`
}

// genWalls drops clustered walls along random walks, never on start or goal.
func genWalls(r *rand.Rand, w, h, clusters, steps int, density float64, start, goal gridpath.Cell) []gridpath.Cell {
	walls := map[gridpath.Cell]bool{}
	var ordered []gridpath.Cell
	moves := []gridpath.Cell{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	for c := 0; c < clusters; c++ {
		p := gridpath.Cell{X: r.IntN(w), Y: r.IntN(h)}
		for s := 0; s < steps; s++ {
			if r.Float64() < density && p != start && p != goal && !walls[p] {
				walls[p] = true
				ordered = append(ordered, p)
			}
			d := moves[r.IntN(len(moves))]
			np := gridpath.Cell{X: p.X + d.X, Y: p.Y + d.Y}
			if np.X >= 0 && np.X < w && np.Y >= 0 && np.Y < h {
				p = np
			}
		}
	}
	return ordered
}

func queryInt(r *http.Request, key string, def, lo, hi int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil && v >= lo && v <= hi {
		return v
	}
	return def
}

// handleRandom builds a random clustered grid. The same seed always yields
// the same grid.
func (h *handlers) handleRandom(w http.ResponseWriter, r *http.Request) {
	width := queryInt(r, "w", 40, 2, 1024)
	height := queryInt(r, "h", 24, 2, 1024)
	if width > h.limits.MaxCells/height {
		RecordRejected("too_large")
		http.Error(w, "grid too large", http.StatusRequestEntityTooLarge)
		return
	}
	clusters := queryInt(r, "clusters", 8, 0, 1000)
	steps := queryInt(r, "steps", 200, 0, 100000)
	density := 0.25
	if v, err := strconv.ParseFloat(r.URL.Query().Get("density"), 64); err == nil && v >= 0 && v <= 1 {
		density = v
	}
	seed := uint64(time.Now().UnixNano())
	if v, err := strconv.ParseUint(r.URL.Query().Get("seed"), 10, 64); err == nil {
		seed = v
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var start, goal gridpath.Cell
	for {
		start = gridpath.Cell{X: rng.IntN(width), Y: rng.IntN(height)}
		goal = gridpath.Cell{X: rng.IntN(width), Y: rng.IntN(height)}
		if start != goal {
			break
		}
	}
	walls := genWalls(rng, width, height, clusters, steps, density, start, goal)

	writeJSON(w, http.StatusOK, RandomGridResponse{
		Width:  width,
		Height: height,
		Walls:  gridpath.FlattenCells(walls),
		Source: [2]int{start.X, start.Y},
		Target: [2]int{goal.X, goal.Y},
		Seed:   seed,
	})
}
