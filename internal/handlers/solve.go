package handlers

import (
	"bytes"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/smolin/sudoku-server/internal/sudoku"
)

// DefaultLimit caps the solutions a single request may collect. Sparse
// puzzles admit astronomically many completions, so an uncapped response
// could never finish.
const DefaultLimit = 100

type SolveHandler struct {
	log      *logrus.Logger
	dec      *schema.Decoder
	upgrader websocket.Upgrader
}

func NewSolveHandler(log *logrus.Logger) *SolveHandler {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return &SolveHandler{
		log: log,
		dec: dec,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

type SolveParams struct {
	Limit int `schema:"limit"`
}

type SolveResult struct {
	Count     int       `json:"count"`
	Truncated bool      `json:"truncated"`
	Solutions [][][]int `json:"solutions"`
}

// solutionRows renders a solution 1-indexed for the wire.
func solutionRows(s sudoku.Solution) [][]int {
	rows := make([][]int, sudoku.N)
	for i := range rows {
		row := make([]int, sudoku.N)
		for j := range row {
			row[j] = int(s[i][j]) + 1
		}
		rows[i] = row
	}
	return rows
}

// Solve reads a puzzle in the plain text format from the request body and
// replies with every completion, up to the limit query parameter.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	params := SolveParams{Limit: DefaultLimit}
	if err := h.dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}
	if params.Limit <= 0 || params.Limit > DefaultLimit {
		params.Limit = DefaultLimit
	}

	puzzle, err := sudoku.ParsePuzzle(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	result := SolveResult{Solutions: [][][]int{}}
	sudoku.ForEachSolution(puzzle, func(s sudoku.Solution) bool {
		if len(result.Solutions) == params.Limit {
			result.Truncated = true
			return false
		}
		result.Solutions = append(result.Solutions, solutionRows(s))
		return true
	})
	result.Count = len(result.Solutions)

	h.log.WithFields(logrus.Fields{
		"count":     result.Count,
		"truncated": result.Truncated,
	}).Info("solved puzzle")

	sendJSONOrLog(w, h.log, result)
}

type wsSolution struct {
	Solution [][]int `json:"solution"`
}

type wsSummary struct {
	Count     int  `json:"count"`
	Truncated bool `json:"truncated"`
}

// ConnectWS upgrades to a WebSocket and treats every received text message
// as a puzzle, streaming one message per solution as the search finds them
// and a summary once it is done. A limit query parameter of 0 means
// exhaustive.
func (h *SolveHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	var params SolveParams
	if err := h.dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	c, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("upgrade: ", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				h.log.Warn("read: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		puzzle, err := sudoku.ParsePuzzle(bytes.NewReader(message))
		if err != nil {
			if err := c.WriteJSON(wrapError(err)); err != nil {
				h.log.Error("write: ", err)
				return
			}
			continue
		}

		summary := wsSummary{}
		dead := false
		sudoku.ForEachSolution(puzzle, func(s sudoku.Solution) bool {
			if params.Limit > 0 && summary.Count == params.Limit {
				summary.Truncated = true
				return false
			}
			if err := c.WriteJSON(wsSolution{solutionRows(s)}); err != nil {
				h.log.Error("write: ", err)
				dead = true
				return false
			}
			summary.Count++
			return true
		})
		if dead {
			return
		}
		if err := c.WriteJSON(summary); err != nil {
			h.log.Error("write: ", err)
			return
		}
	}
}
