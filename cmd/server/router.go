package main

import (
	"net/http"

	"github.com/smolin/sudoku-server/internal/handlers"
	"github.com/smolin/sudoku-server/internal/middleware"
)

func buildHandler() http.Handler {
	mux := http.NewServeMux()

	solve := handlers.NewSolveHandler(log)

	mux.HandleFunc("GET /v1/status", handleStatus)
	mux.HandleFunc("POST /v1/solve", solve.Solve)
	mux.HandleFunc("GET /v1/solve/connect", solve.ConnectWS)

	return middleware.Wrap(mux,
		middleware.Cors(),
		middleware.Logging(log),
	)
}

func handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
