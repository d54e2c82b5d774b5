package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/smolin/sudoku-server/internal/sudoku"
)

// runInteractive reads puzzles row by row. Nine rows make a puzzle and are
// solved on the spot; "clear" (or Ctrl-C) drops the rows entered so far.
func runInteractive() int {
	rl, err := readline.New("")
	if err != nil {
		log.Error("unable to start interactive mode: ", err)
		return 1
	}
	defer rl.Close()

	var rows []string
	for {
		rl.SetPrompt(fmt.Sprintf("row %d> ", len(rows)+1))
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			rows = rows[:0]
			continue
		} else if err != nil { // io.EOF
			return 0
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "quit", "exit":
			return 0
		case "clear":
			rows = rows[:0]
			continue
		}

		rows = append(rows, line)
		if len(rows) < sudoku.N {
			continue
		}

		puzzle, err := sudoku.ParsePuzzle(strings.NewReader(strings.Join(rows, "\n")))
		rows = rows[:0]
		if err != nil {
			log.Error("bad puzzle: ", err)
			continue
		}
		if solveAndPrint(os.Stdout, puzzle, maxCount) == 0 {
			log.Error("no solutions")
		}
	}
}
