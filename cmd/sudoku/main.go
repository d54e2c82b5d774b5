package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/smolin/sudoku-server/internal/sudoku"
)

var log = logrus.New()

var (
	inputPath   string
	maxCount    int
	interactive bool
	profiling   bool
	verbose     bool
)

func init() {
	flag.StringVar(&inputPath, "f", "", "read the puzzle from `file` instead of stdin")
	flag.IntVar(&maxCount, "n", 0, "stop after `count` solutions (0 = all)")
	flag.BoolVar(&interactive, "i", false, "interactive mode: enter puzzles row by row")
	flag.BoolVar(&profiling, "profile", false, "write a CPU profile to the working directory")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func main() {
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	os.Exit(run())
}

func run() int {
	if profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if interactive {
		return runInteractive()
	}

	in := io.Reader(os.Stdin)
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			log.Error("unable to open puzzle: ", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	puzzle, err := sudoku.ParsePuzzle(in)
	if err != nil {
		log.Error("unable to parse puzzle: ", err)
		return 1
	}

	if solveAndPrint(os.Stdout, puzzle, maxCount) == 0 {
		log.Error("no solutions")
		return 1
	}
	return 0
}

// solveAndPrint writes every solution of p to w, blank-line separated, and
// reports how many there were. A positive limit cuts the search short.
func solveAndPrint(w io.Writer, p sudoku.Puzzle, limit int) (count int) {
	start := time.Now()
	sudoku.ForEachSolution(p, func(s sudoku.Solution) bool {
		if count > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, s.String())
		count++
		return limit == 0 || count < limit
	})
	log.WithFields(logrus.Fields{
		"solutions": count,
		"duration":  time.Since(start).String(),
	}).Debug("search finished")
	return count
}
