// main.go
// Example command for exercising the wordscapes module's board solver: reads
// a grid from a file (or stdin) and prints the first N solutions.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	wordscapes "github.com/SpaceEraser/wordscapes-helper"
)

// defaultMaxSolutions returns WORDSCAPES_MAX_SOLUTIONS if it's set and
// parses as a positive int, else 1.
func defaultMaxSolutions() int {
	if v := os.Getenv("WORDSCAPES_MAX_SOLUTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 1
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "no .env file loaded: %v\n", err)
	}

	tiles := flag.String("tiles", "", "letters available to fill the board (required)")
	gridPath := flag.String("grid", "", "path to a board grid file (defaults to stdin)")
	dictPath := flag.String("dict", os.Getenv("WORDSCAPES_DICT"), "path to a frequency-list dictionary (defaults to WORDSCAPES_DICT, or the embedded wordlist)")
	n := flag.Int("n", defaultMaxSolutions(), "number of solutions to print (defaults to WORDSCAPES_MAX_SOLUTIONS, or 1)")
	flag.Parse()

	if *tiles == "" {
		fmt.Fprintln(os.Stderr, "missing required -tiles flag")
		flag.Usage()
		os.Exit(1)
	}

	grid, err := readGrid(*gridPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading grid: %v\n", err)
		os.Exit(1)
	}

	searcher, err := buildSearcher(*dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading dictionary: %v\n", err)
		os.Exit(1)
	}

	solver := wordscapes.NewBoardSolver(searcher, *tiles, grid)
	solutions := solver.FirstNSolutions(*n)
	if len(solutions) == 0 {
		fmt.Println("no solutions found")
		return
	}
	for i, sol := range solutions {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(sol.String())
	}
}

func buildSearcher(dictPath string) (wordscapes.Searcher, error) {
	if dictPath == "" {
		return wordscapes.DefaultSearcher(), nil
	}
	wordmap, err := wordscapes.LoadDictionaryFile(dictPath)
	if err != nil {
		return nil, err
	}
	return wordscapes.NewDAGSearcher(wordmap), nil
}

func readGrid(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
