// main.go
// Example command for exercising the wordscapes module: looks up every
// dictionary word whose letters fit within a bag of tiles, optionally
// constrained by a position filter.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	wordscapes "github.com/SpaceEraser/wordscapes-helper"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "no .env file loaded: %v\n", err)
	}

	tiles := flag.String("tiles", "", "letters available for the lookup (required)")
	pattern := flag.String("filter", "", "position filter pattern, e.g. 'b__s'")
	dictPath := flag.String("dict", os.Getenv("WORDSCAPES_DICT"), "path to a frequency-list dictionary (defaults to WORDSCAPES_DICT, or the embedded wordlist)")
	index := flag.String("index", "dag", "index to query: dag, linear, trie or subset")
	flag.Parse()

	if *tiles == "" {
		fmt.Fprintln(os.Stderr, "missing required -tiles flag")
		flag.Usage()
		os.Exit(1)
	}

	var searcher wordscapes.Searcher
	if *dictPath == "" && *index == "dag" {
		searcher = wordscapes.DefaultSearcher()
	} else {
		var wordmap map[wordscapes.Multiset][]wordscapes.Word
		var err error
		if *dictPath == "" {
			wordmap, err = wordscapes.EmbeddedWordlist()
		} else {
			wordmap, err = wordscapes.LoadDictionaryFile(*dictPath)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading dictionary: %v\n", err)
			os.Exit(1)
		}
		searcher = buildIndex(*index, wordmap)
	}

	words := searcher.LookupFilter(*tiles, *pattern)
	for _, w := range words {
		fmt.Printf("%s\t%d\n", w.Text, w.Frequency)
	}
}

func buildIndex(name string, wordmap map[wordscapes.Multiset][]wordscapes.Word) wordscapes.Searcher {
	switch name {
	case "linear":
		return wordscapes.NewLinearSearcher(wordmap)
	case "trie":
		return wordscapes.NewTrieSearcher(wordmap)
	case "subset":
		return wordscapes.NewSubsetSearcher(wordmap)
	default:
		return wordscapes.NewDAGSearcher(wordmap)
	}
}
