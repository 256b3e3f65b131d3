// main.go
// Builds the anagram DAG from a frequency-list dictionary and serializes it
// to a binary blob, for bundling as a pre-built index instead of rebuilding
// it at every process startup.

package main

import (
	"flag"
	"fmt"
	"os"

	wordscapes "github.com/SpaceEraser/wordscapes-helper"
)

func main() {
	dictPath := flag.String("dict", "", "path to a frequency-list dictionary (defaults to the embedded wordlist)")
	outPath := flag.String("out", "dag.bin", "path to write the serialized DAG to")
	flag.Parse()

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

	dag := wordscapes.NewDAGSearcher(wordmap)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %q: %v\n", *outPath, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := dag.Serialize(f); err != nil {
		fmt.Fprintf(os.Stderr, "serializing DAG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Serialized DAG to %q\n", *outPath)
}
