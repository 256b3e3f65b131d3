package wordscapes

import (
	"strings"
	"testing"
)

func TestLoadDictionaryGroupsAnagrams(t *testing.T) {
	wordmap, err := LoadDictionary(strings.NewReader("cat 10\nact 20\ntac 30\n"))
	if err != nil {
		t.Fatalf("LoadDictionary returned error: %v", err)
	}
	words := wordmap[FromString("cat")]
	if len(words) != 3 {
		t.Fatalf("expected 3 anagrams grouped under one multiset, got %d: %v", len(words), words)
	}
}

func TestLoadDictionaryNormalizesAndFilters(t *testing.T) {
	wordmap, err := LoadDictionary(strings.NewReader("C-A-T 5\nHi 1\nDog! 2\n"))
	if err != nil {
		t.Fatalf("LoadDictionary returned error: %v", err)
	}
	if _, ok := wordmap[FromString("cat")]; !ok {
		t.Errorf("expected normalized 'cat' to be present")
	}
	if _, ok := wordmap[FromString("hi")]; ok {
		t.Errorf("expected 'hi' to be dropped for being shorter than MinWordLength")
	}
	if _, ok := wordmap[FromString("dog")]; !ok {
		t.Errorf("expected normalized 'dog' to be present")
	}
}

func TestLoadDictionaryIgnoresBlankLines(t *testing.T) {
	wordmap, err := LoadDictionary(strings.NewReader("cat 1\n\n   \ndog 2\n"))
	if err != nil {
		t.Fatalf("LoadDictionary returned error: %v", err)
	}
	if len(wordmap) != 2 {
		t.Fatalf("expected 2 multisets, got %d", len(wordmap))
	}
}

func TestLoadDictionaryPanicsOnMissingFrequency(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for a missing frequency token")
		}
	}()
	LoadDictionary(strings.NewReader("cat\n"))
}

func TestLoadDictionaryPanicsOnNonIntegerFrequency(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for a non-integer frequency token")
		}
	}()
	LoadDictionary(strings.NewReader("cat notanumber\n"))
}

func TestEmbeddedWordlistLoads(t *testing.T) {
	wordmap, err := EmbeddedWordlist()
	if err != nil {
		t.Fatalf("EmbeddedWordlist returned error: %v", err)
	}
	if len(wordmap) == 0 {
		t.Fatalf("expected a non-empty embedded wordlist")
	}
	for m := range wordmap {
		for _, c := range m.CharCounts() {
			if c > MaxRep {
				t.Errorf("embedded wordlist contains a letter repeated more than MaxRep times")
			}
		}
	}
}
