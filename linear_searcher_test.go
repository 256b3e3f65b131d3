package wordscapes

import "testing"

func TestLinearSearcherLookup(t *testing.T) {
	s := NewLinearSearcher(smallWordmap(t))
	got := wordTexts(s.Lookup("angryi"))
	want := []string{"any", "gain", "grin", "rain", "ran", "rang", "ring"}
	if len(got) != len(want) {
		t.Fatalf("Lookup(\"angryi\") = %v, want %v", got, want)
	}
}

func TestFindClosestIndexKeyClampsToLongestBucket(t *testing.T) {
	s := NewLinearSearcher(smallWordmap(t))
	longest := 0
	for k := range s.lengthInd {
		if k > longest {
			longest = k
		}
	}
	if got := s.findClosestIndexKey(longest + 100); got != longest {
		t.Errorf("findClosestIndexKey(longest+100) = %d, want %d (clamped)", got, longest)
	}
}

func TestLinearSearcherLookupLongerThanAnyWord(t *testing.T) {
	s := NewLinearSearcher(smallWordmap(t))
	// A query far longer than any dictionary entry must not panic, and
	// must still find every word whose multiset fits inside it.
	got := wordTexts(s.Lookup("angryizzzzzzzzz"))
	found := false
	for _, w := range got {
		if w == "rain" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an oversized query to still find \"rain\", got %v", got)
	}
}
