package wordscapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterFixedEndsFreeMiddle(t *testing.T) {
	f := NewFilter("a_c")
	assert.True(t, f.Matches("abc"))
	assert.False(t, f.Matches("abd"))
}

func TestFilterLengthRestricted(t *testing.T) {
	f := NewFilter("3")
	assert.True(t, f.Matches("abc"))
	assert.False(t, f.Matches("abcd"))
}

func TestFilterMixed(t *testing.T) {
	f := NewFilter("b__s")
	assert.True(t, f.Matches("boss"))
	assert.True(t, f.Matches("bass"))
	assert.False(t, f.Matches("boot"))
}

func TestFilterEmptyIsPermissive(t *testing.T) {
	f := NewFilter("")
	for _, w := range []string{"", "a", "abcdef"} {
		assert.True(t, f.Matches(w), "empty filter should match %q", w)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	f := NewFilter("A_C")
	assert.True(t, f.Matches("abc"))
	assert.True(t, f.Matches("ABC"))
}

func TestFilterTokenForms(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		word    string
		matches bool
	}{
		{"dash is free", "b-s", "bus", true},
		{"underscore is free", "b_s", "bus", true},
		{"hash is free", "b#s", "bus", true},
		{"digit run then letters", "2at", "seat", true},
		{"digit run wrong length", "2at", "cat", false},
		{"empty pattern matches empty word", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, NewFilter(tt.pattern).Matches(tt.word))
		})
	}
}

func TestPermissiveAndRestrictive(t *testing.T) {
	assert.True(t, Permissive().Matches("anything"))
	assert.False(t, Restrictive().Matches("anything"))
	assert.False(t, Restrictive().Matches(""))
}

func TestFilterLen(t *testing.T) {
	assert.Equal(t, 0, Permissive().Len())
	assert.Equal(t, 3, NewFilter("abc").Len())
	assert.Equal(t, 4, NewFilter("b__s").Len())
}
