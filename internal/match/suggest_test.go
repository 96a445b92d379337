package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	ranked := Rank("colour", []string{"size", "color", "Colours", "colour"})

	require.Len(t, ranked, 3, "the exact key is skipped")
	assert.Equal(t, "Colours", ranked[0].Key)
	assert.Equal(t, "color", ranked[1].Key)
	assert.Equal(t, "size", ranked[2].Key)

	assert.Len(t, ranked.AboveThreshold(DefaultThreshold), 2)
	assert.Empty(t, ranked.AboveThreshold(1.1))
}

func TestRankTies(t *testing.T) {
	ranked := Rank("ab", []string{"ax", "aa"})

	assert.Equal(t, []Candidate{{"aa", 0.5}, {"ax", 0.5}}, []Candidate(ranked))
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		expected string
		found    bool
	}{
		{"hosts", []string{"host", "port"}, "host", true},
		{"PORT", []string{"host", "port"}, "port", true},
		{"missing", []string{"name"}, "", false},
		{"x", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := Suggest(tt.name, tt.keys)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, key)
		})
	}
}
