package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWordCount(t *testing.T) {
	tests := []struct {
		label   string
		want    WordCount
		wantMin int
		wantMax int
		wantErr bool
	}{
		{label: "", wantErr: true},
		{label: "15-20", want: WordCount15To20, wantMin: 15, wantMax: 20},
		{label: "20-25", want: WordCount20To25, wantMin: 20, wantMax: 25},
		{label: "25-30", want: WordCount25To30, wantMin: 25, wantMax: 30},
		{label: "30-35", wantErr: true},
		{label: "15 - 20", wantErr: true},
		{label: "EASY", wantErr: true},
	}

	for _, tc := range tests {
		t.Run("label_"+tc.label, func(t *testing.T) {
			wc, err := ParseWordCount(tc.label)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidOption)
				assert.Empty(t, wc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, wc)
			minWords, maxWords := wc.Bounds()
			assert.Equal(t, tc.wantMin, minWords)
			assert.Equal(t, tc.wantMax, maxWords)
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		label       string
		want        Difficulty
		instruction string
		wantErr     bool
	}{
		{label: "", wantErr: true},
		{label: "easy", want: DifficultyEasy, instruction: "simple, clear vocabulary suitable for everyday conversation and basic writing"},
		{label: "medium", want: DifficultyMedium, instruction: "moderate academic vocabulary with varied sentence structures"},
		{label: "hard", want: DifficultyHard, instruction: "advanced academic vocabulary with complex sentence structures"},
		{label: "Hard", wantErr: true},
		{label: "expert", wantErr: true},
	}

	for _, tc := range tests {
		t.Run("label_"+tc.label, func(t *testing.T) {
			d, err := ParseDifficulty(tc.label)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidOption)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, d)
			assert.Equal(t, tc.instruction, d.Instruction())
		})
	}
}

func TestUnsupportedValues(t *testing.T) {
	minWords, maxWords := WordCount("1-2").Bounds()
	assert.Zero(t, minWords)
	assert.Zero(t, maxWords)
	assert.False(t, WordCount("1-2").Valid())
	assert.Empty(t, Difficulty("impossible").Instruction())
	assert.False(t, Difficulty("impossible").Valid())
}

func TestOptionListsAreValid(t *testing.T) {
	require.Len(t, WordCounts(), 3)
	require.Len(t, Difficulties(), 3)
	for _, wc := range WordCounts() {
		assert.True(t, wc.Valid(), "word count %q should be valid", wc)
	}
	for _, d := range Difficulties() {
		assert.True(t, d.Valid(), "difficulty %q should be valid", d)
	}
}
