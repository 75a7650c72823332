package generation

import "fmt"

// WordCount is a word-count bucket label such as "15-20".
type WordCount string

// Supported word-count buckets.
const (
	WordCount15To20 WordCount = "15-20"
	WordCount20To25 WordCount = "20-25"
	WordCount25To30 WordCount = "25-30"
)

// Difficulty is a vocabulary/complexity tier.
type Difficulty string

// Supported difficulty tiers.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Defaults applied when a request omits a label.
const (
	DefaultWordCount  = WordCount15To20
	DefaultDifficulty = DifficultyEasy
)

// WordCounts returns every supported bucket in display order.
func WordCounts() []WordCount {
	return []WordCount{WordCount15To20, WordCount20To25, WordCount25To30}
}

// Difficulties returns every supported tier in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseWordCount maps a label to a WordCount.
func ParseWordCount(label string) (WordCount, error) {
	wc := WordCount(label)
	if !wc.Valid() {
		return "", fmt.Errorf("%w: unknown word count %q", ErrInvalidOption, label)
	}
	return wc, nil
}

// ParseDifficulty maps a label to a Difficulty.
func ParseDifficulty(label string) (Difficulty, error) {
	d := Difficulty(label)
	if !d.Valid() {
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidOption, label)
	}
	return d, nil
}

// resolveWordCount parses label, or returns the default when it is absent.
// A present but empty label is invalid.
func resolveWordCount(label *string) (WordCount, error) {
	if label == nil {
		return DefaultWordCount, nil
	}
	return ParseWordCount(*label)
}

func resolveDifficulty(label *string) (Difficulty, error) {
	if label == nil {
		return DefaultDifficulty, nil
	}
	return ParseDifficulty(*label)
}

// Valid reports whether wc is one of the supported buckets.
func (wc WordCount) Valid() bool {
	_, _, ok := wc.bounds()
	return ok
}

// Bounds returns the inclusive word range for the bucket.
// It returns zeros for an unsupported bucket.
func (wc WordCount) Bounds() (minWords, maxWords int) {
	minWords, maxWords, _ = wc.bounds()
	return minWords, maxWords
}

func (wc WordCount) bounds() (int, int, bool) {
	switch wc {
	case WordCount15To20:
		return 15, 20, true
	case WordCount20To25:
		return 20, 25, true
	case WordCount25To30:
		return 25, 30, true
	default:
		return 0, 0, false
	}
}

// Valid reports whether d is one of the supported tiers.
func (d Difficulty) Valid() bool {
	return d.Instruction() != ""
}

// Instruction returns the vocabulary guidance sent to the model for the tier,
// or an empty string for an unsupported tier.
func (d Difficulty) Instruction() string {
	switch d {
	case DifficultyEasy:
		return "simple, clear vocabulary suitable for everyday conversation and basic writing"
	case DifficultyMedium:
		return "moderate academic vocabulary with varied sentence structures"
	case DifficultyHard:
		return "advanced academic vocabulary with complex sentence structures"
	default:
		return ""
	}
}
