package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed prompt.tmpl
var promptSource string

var promptTemplate = template.Must(template.New("sentence").Parse(promptSource))

// promptData represents the data passed to the prompt template
type promptData struct {
	MinWords    int
	MaxWords    int
	Instruction string
}

// BuildPrompt renders the instruction sent to the completion service for the
// given bucket and tier. It fails with ErrInvalidOption for unsupported values.
func BuildPrompt(wc WordCount, d Difficulty) (string, error) {
	if !wc.Valid() {
		return "", fmt.Errorf("%w: unknown word count %q", ErrInvalidOption, wc)
	}
	if !d.Valid() {
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidOption, d)
	}

	minWords, maxWords := wc.Bounds()
	data := promptData{
		MinWords:    minWords,
		MaxWords:    maxWords,
		Instruction: d.Instruction(),
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
