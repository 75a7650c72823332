package api

// GenerateRequest defines the payload for the sentence generation endpoint.
// Both fields are optional; an absent field selects the default, while a
// present one (even "") must be a supported label.
type GenerateRequest struct {
	WordCount  *string `json:"wordCount"  validate:"omitnil,word_count"`
	Difficulty *string `json:"difficulty" validate:"omitnil,difficulty"`
}

// GenerateResponse defines the successful response of the generation endpoint.
type GenerateResponse struct {
	Sentence string `json:"sentence"`
}
