package api

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/typeflow-api/internal/api/shared"
	"github.com/phrazzld/typeflow-api/internal/generation"
)

// Validation tags for the option labels.
const (
	wordCountTag  = "word_count"
	difficultyTag = "difficulty"
)

// SentenceGenerator produces one practice sentence for a request.
type SentenceGenerator interface {
	Generate(ctx context.Context, req generation.Request) (string, error)
}

// GenerateHandler handles sentence generation requests
type GenerateHandler struct {
	generator SentenceGenerator
	validator *validator.Validate
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(generator SentenceGenerator) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
		validator: newRequestValidator(),
	}
}

// Generate handles POST /generate requests
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %s", generation.ErrInvalidOption, SanitizeValidationError(err)), "")
		return
	}

	sentence, err := h.generator.Generate(r.Context(), generation.Request{
		WordCount:  req.WordCount,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate sentence")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{Sentence: sentence})
}

// newRequestValidator returns a validator that reports JSON field names and
// knows the option label tags.
func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, wordCountTag, func(fl validator.FieldLevel) bool {
		_, err := generation.ParseWordCount(fl.Field().String())
		return err == nil
	})
	mustRegister(v, difficultyTag, func(fl validator.FieldLevel) bool {
		_, err := generation.ParseDifficulty(fl.Field().String())
		return err == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
	}
}
