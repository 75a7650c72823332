package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/typeflow-api/internal/platform/logger"
)

// Outcome labels reported to a Recorder.
const (
	OutcomeSuccess       = "success"
	OutcomeInvalidOption = "invalid_option"
	OutcomeConfiguration = "configuration"
	OutcomeFailed        = "failed"
)

// Request carries the two option labels of a generation request.
// A nil label falls back to DefaultWordCount or DefaultDifficulty; a non-nil
// label, including an empty one, must name a supported option.
type Request struct {
	WordCount  *string
	Difficulty *string
}

// Recorder receives generation measurements.
type Recorder interface {
	ObserveGeneration(provider, outcome string, elapsed time.Duration)
	ObserveWordCountMismatch(wc WordCount)
}

type nopRecorder struct{}

func (nopRecorder) ObserveGeneration(string, string, time.Duration) {}
func (nopRecorder) ObserveWordCountMismatch(WordCount)              {}

// ServiceOption customizes a SentenceService.
type ServiceOption func(*SentenceService)

// WithRecorder reports every generation to r.
func WithRecorder(r Recorder) ServiceOption {
	return func(s *SentenceService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// SentenceService builds a prompt, sends it through a Completer and cleans
// the answer. It holds no per-request state.
type SentenceService struct {
	completer Completer
	provider  string
	logger    *slog.Logger
	recorder  Recorder
}

// NewSentenceService creates a SentenceService around the given completer.
func NewSentenceService(completer Completer, log *slog.Logger, opts ...ServiceOption) (*SentenceService, error) {
	if completer == nil {
		return nil, errors.New("completer cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	s := &SentenceService{
		completer: completer,
		provider:  providerName(completer),
		logger:    log,
		recorder:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generate returns one cleaned practice sentence for req.
//
// The sentence is not checked against the requested bounds beyond a warning
// log and a mismatch metric; it is returned as the model produced it.
func (s *SentenceService) Generate(ctx context.Context, req Request) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	start := time.Now()

	wc, err := resolveWordCount(req.WordCount)
	if err != nil {
		s.recorder.ObserveGeneration(s.provider, OutcomeInvalidOption, time.Since(start))
		return "", err
	}
	difficulty, err := resolveDifficulty(req.Difficulty)
	if err != nil {
		s.recorder.ObserveGeneration(s.provider, OutcomeInvalidOption, time.Since(start))
		return "", err
	}

	prompt, err := BuildPrompt(wc, difficulty)
	if err != nil {
		s.recorder.ObserveGeneration(s.provider, OutcomeInvalidOption, time.Since(start))
		return "", err
	}

	log.DebugContext(ctx, "requesting sentence",
		"provider", s.provider,
		"word_count", string(wc),
		"difficulty", string(difficulty),
		"prompt_length", len(prompt))

	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		if !isGenerationError(err) {
			err = fmt.Errorf("%w: %w", ErrGenerationFailed, err)
		}
		outcome := OutcomeFailed
		if errors.Is(err, ErrConfiguration) {
			outcome = OutcomeConfiguration
		}
		s.recorder.ObserveGeneration(s.provider, outcome, time.Since(start))
		return "", err
	}

	sentence := CleanSentence(raw)
	if sentence == "" {
		s.recorder.ObserveGeneration(s.provider, OutcomeFailed, time.Since(start))
		return "", fmt.Errorf("%w: empty completion", ErrInvalidResponse)
	}

	minWords, maxWords := wc.Bounds()
	if words := CountWords(sentence); words < minWords || words > maxWords {
		log.WarnContext(ctx, "generated sentence outside requested word range",
			"word_count", string(wc),
			"words", words)
		s.recorder.ObserveWordCountMismatch(wc)
	}

	elapsed := time.Since(start)
	s.recorder.ObserveGeneration(s.provider, OutcomeSuccess, elapsed)
	log.InfoContext(ctx, "sentence generated",
		"provider", s.provider,
		"word_count", string(wc),
		"difficulty", string(difficulty),
		"duration_ms", elapsed.Milliseconds())

	return sentence, nil
}
