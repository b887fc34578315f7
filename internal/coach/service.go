package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/adixit/intervue/internal/llm"
)

// Service generates answer feedback asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Feedback
	err     error
	ready   bool
}

// NewService creates a feedback generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestFeedback starts async feedback generation. Only one assessment is
// in-flight at a time — new requests replace pending ones.
func (s *Service) RequestFeedback(ctx context.Context, input FeedbackInput) {
	go func() {
		fb, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = fb
		s.err = err
		s.ready = true
	}()
}

// ConsumeFeedback returns the pending feedback if one is ready.
// Returns (nil, false) if nothing is ready yet.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeFeedback() (*Feedback, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	fb := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return fb, fb != nil
}

type feedbackOutput struct {
	Assessment string   `json:"assessment"`
	Strengths  []string `json:"strengths"`
	Gaps       []string `json:"gaps"`
	ModelTip   string   `json:"model_tip"`
}

func (s *Service) generate(ctx context.Context, input FeedbackInput) (*Feedback, error) {
	ctx = llm.WithPurpose(ctx, "feedback")

	userMsg := buildFeedbackUserMessage(input)

	req := llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("feedback generation: %w", err)
	}

	var out feedbackOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse feedback response: %w", err)
	}

	return &Feedback{
		Skill:      input.Skill,
		Assessment: out.Assessment,
		Strengths:  out.Strengths,
		Gaps:       out.Gaps,
		ModelTip:   out.ModelTip,
	}, nil
}
