package ai

import (
	"context"
	"log/slog"
	"time"
)

// SystemInstruction is the fixed prompt framing for the fallback solver.
const SystemInstruction = "Act as a physics professor. Solve the question in detail, " +
	"use LaTeX for all mathematics, and explain step by step."

// UnavailableMessage is what users see when the AI call fails for any
// reason. The solver never surfaces errors to its caller.
const UnavailableMessage = "AI Service Unavailable."

// Completer is the minimal surface the solver needs from a client.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Solver wraps a completion client into a non-raising call with a bounded
// timeout.
type Solver struct {
	client  Completer
	timeout time.Duration
	logger  *slog.Logger
}

func NewSolver(client Completer, timeout time.Duration, logger *slog.Logger) *Solver {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Solver{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

// Solve forwards the question (and optional image) to the completion
// endpoint. Every failure degrades to UnavailableMessage; the caller always
// gets displayable text.
func (s *Solver) Solve(ctx context.Context, question, imageBase64, imageMIME string) string {
	if s.client == nil {
		return UnavailableMessage
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.Complete(ctx, CompletionRequest{
		SystemInstruction: SystemInstruction,
		Text:              question,
		ImageBase64:       imageBase64,
		ImageMIME:         imageMIME,
	})
	if err != nil {
		s.logger.Warn("ai fallback failed", "error", err)
		return UnavailableMessage
	}
	if text == "" {
		return UnavailableMessage
	}

	return text
}
