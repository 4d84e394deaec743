package service

import (
	"context"
	"time"

	"papertrail-ai/internal/constant"
	"papertrail-ai/internal/pkg/logger"
	"papertrail-ai/pkg/llm"
)

// Answer is the outcome of one question. Exactly one of Text or Err is meaningful.
type Answer struct {
	Text string
	Err  error
}

func (a Answer) Failed() bool {
	return a.Err != nil
}

// Message is what gets stored in the transcript for this answer.
func (a Answer) Message() string {
	if a.Err != nil {
		return constant.AnswerErrorPrefix + a.Err.Error()
	}
	return a.Text
}

type IAnswerService interface {
	Answer(ctx context.Context, combinedText, question string) Answer
}

type answerService struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewAnswerService(provider llm.LLMProvider, logger logger.ILogger) IAnswerService {
	return &answerService{
		provider: provider,
		logger:   logger,
	}
}

func BuildPrompt(combinedText, question string) string {
	return constant.PromptInstruction + "\n\n" + combinedText + "\n\n" + constant.PromptQuestionTag + "\n" + question
}

func (s *answerService) Answer(ctx context.Context, combinedText, question string) Answer {
	start := time.Now()
	text, err := s.provider.Generate(ctx, BuildPrompt(combinedText, question))
	if err != nil {
		s.logger.Error("ANSWER", "Gemini request failed", map[string]interface{}{
			"error":       err.Error(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return Answer{Err: err}
	}

	s.logger.Info("ANSWER", "Answer generated", map[string]interface{}{
		"question_len": len(question),
		"context_len":  len(combinedText),
		"answer_len":   len(text),
		"duration_ms":  time.Since(start).Milliseconds(),
	})
	return Answer{Text: text}
}
