package service

import (
	"context"
	"errors"
	"testing"

	"papertrail-ai/internal/pkg/logger"
	"papertrail-ai/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	reply   string
	err     error
	prompts []string
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return p.Generate(ctx, history[len(history)-1].Content, opts...)
}

func (p *stubProvider) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	p.prompts = append(p.prompts, prompt)
	return p.reply, p.err
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("doc body", "why?")

	assert.Equal(t, "Use the following content to answer the question.\n\ndoc body\n\nQuestion:\nwhy?", got)
}

func TestAnswerService_Success(t *testing.T) {
	provider := &stubProvider{reply: "**because**"}
	svc := NewAnswerService(provider, logger.NewNopLogger())

	answer := svc.Answer(context.Background(), "doc", "why?")

	assert.False(t, answer.Failed())
	assert.Equal(t, "**because**", answer.Message())
	assert.Equal(t, []string{BuildPrompt("doc", "why?")}, provider.prompts)
}

func TestAnswerService_Failure(t *testing.T) {
	provider := &stubProvider{err: errors.New("status error, got status 500")}
	svc := NewAnswerService(provider, logger.NewNopLogger())

	answer := svc.Answer(context.Background(), "doc", "why?")

	assert.True(t, answer.Failed())
	assert.Equal(t, "Error calling API: status error, got status 500", answer.Message())
}
