package chatbot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"papertrail-ai/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiProvider_Generate(t *testing.T) {
	var got GeminiChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash-latest:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"42"}]}}]}`))
	}))
	defer server.Close()

	provider := NewGeminiProvider(server.URL+"/", "secret", "")

	answer, err := provider.Generate(context.Background(), "what is the answer?")

	require.NoError(t, err)
	assert.Equal(t, "42", answer)
	require.Len(t, got.Contents, 1)
	assert.Equal(t, ChatMessageRoleUser, got.Contents[0].Role)
	assert.Equal(t, "what is the answer?", got.Contents[0].Parts[0].Text)
	assert.Nil(t, got.GenerationConfig)
}

func TestGeminiProvider_JoinsAllParts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"First half, "},{"text":"second half."}]}}]}`))
	}))
	defer server.Close()

	answer, err := NewGeminiProvider(server.URL, "k", "").Generate(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, "First half, second half.", answer)
}

func TestGeminiProvider_ChatMapsAssistantRole(t *testing.T) {
	var got GeminiChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer server.Close()

	provider := NewGeminiProvider(server.URL, "k", "gemini-pro")
	_, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}, llm.WithTemperature(0.2))

	require.NoError(t, err)
	require.Len(t, got.Contents, 2)
	assert.Equal(t, ChatMessageRoleModel, got.Contents[1].Role)
	require.NotNil(t, got.GenerationConfig)
	assert.Equal(t, 0.2, got.GenerationConfig.Temperature)
}

func TestGeminiProvider_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "non-200", status: http.StatusForbidden, body: `{"error":"denied"}`, wantErr: "status error, got status 403"},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`, wantErr: ErrEmptyCandidates.Error()},
		{name: "no parts", status: http.StatusOK, body: `{"candidates":[{"content":{"parts":[]}}]}`, wantErr: ErrEmptyCandidates.Error()},
		{name: "malformed", status: http.StatusOK, body: `not json`, wantErr: "decode gemini response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewGeminiProvider(server.URL, "k", "").Generate(context.Background(), "q")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
