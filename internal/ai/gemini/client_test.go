package gemini

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeModels struct {
	mu      sync.Mutex
	calls   []modelCall
	replies []fakeReply
}

type modelCall struct {
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

type fakeReply struct {
	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeModels) enqueue(resp *genai.GenerateContentResponse, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, fakeReply{resp: resp, err: err})
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var prompt string
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		prompt = contents[0].Parts[0].Text
	}
	f.calls = append(f.calls, modelCall{model: model, prompt: prompt, config: config})

	if len(f.replies) == 0 {
		return nil, errors.New("unexpected call")
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply.resp, reply.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func stubWait(t *testing.T) *[]time.Duration {
	t.Helper()

	var delays []time.Duration
	original := wait
	wait = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	t.Cleanup(func() { wait = original })

	return &delays
}

func TestGeneratorRetriesOnTemporaryError(t *testing.T) {
	delays := stubWait(t)

	models := &fakeModels{}
	models.enqueue(nil, genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"})
	models.enqueue(textResponse("retry ok"), nil)

	g := newGenerator(models, Options{Model: "gemini-test", MaxRetries: 2}, zap.NewNop())

	output, err := g.GenerateContent(context.Background(), "  extract this  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output != "retry ok" {
		t.Fatalf("unexpected output: %q", output)
	}

	if len(models.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(models.calls))
	}

	for _, call := range models.calls {
		if call.model != "gemini-test" {
			t.Fatalf("unexpected model: %q", call.model)
		}
		if call.prompt != "extract this" {
			t.Fatalf("unexpected prompt: %q", call.prompt)
		}
	}

	if len(*delays) != 1 || (*delays)[0] != time.Second {
		t.Fatalf("expected a single 1s backoff, got %v", *delays)
	}
}

func TestGeneratorStopsAfterRetriesExhausted(t *testing.T) {
	delays := stubWait(t)

	models := &fakeModels{}
	for range 3 {
		models.enqueue(nil, genai.APIError{Code: http.StatusServiceUnavailable, Status: "UNAVAILABLE"})
	}

	g := newGenerator(models, Options{MaxRetries: 3}, zap.NewNop())

	if _, err := g.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error after exhausting retries")
	}

	if len(models.calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(models.calls))
	}

	want := []time.Duration{time.Second, 2 * time.Second}
	if len(*delays) != len(want) {
		t.Fatalf("expected delays %v, got %v", want, *delays)
	}
	for i := range want {
		if (*delays)[i] != want[i] {
			t.Fatalf("expected delays %v, got %v", want, *delays)
		}
	}
}

func TestGeneratorDoesNotRetryPermanentErrors(t *testing.T) {
	stubWait(t)

	cases := []struct {
		name string
		err  error
	}{
		{name: "bad request", err: genai.APIError{Code: http.StatusBadRequest, Message: "invalid argument"}},
		{name: "long quota delay", err: genai.APIError{Code: http.StatusTooManyRequests, Message: "Quota exceeded, please retry in 45s"}},
		{name: "non api error", err: errors.New("network down")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			models := &fakeModels{}
			models.enqueue(nil, tc.err)

			g := newGenerator(models, Options{MaxRetries: 3}, zap.NewNop())
			if _, err := g.GenerateContent(context.Background(), "prompt"); err == nil {
				t.Fatalf("expected error")
			}

			if len(models.calls) != 1 {
				t.Fatalf("expected a single call, got %d", len(models.calls))
			}
		})
	}
}

func TestGeneratorStopsWhenContextCanceled(t *testing.T) {
	original := wait
	wait = func(ctx context.Context, _ time.Duration) error { return context.Canceled }
	t.Cleanup(func() { wait = original })

	models := &fakeModels{}
	models.enqueue(nil, genai.APIError{Code: http.StatusTooManyRequests, Message: "retry in 2s"})

	g := newGenerator(models, Options{MaxRetries: 3}, zap.NewNop())
	_, err := g.GenerateContent(context.Background(), "prompt")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGeneratorConfig(t *testing.T) {
	g := newGenerator(&fakeModels{}, Options{}, nil)

	if g.Model() != defaultModel {
		t.Fatalf("expected default model, got %q", g.Model())
	}
	if g.maxRetries != defaultMaxRetries {
		t.Fatalf("expected default retries, got %d", g.maxRetries)
	}

	cfg := g.config
	if cfg.Temperature == nil || *cfg.Temperature != float32(defaultTemperature) {
		t.Fatalf("unexpected temperature: %v", cfg.Temperature)
	}
	if cfg.TopP == nil || *cfg.TopP != 1 {
		t.Fatalf("unexpected top-p: %v", cfg.TopP)
	}
	if cfg.MaxOutputTokens != defaultMaxOutputTokens {
		t.Fatalf("unexpected max output tokens: %d", cfg.MaxOutputTokens)
	}
	if cfg.ResponseMIMEType != "application/json" {
		t.Fatalf("unexpected response mime type: %q", cfg.ResponseMIMEType)
	}
}

func TestGeneratorJoinsParts(t *testing.T) {
	models := &fakeModels{}
	models.enqueue(textResponse("[{", "  ", "}]"), nil)

	g := newGenerator(models, Options{}, zap.NewNop())
	output, err := g.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "[{\n}]" {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestGeneratorEmptyResponse(t *testing.T) {
	models := &fakeModels{}
	models.enqueue(textResponse("   "), nil)

	g := newGenerator(models, Options{}, zap.NewNop())
	if _, err := g.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error for empty response")
	}

	if _, err := g.GenerateContent(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for empty prompt")
	}
}
