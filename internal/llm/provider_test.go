package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderFIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"first"`)},
		MockResponse{Content: json.RawMessage(`"second"`)},
	)

	r1, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(r1.Content) != `"first"` || string(r2.Content) != `"second"` {
		t.Fatalf("responses out of order: %s, %s", r1.Content, r2.Content)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable on empty queue, got %T", err)
	}
}

func TestMockProviderRecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	req := Request{System: "decompose the material", MaxTokens: 1024}
	if _, err := mock.Generate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls) != 1 || mock.Calls[0].System != "decompose the material" {
		t.Fatalf("request not recorded: %+v", mock.Calls)
	}
}

func TestPurposeRoundTrip(t *testing.T) {
	ctx := WithPurpose(context.Background(), "graph-extraction")
	if got := PurposeFrom(ctx); got != "graph-extraction" {
		t.Fatalf("purpose = %q", got)
	}
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Fatalf("missing purpose = %q, want unknown", got)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing gemini key")
	}

	cfg.Gemini.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock needs no key: %v", err)
	}

	cfg.Provider = "hal9000"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ATLAS_LLM_PROVIDER", "openai")
	t.Setenv("ATLAS_OPENAI_API_KEY", "sk-test")
	t.Setenv("ATLAS_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("openai config = %+v", cfg.OpenAI)
	}
	// Untouched sections keep their defaults.
	if cfg.Gemini.Model != "gemini-flash" {
		t.Fatalf("gemini default lost: %q", cfg.Gemini.Model)
	}
}

func TestResolveModelPassthrough(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Fatalf("friendly name not resolved: %q", got)
	}
	if got := resolveModel("gemini-exp-1206", geminiModels); got != "gemini-exp-1206" {
		t.Fatalf("raw ID must pass through: %q", got)
	}
}

func TestModelCost(t *testing.T) {
	c := LookupCost("gemini-2.0-flash")
	if c == nil {
		t.Fatal("expected pricing for gemini-2.0-flash")
	}
	got := c.Cost(1_000_000, 500_000)
	want := 0.1 + 0.2
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("cost = %v, want %v", got, want)
	}
	if LookupCost("made-up-model") != nil {
		t.Fatal("unknown model must return nil")
	}
}
