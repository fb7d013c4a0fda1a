package encourage

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/feedback"
	"github.com/abhisek/mathpal/internal/llm"
	"github.com/abhisek/mathpal/internal/trend"
)

func testInput() Input {
	return Input{
		UserID:      "u1",
		ModuleName:  "addition",
		Level:       feedback.EncourageMedium,
		Trend:       trend.Stable,
		AccuracyPct: 68,
	}
}

func TestGenerator_UsesProvider(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "You are getting faster at addition, nice work!"},
	)
	g, err := NewGenerator(mock, zap.NewNop())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	msg := g.Message(context.Background(), testInput())
	if msg != "You are getting faster at addition, nice work!" {
		t.Errorf("message = %q, want provider text", msg)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestGenerator_FallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g, err := NewGenerator(mock, zap.NewNop())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	msg := g.Message(context.Background(), testInput())
	if msg == "" {
		t.Fatal("fallback message is empty")
	}
	if !contains(g.templates["medium"], msg) {
		t.Errorf("message %q not from the medium template pool", msg)
	}
}

// hungProvider never answers; it only returns once its context is done.
type hungProvider struct{}

func (hungProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (hungProvider) ModelID() string { return "hung" }

func TestGenerator_FallsBackOnSlowProvider(t *testing.T) {
	g, err := NewGenerator(hungProvider{}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	g.timeout = 50 * time.Millisecond

	start := time.Now()
	msg := g.Message(context.Background(), testInput())
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("Message took %v, want fallback within the generator timeout", elapsed)
	}
	if !contains(g.templates["medium"], msg) {
		t.Errorf("message %q not from the medium template pool", msg)
	}
}

func TestGenerator_FallsBackOnEmptyCompletion(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "   "},
	)
	g, err := NewGenerator(mock, zap.NewNop())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	msg := g.Message(context.Background(), testInput())
	if !contains(g.templates["medium"], msg) {
		t.Errorf("message %q not from the medium template pool", msg)
	}
}

func TestGenerator_NilProviderUsesTemplates(t *testing.T) {
	g, err := NewGenerator(nil, zap.NewNop())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	in := testInput()
	in.Level = feedback.EncourageHigh
	msg := g.Message(context.Background(), in)
	if !contains(g.templates["high"], msg) {
		t.Errorf("message %q not from the high template pool", msg)
	}

	// Same learner and module always gets the same template.
	if again := g.Message(context.Background(), in); again != msg {
		t.Errorf("message changed between calls: %q then %q", msg, again)
	}
}

func TestGenerator_TemplatePoolsComplete(t *testing.T) {
	g, err := NewGenerator(nil, zap.NewNop())
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	for _, level := range []string{"high", "medium", "standard"} {
		if len(g.templates[level]) == 0 {
			t.Errorf("no templates for level %s", level)
		}
	}
}

func contains(pool []string, s string) bool {
	for _, p := range pool {
		if p == s {
			return true
		}
	}
	return false
}
