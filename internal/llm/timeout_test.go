package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stallingProvider struct{}

func (stallingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stallingProvider) ModelID() string { return "stalling" }

func TestTimeout_CancelsStalledRequest(t *testing.T) {
	p := WithTimeout(stallingProvider{}, 20*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("request returned after %v, want prompt cancellation", elapsed)
	}
}

func TestTimeout_PassesThroughFastResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "Great work!"},
	)
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Great work!" {
		t.Fatalf("unexpected text: %s", resp.Text)
	}
	if p.ModelID() != mock.ModelID() {
		t.Fatalf("ModelID = %s, want %s", p.ModelID(), mock.ModelID())
	}
}

func TestTimeout_DisabledWhenNonPositive(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("zero timeout should return the provider unwrapped")
	}
}
