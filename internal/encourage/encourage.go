// Package encourage produces short motivational messages for young
// learners. Messages come from an LLM when a provider is configured,
// with a canned template pool as the non-negotiable fallback so the
// product never depends on an external API being up.
package encourage

import (
	"context"
	_ "embed"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/mathpal/internal/feedback"
	"github.com/abhisek/mathpal/internal/llm"
	"github.com/abhisek/mathpal/internal/trend"
)

//go:embed templates.yaml
var templatesYAML []byte

// maxMessageTokens bounds LLM output; these are one or two sentences.
const maxMessageTokens = 120

// generateTimeout bounds the LLM call from Message. A slow provider
// degrades to a template instead of delaying the feedback response.
const generateTimeout = 3 * time.Second

type templateFile struct {
	Messages map[string][]string `yaml:"messages"`
}

// Input describes the learner moment the message is for.
type Input struct {
	UserID      string
	ModuleName  string
	Level       feedback.EncouragementLevel
	Trend       trend.Trend
	AccuracyPct int
}

// Generator produces encouragement messages.
type Generator struct {
	provider  llm.Provider // nil disables LLM generation
	log       *zap.Logger
	templates map[string][]string
	timeout   time.Duration
}

// NewGenerator builds a Generator. provider may be nil, in which case
// every message comes from the template pool.
func NewGenerator(provider llm.Provider, log *zap.Logger) (*Generator, error) {
	var tf templateFile
	if err := yaml.Unmarshal(templatesYAML, &tf); err != nil {
		return nil, fmt.Errorf("parse encouragement templates: %w", err)
	}
	for _, level := range []feedback.EncouragementLevel{feedback.EncourageHigh, feedback.EncourageMedium, feedback.EncourageStandard} {
		if len(tf.Messages[string(level)]) == 0 {
			return nil, fmt.Errorf("no encouragement templates for level %q", level)
		}
	}
	return &Generator{provider: provider, log: log, templates: tf.Messages, timeout: generateTimeout}, nil
}

// Message returns an encouragement message for the given moment.
// Provider errors and timeouts are logged and absorbed; the caller
// always gets a message.
func (g *Generator) Message(ctx context.Context, in Input) string {
	if g.provider != nil {
		if msg, err := g.generate(ctx, in); err == nil {
			return msg
		} else {
			g.log.Warn("encouragement generation failed, using template",
				zap.String("user_id", in.UserID),
				zap.Error(err))
		}
	}
	return g.fromTemplate(in)
}

func (g *Generator) generate(ctx context.Context, in Input) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, "encouragement")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: "You encourage children aged 6-10 who are practicing math. " +
			"Reply with one or two short, warm, specific sentences. " +
			"No emoji, no questions, no advice about difficulty settings.",
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: buildPrompt(in),
		}},
		MaxTokens:   maxMessageTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	msg := strings.TrimSpace(resp.Text)
	if msg == "" {
		return "", &llm.ErrInvalidResponse{Err: fmt.Errorf("empty encouragement")}
	}
	return msg, nil
}

func buildPrompt(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The learner just practiced %s with %d%% accuracy.", in.ModuleName, in.AccuracyPct)
	switch in.Trend {
	case trend.Improving:
		b.WriteString(" They have been improving lately.")
	case trend.Declining:
		b.WriteString(" They have been struggling lately, so be extra gentle.")
	}
	if in.Level == feedback.EncourageHigh {
		b.WriteString(" Focus on effort, not results.")
	}
	b.WriteString(" Write the encouragement message.")
	return b.String()
}

// fromTemplate picks deterministically per (user, module) so the same
// learner does not see the message change on a page refresh.
func (g *Generator) fromTemplate(in Input) string {
	pool := g.templates[string(in.Level)]
	if len(pool) == 0 {
		pool = g.templates[string(feedback.EncourageStandard)]
	}

	h := fnv.New32a()
	h.Write([]byte(in.UserID))
	h.Write([]byte(in.ModuleName))
	return pool[h.Sum32()%uint32(len(pool))]
}
