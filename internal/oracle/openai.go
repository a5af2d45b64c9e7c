// Package oracle implements the resolver's last escalation step: an
// OpenAI chat model asked to read the date out of a message the
// deterministic extractors and the grammar could not.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Ricardo071106/Zelar-IA-sub000/internal/resolver"
)

// Config holds the oracle client configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client talks to the chat-completion API. Implements resolver.Oracle.
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

// New creates an oracle client. Model defaults to gpt-4o-mini, timeout
// to 15s.
func New(cfg Config, log *zap.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}
	return &Client{
		client:  openai.NewClientWithConfig(cc),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     log,
	}
}

const systemPrompt = `Você extrai data e horário de mensagens informais em português.
Responda somente com JSON neste formato:
{"title": "...", "date": "YYYY-MM-DD", "hour": 0, "minute": 0, "isValid": true, "error": ""}
Regras:
- "date" é a data absoluta do compromisso, nunca no passado em relação à data de referência.
- "title" é o assunto do compromisso, sem as palavras de data/hora.
- Sem horário explícito, use hour=9 e minute=0.
- Se não houver data interpretável, devolva isValid=false e explique em "error".`

// Interpret asks the model for a structured date/time guess. Transport
// failures and empty replies wrap resolver.ErrOracleUnavailable;
// malformed content comes back as an invalid interpretation, never as a
// panic or a decode error.
func (c *Client) Interpret(ctx context.Context, text, referenceDate string) (resolver.Interpretation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0,
		MaxTokens:   150,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(text, referenceDate)},
		},
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return resolver.Interpretation{}, fmt.Errorf("%w: %v", resolver.ErrOracleUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return resolver.Interpretation{}, fmt.Errorf("%w: empty response", resolver.ErrOracleUnavailable)
	}

	in := Parse(resp.Choices[0].Message.Content)
	c.log.Debug("oracle interpretation",
		zap.Bool("valid", in.IsValid),
		zap.Duration("latency", time.Since(start)),
		zap.Int("tokens", resp.Usage.TotalTokens),
	)
	return in, nil
}

func buildPrompt(text, referenceDate string) string {
	weekday := ""
	if d, err := time.Parse("2006-01-02", referenceDate); err == nil {
		weekday = " (" + resolver.WeekdayName(d.Weekday()) + ")"
	}
	return fmt.Sprintf("Data de referência: %s%s\nMensagem: %q", referenceDate, weekday, text)
}

// Parse decodes the oracle reply leniently: code fences and prose around
// the JSON object are tolerated; anything undecodable or out of range
// yields an invalid interpretation.
func Parse(content string) resolver.Interpretation {
	raw := extractJSON(content)
	if raw == "" {
		return resolver.Interpretation{}
	}
	var in resolver.Interpretation
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return resolver.Interpretation{}
	}
	if !in.IsValid {
		return in
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		in.IsValid = false
		in.Error = "unparseable date: " + in.Date
		return in
	}
	if in.Hour < 0 || in.Hour > 23 || in.Minute < 0 || in.Minute > 59 {
		in.IsValid = false
		in.Error = fmt.Sprintf("time out of range: %d:%d", in.Hour, in.Minute)
	}
	return in
}

// extractJSON cuts the first top-level JSON object out of content.
func extractJSON(content string) string {
	s := strings.TrimSpace(content)
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
