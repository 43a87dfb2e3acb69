package summarize

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Harith-Y/Meeting-Analyzer/internal/config"
	"github.com/Harith-Y/Meeting-Analyzer/internal/fault"
	"github.com/Harith-Y/Meeting-Analyzer/internal/logger"
)

// OpenRouter speaks the OpenAI chat-completions API.
const openRouterBaseURL = "https://openrouter.ai/api/v1"

type openRouterGenerator struct {
	client *openai.Client
	cfg    *config.Config
	logger logger.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

func newOpenRouter(cfg *config.Config, log logger.Logger) *openRouterGenerator {
	clientCfg := openai.DefaultConfig(cfg.Keys.OpenRouterAPIKey)
	clientCfg.BaseURL = openRouterBaseURL

	return &openRouterGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		logger: log,
		sleep:  sleepCtx,
	}
}

// Generate issues the chat-completion request, retrying rate-limited
// responses with the configured backoff schedule. A success on attempt k
// aborts the remaining attempts; exhausting the schedule is terminal for
// this artifact only.
func (g *openRouterGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	if g.cfg.Keys.OpenRouterAPIKey == "" {
		return nil, fault.New(fault.KindAuth, "OpenRouter API key not found").
			WithRemedy("set OPENROUTER_API_KEY in the environment or .env file")
	}

	spec := buildPromptSpec(req, g.cfg.LLM)
	g.logger.Info(ctx, "Generating %s using %s", req.Artifact, spec.Model)

	var messages []openai.ChatCompletionMessage
	if spec.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: spec.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: spec.Prompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       spec.Model,
		Messages:    messages,
		Temperature: spec.Temperature,
		MaxTokens:   spec.MaxTokens,
	}

	maxAttempts := MaxAttempts(g.cfg.LLM.Backoff)
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, g.cfg.LLM.Timeout.Std())
		resp, err := g.client.CreateChatCompletion(callCtx, chatReq)
		deadlineHit := errors.Is(callCtx.Err(), context.DeadlineExceeded)
		cancel()

		if err == nil {
			return g.buildResult(ctx, req, spec, resp)
		}
		lastErr = err

		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.HTTPStatusCode {
			case http.StatusTooManyRequests:
				delay, ok := Backoff(attempt, g.cfg.LLM.Backoff)
				if !ok {
					return nil, fault.Wrap(fault.KindRateLimit, err,
						"rate limited after %d attempts", maxAttempts).
						WithRemedy("wait a few minutes and retry, or switch to a paid model")
				}
				g.logger.Warn(ctx, "Rate limited (attempt %d/%d), retrying in %s", attempt+1, maxAttempts, delay)
				if serr := g.sleep(ctx, delay); serr != nil {
					return nil, serr
				}
				continue

			case http.StatusUnauthorized, http.StatusForbidden:
				return nil, fault.Wrap(fault.KindAuth, err, "OpenRouter rejected the API key").
					WithRemedy("check OPENROUTER_API_KEY")
			}
		}

		if deadlineHit {
			g.logger.Warn(ctx, "Request timed out (attempt %d/%d), retrying", attempt+1, maxAttempts)
			continue
		}

		return nil, fault.Wrap(fault.KindTransient, err, "chat completion request failed")
	}

	return nil, fault.Wrap(fault.KindRateLimit, lastErr, "rate limited after %d attempts", maxAttempts).
		WithRemedy("wait a few minutes and retry, or switch to a paid model")
}

func (g *openRouterGenerator) buildResult(ctx context.Context, req Request, spec promptSpec, resp openai.ChatCompletionResponse) (*Result, error) {
	if len(resp.Choices) == 0 {
		g.logger.Error(ctx, "Malformed chat completion response: no choices (id=%s)", resp.ID)
		return nil, fault.New(fault.KindContract, "response contained no choices")
	}

	text := CleanOutput(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, fault.New(fault.KindContract, "response contained empty content")
	}

	result := &Result{
		Artifact:  req.Artifact,
		Text:      text,
		Model:     spec.Model,
		WordCount: len(strings.Fields(text)),
		Timestamp: time.Now(),
	}
	if req.Artifact == ArtifactKeyPoints {
		result.KeyPoints = ParseNumberedList(text)
	}

	g.logger.Info(ctx, "%s generated. Word count: %d", req.Artifact, result.WordCount)
	return result, nil
}
