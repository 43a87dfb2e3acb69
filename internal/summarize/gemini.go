package summarize

import (
	"context"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Harith-Y/Meeting-Analyzer/internal/config"
	"github.com/Harith-Y/Meeting-Analyzer/internal/fault"
	"github.com/Harith-Y/Meeting-Analyzer/internal/logger"
)

type geminiGenerator struct {
	cfg        *config.Config
	logger     logger.Logger
	currentKey int
}

func newGemini(cfg *config.Config, log logger.Logger) *geminiGenerator {
	return &geminiGenerator{
		cfg:    cfg,
		logger: log,
	}
}

// Generate sends the prompt to the Gemini API, rotating through the
// configured API keys on quota errors.
func (g *geminiGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	keys := g.cfg.Keys.GeminiAPIKeys
	if len(keys) == 0 {
		return nil, fault.New(fault.KindAuth, "no Gemini API keys configured").
			WithRemedy("set GEMINI_API_KEYS in the environment or .env file")
	}

	spec := buildPromptSpec(req, g.cfg.LLM)
	model := g.cfg.LLM.GeminiModel
	g.logger.Info(ctx, "Generating %s using %s", req.Artifact, model)

	var lastErr error
	for range keys {
		key := keys[g.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = err
			g.rotateKey()
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, g.cfg.LLM.Timeout.Std())
		result, err := client.Models.GenerateContent(callCtx, model, genai.Text(spec.Prompt), nil)
		cancel()

		if err != nil {
			if isQuotaError(err) {
				g.logger.Warn(ctx, "Gemini key %d rate limited, rotating", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return nil, fault.Wrap(fault.KindTransient, err, "generate content failed")
		}

		text := extractGeminiText(result)
		if text == "" {
			g.logger.Error(ctx, "Malformed Gemini response: no text candidates")
			return nil, fault.New(fault.KindContract, "empty response from Gemini")
		}

		text = CleanOutput(text)
		out := &Result{
			Artifact:  req.Artifact,
			Text:      text,
			Model:     model,
			WordCount: len(strings.Fields(text)),
			Timestamp: time.Now(),
		}
		if req.Artifact == ArtifactKeyPoints {
			out.KeyPoints = ParseNumberedList(text)
		}

		g.logger.Info(ctx, "%s generated. Word count: %d", req.Artifact, out.WordCount)
		return out, nil
	}

	return nil, fault.Wrap(fault.KindRateLimit, lastErr, "all %d Gemini API keys exhausted", len(keys)).
		WithRemedy("wait for the quota to reset or add more keys")
}

func (g *geminiGenerator) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.cfg.Keys.GeminiAPIKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func extractGeminiText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}
