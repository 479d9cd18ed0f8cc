package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/shesafe/internal/pkg/circuitbreaker"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	nrpkg "github.com/piresc/shesafe/internal/pkg/newrelic"
	"github.com/piresc/shesafe/services/safety"
	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-2.0-flash"
	providerURL  = "https://generativelanguage.googleapis.com"
)

// errNotConfigured is returned by every call when no API key is set
var errNotConfigured = errors.New("AI provider is not configured")

// generator is the slice of *genai.Models the gateway uses
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGW implements safety.AnalysisGW on the Gemini API
type GeminiGW struct {
	gen     generator
	model   string
	breaker *circuitbreaker.CircuitBreaker
}

// NewGeminiGW creates the Gemini client. An empty API key yields a
// gateway whose calls fail, so the flows fall back to local answers.
func NewGeminiGW(ctx context.Context, cfg models.SafetyConfig) (*GeminiGW, error) {
	if cfg.APIKey == "" {
		logger.Warn("Safety API key is empty, AI flows will return fallback answers")
		return newGeminiGW(nil, cfg.Model), nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return newGeminiGW(client.Models, cfg.Model), nil
}

func newGeminiGW(gen generator, model string) *GeminiGW {
	if model == "" {
		model = defaultModel
	}

	breakerCfg := circuitbreaker.DefaultConfig("genai")
	breakerCfg.Timeout = time.Minute
	breakerCfg.IsFailure = func(err error) bool {
		return err != nil && !errors.Is(err, context.Canceled)
	}

	return &GeminiGW{
		gen:     gen,
		model:   model,
		breaker: circuitbreaker.New(breakerCfg),
	}
}

// DangerZoneAlerts asks for incidents reported near place in the last 24 hours
func (g *GeminiGW) DangerZoneAlerts(ctx context.Context, place string) ([]models.DangerZoneAlert, error) {
	contents := []*genai.Content{genai.NewContentFromText(dangerZonePrompt(place), genai.RoleUser)}

	text, err := g.generate(ctx, "danger_zone_alerts", contents, dangerZoneSchema)
	if err != nil {
		return nil, err
	}

	var out struct {
		Alerts []models.DangerZoneAlert `json:"alerts"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("malformed danger zone output: %w", err)
	}
	return out.Alerts, nil
}

// AnalyzeText assesses a written description of the owner's situation
func (g *GeminiGW) AnalyzeText(ctx context.Context, situation string) (*models.DistressResponse, error) {
	contents := []*genai.Content{genai.NewContentFromText(situationPrompt(situation), genai.RoleUser)}

	text, err := g.generate(ctx, "analyze_situation_text", contents, distressSchema)
	if err != nil {
		return nil, err
	}
	return decodeDistress(text)
}

// AnalyzeAudio assesses an audio clip together with place and movement hints
func (g *GeminiGW) AnalyzeAudio(ctx context.Context, sample *safety.AudioSample) (*models.DistressResponse, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(audioPrompt(sample.PlaceName, sample.MovementData)),
		genai.NewPartFromBytes(sample.Data, sample.MIMEType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	text, err := g.generate(ctx, "analyze_distress_audio", contents, distressSchema)
	if err != nil {
		return nil, err
	}
	return decodeDistress(text)
}

// generate runs one structured-output request through the breaker and
// returns the trimmed response text
func (g *GeminiGW) generate(ctx context.Context, op string, contents []*genai.Content, schema *genai.Schema) (string, error) {
	if g.gen == nil {
		return "", errNotConfigured
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		SafetySettings:   safetySettings(),
	}

	var text string
	start := time.Now()
	err := nrpkg.WithExternalSegment(ctx, "genai", op, providerURL, func() error {
		return g.breaker.Execute(ctx, func(ctx context.Context) error {
			resp, err := g.gen.GenerateContent(ctx, g.model, contents, config)
			if err != nil {
				return err
			}
			text = strings.TrimSpace(resp.Text())
			return nil
		})
	})
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", op, err)
	}

	logger.DebugCtx(ctx, "Model call completed",
		logger.String("operation", op),
		logger.String("model", g.model),
		logger.Duration("elapsed", time.Since(start)),
		logger.Int("output_bytes", len(text)))

	if text == "" || text == "null" {
		return "", safety.ErrNoOutput
	}
	return text, nil
}

func decodeDistress(text string) (*models.DistressResponse, error) {
	var out struct {
		IsDistressed bool     `json:"isDistressed"`
		Reason       string   `json:"reason"`
		SafetyTips   []string `json:"safetyTips"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("malformed distress output: %w", err)
	}
	return &models.DistressResponse{
		IsDistressed: out.IsDistressed,
		Reason:       out.Reason,
		SafetyTips:   out.SafetyTips,
	}, nil
}

func safetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}

	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  category,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}
	return settings
}
