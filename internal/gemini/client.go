// Package gemini implements the text-completion adapter over Google's
// Gemini API. Every call is stateless: the caller supplies the full prompt
// and, for persona-style calls, the system instruction. Conversational
// memory, where it exists, is reconstructed by the dialogue handlers.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/avdeyev/umnikbot/internal/config"
)

// Mode selects a fixed system instruction and sampling temperature for a
// completion call.
type Mode string

const (
	// ModeDefault answers free-form questions as a general assistant.
	ModeDefault Mode = "default"
	// ModeTranslate translates text, with a lower temperature for fidelity.
	ModeTranslate Mode = "translate"
	// ModeFact generates short encyclopedic facts.
	ModeFact Mode = "fact"
)

// Client defines the completion operations used by the dialogue handlers.
// No retries are performed internally; failures surface immediately and the
// caller decides whether to degrade or offer a retry affordance.
type Client interface {
	// Complete runs a single completion in the given mode.
	Complete(ctx context.Context, mode Mode, prompt string) (string, error)

	// CompleteAs runs a single completion with a caller-supplied system
	// instruction (persona prompts, quiz topic prompts) at the persona
	// temperature.
	CompleteAs(ctx context.Context, instruction, prompt string) (string, error)
}

type sdkClient struct {
	genaiClient *genai.Client
	log         *slog.Logger
	model       string
	cfg         config.GeminiConfig
}

// NewClient creates a new Gemini client from the provided configuration.
func NewClient(ctx context.Context, cfg config.GeminiConfig, log *slog.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	gi, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	logger := log.With("component", "gemini_client")
	logger.Info("Gemini client initialized", "model", cfg.Model)

	return &sdkClient{
		genaiClient: gi,
		log:         logger,
		model:       cfg.Model,
		cfg:         cfg,
	}, nil
}

func (c *sdkClient) Complete(ctx context.Context, mode Mode, prompt string) (string, error) {
	instruction, ok := modeInstructions[mode]
	if !ok {
		instruction = modeInstructions[ModeDefault]
	}
	return c.generate(ctx, instruction, c.temperatureFor(mode), prompt)
}

func (c *sdkClient) CompleteAs(ctx context.Context, instruction, prompt string) (string, error) {
	if instruction == "" {
		return "", fmt.Errorf("system instruction is required for persona completion")
	}
	return c.generate(ctx, instruction, c.cfg.TempPersona, prompt)
}

func (c *sdkClient) temperatureFor(mode Mode) float32 {
	switch mode {
	case ModeTranslate:
		return c.cfg.TempTranslate
	case ModeFact:
		return c.cfg.TempFact
	default:
		return c.cfg.TempDefault
	}
}

func (c *sdkClient) generate(ctx context.Context, instruction string, temperature float32, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	contentCfg := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
		},
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, contents, contentCfg)
	if err != nil {
		c.log.ErrorContext(ctx, "Gemini API call failed", "error", err)
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	return c.extractText(ctx, resp)
}

func (c *sdkClient) extractText(ctx context.Context, resp *genai.GenerateContentResponse) (string, error) {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		reason := fmt.Sprintf("%v", resp.PromptFeedback.BlockReason)
		if resp.PromptFeedback.BlockReasonMessage != "" {
			reason = resp.PromptFeedback.BlockReasonMessage
		}
		c.log.ErrorContext(ctx, "Gemini request blocked", "reason", reason)
		return "", fmt.Errorf("completion blocked by safety filter: %s", reason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		finishReason := "unknown"
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != genai.FinishReasonUnspecified {
			finishReason = fmt.Sprintf("%v", resp.Candidates[0].FinishReason)
		}
		c.log.WarnContext(ctx, "Gemini response missing content", "finish_reason", finishReason)
		return "", fmt.Errorf("completion returned no content, finish reason: %s", finishReason)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("completion returned empty text")
	}

	return text, nil
}
