package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sirupsen/logrus"

	"github.com/nicfin/finhealth-service/internal/config"
	"github.com/nicfin/finhealth-service/internal/models"
)

// systemPrompt pins the response shape so the reply parses as panels.
const systemPrompt = `You are a personal finance coach writing dashboard copy. ` +
	`Respond with a single JSON object with exactly three string fields: ` +
	`"left", "middle" and "right". No markdown and no text outside the JSON object.`

// Client handles integration with the external text-generation service.
type Client struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	log       *logrus.Logger
}

// NewClient initializes a new insight client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	var opts []option.RequestOption
	if cfg.InsightAPIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.InsightAPIKey))
	}
	if cfg.InsightBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.InsightBaseURL))
	}
	return &Client{
		client:    anthropic.NewClient(opts...),
		model:     anthropic.Model(cfg.InsightModel),
		maxTokens: cfg.InsightMaxTokens,
		log:       log,
	}
}

// GeneratePanels sends the rendered prompt and parses the three-panel reply.
func (c *Client) GeneratePanels(ctx context.Context, prompt string) (models.NarrativePanels, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return models.NarrativePanels{}, fmt.Errorf("request failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	panels, err := parsePanels(sb.String())
	if err != nil {
		return models.NarrativePanels{}, err
	}

	c.log.Debugf("Insight panels generated (%d output tokens)", msg.Usage.OutputTokens)
	return panels, nil
}

// parsePanels decodes the model reply, tolerating a fenced code block.
func parsePanels(raw string) (models.NarrativePanels, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var panels models.NarrativePanels
	if err := json.Unmarshal([]byte(text), &panels); err != nil {
		return models.NarrativePanels{}, fmt.Errorf("failed to parse panel response: %w", err)
	}
	return panels, nil
}
