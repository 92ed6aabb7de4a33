package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/bnema/nx-sentinel/internal/ports"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	DefaultModel    = "gemini-3-flash-preview"
	DefaultLanguage = "Bengali"
	scriptLength    = 10
)

var (
	ErrMissingAPIKey = errors.New("content provider api key is not configured")
	ErrEmptyResponse = errors.New("content provider returned no text")
)

type Config struct {
	APIKey   string
	Model    string
	Language string
	BaseURL  string
}

// generator is the subset of *genai.Models the provider calls.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Provider implements the content gateway on top of the Gemini API. The SDK
// client is built on first use so a missing key fails the request, not startup.
type Provider struct {
	cfg    Config
	logger *zap.Logger

	mu  sync.Mutex
	gen generator
}

var _ ports.ContentProvider = (*Provider)(nil)

func NewProvider(cfg Config, logger *zap.Logger) *Provider {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Provider{cfg: cfg, logger: logger.Named("gemini")}
}

func (p *Provider) generator(ctx context.Context) (generator, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.gen != nil {
		return p.gen, nil
	}
	if strings.TrimSpace(p.cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  p.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if p.cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: p.cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	p.gen = client.Models

	return p.gen, nil
}

func (p *Provider) ThreatNarrative(ctx context.Context, members []domain.MemberRecord) (string, error) {
	gen, err := p.generator(ctx)
	if err != nil {
		return "", err
	}

	response, err := gen.GenerateContent(ctx, p.cfg.Model, genai.Text(threatPrompt(members, p.cfg.Language)), nil)
	if err != nil {
		return "", fmt.Errorf("generate threat narrative: %w", err)
	}

	text := strings.TrimSpace(responseText(response))
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func (p *Provider) OperationScript(ctx context.Context, target string) ([]string, error) {
	gen, err := p.generator(ctx)
	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	}

	response, err := gen.GenerateContent(ctx, p.cfg.Model, genai.Text(scriptPrompt(target)), config)
	if err != nil {
		return nil, fmt.Errorf("generate operation script: %w", err)
	}

	steps, err := ParseScript(responseText(response))
	if err != nil {
		p.logger.Warn("discarding operation script", zap.String("target", target), zap.Error(err))
		return []string{}, nil
	}

	return steps, nil
}

func threatPrompt(members []domain.MemberRecord, language string) string {
	entries := make([]string, 0, len(members))
	for _, member := range members {
		entries = append(entries, fmt.Sprintf("%s (Joined: %s)", member.Username, member.JoinedDate))
	}

	return fmt.Sprintf(
		"Analyze these members for potential raid patterns or suspicious bot-like names: %s.\n"+
			"Identify the top 2 threats and explain why. Keep it concise in %s language.",
		strings.Join(entries, ", "),
		language,
	)
}

func scriptPrompt(target string) string {
	return fmt.Sprintf(
		"The user has triggered a simulated 'Nuke' purge on server '%s'.\n"+
			"Provide a sequence of %d terminal-style log lines showing structural destruction.\n"+
			"Return as a JSON array of strings.",
		target,
		scriptLength,
	)
}

func responseText(response *genai.GenerateContentResponse) string {
	if response == nil {
		return ""
	}
	return response.Text()
}

// ParseScript decodes a JSON array of strings. Blank input is an empty
// script; anything else that is not an array of strings is malformed.
func ParseScript(text string) ([]string, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	if trimmed == "" {
		return []string{}, nil
	}
	if !strings.HasPrefix(trimmed, "[") {
		return nil, fmt.Errorf("%w: expected a JSON array", domain.ErrMalformedContent)
	}

	var steps []string
	if err := json.Unmarshal([]byte(trimmed), &steps); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedContent, err)
	}
	if steps == nil {
		steps = []string{}
	}

	return steps, nil
}
