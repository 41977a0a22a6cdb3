// Package aiclient implements the fallback epic classifier on top of an
// OpenAI-compatible chat completion API. It is only consulted when the
// keyword pass ties; the pipeline runs fine without it.
package aiclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/abdulahadd002/epic-dev-assignment/internal/contract"
	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// maxAnswerTokens bounds the completion; the expected answer is a single
// category name.
const maxAnswerTokens = 20

// Classifier asks a chat model to pick one taxonomy category for an epic.
// It implements contract.AIClassifier.
type Classifier struct {
	client *openai.Client
	model  string
}

var _ contract.AIClassifier = (*Classifier)(nil)

// New builds a Classifier from the runtime configuration. It returns nil
// when no API key is configured, which callers pass straight through as an
// absent classifier.
func New(cfg *contract.Config) *Classifier {
	if cfg.AIAPIKey == "" {
		return nil
	}

	clientConfig := openai.DefaultConfig(cfg.AIAPIKey)
	if cfg.AIBaseURL != "" {
		clientConfig.BaseURL = cfg.AIBaseURL
	}

	model := cfg.AIModel
	if model == "" {
		model = DefaultModel
	}

	return &Classifier{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Classify sends the epic text to the model and maps its answer onto the
// taxonomy. An answer that names no known category is an error; the caller
// treats any error as "no AI available" and falls back to keyword order.
func (c *Classifier) Classify(ctx context.Context, title, description string) (schema.Category, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(title, description)},
		},
		Temperature: 0.1,
		MaxTokens:   maxAnswerTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return matchCategory(resp.Choices[0].Message.Content)
}

// systemPrompt instructs the model to answer with exactly one category name.
func systemPrompt() string {
	names := make([]string, 0, len(schema.ClassifierCategories))
	for _, cat := range schema.ClassifierCategories {
		names = append(names, string(cat))
	}
	return "You classify software development epics. Reply with exactly one of the " +
		"following category names and nothing else:\n" + strings.Join(names, "\n")
}

func userPrompt(title, description string) string {
	if description == "" {
		return title
	}
	return title + "\n\n" + description
}

// matchCategory maps a model answer onto a taxonomy category. Exact
// case-insensitive matches win; otherwise the first category whose name
// occurs in the answer is taken, so chatty answers like "I'd say Backend
// Development." still resolve.
func matchCategory(answer string) (schema.Category, error) {
	cleaned := strings.ToLower(strings.Trim(strings.TrimSpace(answer), `"'.`))
	if cleaned == "" {
		return "", fmt.Errorf("empty classifier answer")
	}

	for _, cat := range schema.ClassifierCategories {
		if cleaned == strings.ToLower(string(cat)) {
			return cat, nil
		}
	}
	for _, cat := range schema.ClassifierCategories {
		if strings.Contains(cleaned, strings.ToLower(string(cat))) {
			return cat, nil
		}
	}

	return "", fmt.Errorf("unrecognized category %q", answer)
}
