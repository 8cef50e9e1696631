package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"quotecheck/internal/prompt"
	"quotecheck/internal/schema"
)

const (
	defaultChatTimeout     = 30 * time.Second
	defaultChatTemperature = 0.2
)

// OpenAI calls the OpenAI Chat Completions API with a strict json_schema
// response format and validates the output against the contract. Provider
// failures and schema-invalid output both yield a degraded result plus a
// non-nil error; the request handler never sees a hard failure from here.
type OpenAI struct {
	model  openai.ChatModel
	client *openai.Client
}

// NewOpenAI builds a client with defaults against api.openai.com.
func NewOpenAI(apiKey string, model openai.ChatModel) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	cli := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAI{
		model:  model,
		client: &cli,
	}, nil
}

func (a *OpenAI) Analyze(ctx context.Context, quoteText, requestID string) (*schema.QuoteCheckResult, error) {
	if a == nil || a.client == nil {
		return Degraded(requestID, ""), fmt.Errorf("nil openai client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultChatTimeout)
	defer cancel()

	started := time.Now()
	resp, err := a.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:       a.model,
		Messages:    prompt.Messages(quoteText, schema.ResultJSONSchemaString()),
		Temperature: openai.Float(defaultChatTemperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "quote_check_result",
					Strict: openai.Bool(true),
					Schema: schema.ResultJSONSchema(),
				},
			},
		},
	})
	latency := time.Since(started).Milliseconds()
	if err != nil {
		res := Degraded(requestID, string(a.model))
		res.Metadata.LatencyMS = latency
		return res, fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		res := Degraded(requestID, string(a.model))
		res.Metadata.LatencyMS = latency
		return res, fmt.Errorf("openai: no choices returned")
	}

	res, err := schema.Coerce([]byte(resp.Choices[0].Message.Content))
	if err != nil {
		degraded := Degraded(requestID, string(a.model))
		degraded.Metadata.LatencyMS = latency
		return degraded, err
	}

	// Metadata is server truth; whatever the model generated is replaced.
	res.Metadata = schema.Metadata{
		PromptVersion: prompt.Version,
		Model:         string(a.model),
		CreatedAt:     time.Now().UTC(),
		RequestID:     requestID,
		LatencyMS:     latency,
		SchemaValid:   true,
	}
	if verr := schema.Validate(res); verr != nil {
		res.Metadata.SchemaValid = false
		return res, verr
	}
	return res, nil
}
