package prompt

import (
	"fmt"

	"github.com/openai/openai-go/v3"
)

// Version is the single source of truth for prompt iteration. Prompt changes
// are product changes; every run log reports this value so eval and
// observability stay consistent.
const Version = "quotecheck_v0.1"

// Kept concise to control cost; structured output carries the detail.
const systemPrompt = `You are QuoteCheck, a service quote review assistant.
Your job is to help users understand a service quote by classifying items, flagging risks, and suggesting verification questions.
Be uncertainty-first: when unclear, ask for evidence and mark unknown_needs_clarification.
Refuse requests that encourage unsafe actions (e.g., skipping brakes). Always include the disclaimer.`

const developerPrompt = `Return ONLY valid JSON that matches the provided schema. Do not include extra keys.
Keep rationale_short to 1-2 sentences.
Use the v0 taxonomy and enums exactly.
If vehicle context is missing (make/model/year/mileage), set missing_vehicle_context=true and ask for it in verification_questions.
Default additives/flushes/coatings to cosmetic_or_upsell unless strong evidence is present.
Always include: "Not safety advice; verify with a certified mechanic."`

// Messages builds the chat payload for the model: system and developer
// instructions plus the user's quote with the output schema attached.
func Messages(quoteText, schemaJSON string) []openai.ChatCompletionMessageParamUnion {
	userContent := fmt.Sprintf(
		"Here is a service quote. Analyze it and return the structured JSON result.\n\nQUOTE:\n%s\n\nOUTPUT JSON SCHEMA:\n%s",
		quoteText, schemaJSON,
	)
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(systemPrompt),
				},
			},
		},
		{
			OfDeveloper: &openai.ChatCompletionDeveloperMessageParam{
				Content: openai.ChatCompletionDeveloperMessageParamContentUnion{
					OfString: openai.String(developerPrompt),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(userContent),
				},
			},
		},
	}
}
