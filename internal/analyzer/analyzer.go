package analyzer

import (
	"context"
	"time"

	"quotecheck/internal/prompt"
	"quotecheck/internal/schema"
)

// Disclaimer is mandatory on every result, degraded ones included.
const Disclaimer = "Not safety advice; verify with a certified mechanic."

// Analyzer produces a QuoteCheckResult from raw quote text. Implementations
// must always return a usable result: a non-nil error marks the result as
// degraded (schema_valid=false), never a failed request.
type Analyzer interface {
	Analyze(ctx context.Context, quoteText, requestID string) (*schema.QuoteCheckResult, error)
}

// Degraded builds the fallback result used when the provider fails or its
// output cannot be coerced into the contract. It is intentionally generic:
// the caller still gets a renderable body with schema_valid=false.
func Degraded(requestID, model string) *schema.QuoteCheckResult {
	return &schema.QuoteCheckResult{
		LineItems: []schema.LineItem{
			{
				NameRaw:            "Analysis unavailable",
				NormalizedCategory: schema.CategoryUnknown,
				RecommendedAction:  schema.ActionUnknown,
				RiskLevel:          schema.RiskYellow,
				Confidence:         0,
				RationaleShort:     "The analyzer could not produce a reliable result for this quote. Treat every item as unverified.",
				EvidenceNeeded:     []string{"Itemized parts + labour list"},
			},
		},
		OverallSummary: []string{
			"The automated analysis failed for this request.",
			"No item in the quote has been classified or risk-checked.",
			"Verify each line item directly with the service center.",
		},
		VerificationQuestions: []string{
			"Can you share an itemized breakdown of parts and labour?",
			"Which items are safety-critical vs optional?",
			"What evidence supports each recommended item?",
		},
		ThingsToVerify: []string{
			"Request an itemized parts + labour breakdown for each line item.",
			"Ask for measurements or photos where applicable.",
			"Confirm whether each recommendation is OEM-specified or shop-suggested.",
		},
		UncertaintyMarkers: schema.UncertaintyMarkers{
			AmbiguousItemsPresent:     true,
			MissingVehicleContext:     true,
			NeedsMechanicConfirmation: true,
		},
		Refusals:   []schema.Refusal{},
		Disclaimer: Disclaimer,
		Metadata: schema.Metadata{
			PromptVersion: prompt.Version,
			Model:         model,
			CreatedAt:     time.Now().UTC(),
			RequestID:     requestID,
			SchemaValid:   false,
		},
	}
}
