package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// NormalizedCategory is the controlled taxonomy for quote line items.
// Kept intentionally small so behaviour stays stable and explainable.
type NormalizedCategory string

const (
	CategorySafetyCritical   NormalizedCategory = "safety_critical"
	CategoryPreventive       NormalizedCategory = "preventive_maintenance"
	CategoryWearAndTear      NormalizedCategory = "wear_and_tear"
	CategoryCosmeticOrUpsell NormalizedCategory = "cosmetic_or_upsell"
	CategoryUnknown          NormalizedCategory = "unknown_needs_clarification"
)

// RecommendedAction is the suggested next step for a line item. This is not
// mechanical advice; it is a structured recommendation (approve/ask/defer/inspect).
type RecommendedAction string

const (
	ActionApprove         RecommendedAction = "approve"
	ActionConsider        RecommendedAction = "consider"
	ActionDefer           RecommendedAction = "defer"
	ActionAskForEvidence  RecommendedAction = "ask_for_evidence"
	ActionNeedsInspection RecommendedAction = "needs_inspection"
	ActionUnknown         RecommendedAction = "unknown"
)

// RiskLevel flags a line item: green = low urgency, yellow = needs
// verification, red = potentially safety-critical.
type RiskLevel string

const (
	RiskGreen  RiskLevel = "green"
	RiskYellow RiskLevel = "yellow"
	RiskRed    RiskLevel = "red"
)

// RefusalType categorizes refusals for risky or inappropriate requests.
type RefusalType string

const (
	RefusalUnsafeInstruction RefusalType = "unsafe_instruction"
	RefusalIllegal           RefusalType = "illegal"
	RefusalMedicalLikeAdvice RefusalType = "medical_like_advice"
	RefusalOther             RefusalType = "other"
)

// Price is optional price information for a line item.
type Price struct {
	Amount   float64 `json:"amount" validate:"gte=0"`
	Currency string  `json:"currency" validate:"required"`
}

// LineItem is a single extracted line item from the quote.
type LineItem struct {
	NameRaw            string             `json:"name_raw" validate:"required"`
	NormalizedCategory NormalizedCategory `json:"normalized_category" validate:"required,oneof=safety_critical preventive_maintenance wear_and_tear cosmetic_or_upsell unknown_needs_clarification"`
	RecommendedAction  RecommendedAction  `json:"recommended_action" validate:"required,oneof=approve consider defer ask_for_evidence needs_inspection unknown"`
	RiskLevel          RiskLevel          `json:"risk_level" validate:"required,oneof=green yellow red"`
	Confidence         float64            `json:"confidence" validate:"gte=0,lte=1"`
	RationaleShort     string             `json:"rationale_short" validate:"required"`
	Price              *Price             `json:"price,omitempty"`
	EvidenceNeeded     []string           `json:"evidence_needed"`
}

// UncertaintyMarkers are high-level flags that encourage verification-first
// behaviour in the product UX and show up in run logs.
type UncertaintyMarkers struct {
	AmbiguousItemsPresent     bool `json:"ambiguous_items_present"`
	MissingVehicleContext     bool `json:"missing_vehicle_context"`
	NeedsMechanicConfirmation bool `json:"needs_mechanic_confirmation"`
}

// Refusal is a structured refusal explanation.
type Refusal struct {
	Type    RefusalType `json:"type" validate:"required,oneof=unsafe_instruction illegal medical_like_advice other"`
	Message string      `json:"message" validate:"required"`
}

// Metadata carries per-run server truth for traceability. The service always
// overwrites these fields; values produced by the model are never trusted.
type Metadata struct {
	PromptVersion string    `json:"prompt_version" validate:"required"`
	Model         string    `json:"model" validate:"required"`
	CreatedAt     time.Time `json:"created_at"`
	RequestID     string    `json:"request_id" validate:"required"`
	LatencyMS     int64     `json:"latency_ms" validate:"gte=0"`
	SchemaValid   bool      `json:"schema_valid"`
}

// QuoteCheckResult is the top-level response returned by POST /analyze.
// The disclaimer is mandatory so the output cannot be mistaken for
// professional advice.
type QuoteCheckResult struct {
	LineItems             []LineItem         `json:"line_items" validate:"required,min=1,dive"`
	OverallSummary        []string           `json:"overall_summary" validate:"required,min=3,max=5,dive,required"`
	VerificationQuestions []string           `json:"verification_questions" validate:"required,min=3,max=8,dive,required"`
	ThingsToVerify        []string           `json:"things_to_verify" validate:"required,min=3,dive,required"`
	UncertaintyMarkers    UncertaintyMarkers `json:"uncertainty_markers"`
	Refusals              []Refusal          `json:"refusals" validate:"dive"`
	Disclaimer            string             `json:"disclaimer" validate:"required"`
	Metadata              Metadata           `json:"metadata"`
}

// Coerce decodes raw analyzer output into the contract. Unknown fields are
// ignored; a decode failure is reported so the caller can flag the run as
// schema-invalid instead of failing the request.
func Coerce(raw []byte) (*QuoteCheckResult, error) {
	var res QuoteCheckResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return &res, nil
}

// Validate checks a result against the contract (enums, ranges, list
// bounds). Callers treat a failure as schema_valid=false, not as a fatal
// error.
func Validate(res *QuoteCheckResult) error {
	if err := validate.Struct(res); err != nil {
		return fmt.Errorf("result failed contract validation: %w", err)
	}
	return nil
}

// RiskCounts tallies line items by risk level. Every level appears in the
// map even when zero, so log consumers get a stable shape.
func RiskCounts(res *QuoteCheckResult) map[string]int {
	counts := map[string]int{
		string(RiskRed):    0,
		string(RiskYellow): 0,
		string(RiskGreen):  0,
	}
	for _, it := range res.LineItems {
		if _, ok := counts[string(it.RiskLevel)]; ok {
			counts[string(it.RiskLevel)]++
		}
	}
	return counts
}
