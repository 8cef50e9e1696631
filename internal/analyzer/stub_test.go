package analyzer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"quotecheck/internal/schema"
)

func TestStubKeywordHeuristics(t *testing.T) {
	tests := []struct {
		name         string
		quote        string
		wantItems    int
		wantRisk     schema.RiskLevel
		wantCategory schema.NormalizedCategory
	}{
		{
			name:         "brake quote flags red safety-critical item",
			quote:        "Front brake pads replacement - 4500",
			wantItems:    1,
			wantRisk:     schema.RiskRed,
			wantCategory: schema.CategorySafetyCritical,
		},
		{
			name:         "tyre quote flags yellow safety-critical item",
			quote:        "Two new tyres, alignment included",
			wantItems:    1,
			wantRisk:     schema.RiskYellow,
			wantCategory: schema.CategorySafetyCritical,
		},
		{
			name:         "american spelling is recognized",
			quote:        "tire rotation and balance",
			wantItems:    1,
			wantRisk:     schema.RiskYellow,
			wantCategory: schema.CategorySafetyCritical,
		},
		{
			name:         "brake and tyre quote yields both items",
			quote:        "brake fluid flush, tyre replacement",
			wantItems:    2,
			wantRisk:     schema.RiskRed,
			wantCategory: schema.CategorySafetyCritical,
		},
		{
			name:         "unrecognized quote falls back to clarification item",
			quote:        "misc service charges 9999",
			wantItems:    1,
			wantRisk:     schema.RiskYellow,
			wantCategory: schema.CategoryUnknown,
		},
	}

	stub := NewStub("test-model")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := stub.Analyze(context.Background(), tt.quote, "req-1")
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if len(res.LineItems) != tt.wantItems {
				t.Fatalf("expected %d items, got %d", tt.wantItems, len(res.LineItems))
			}
			if res.LineItems[0].RiskLevel != tt.wantRisk {
				t.Errorf("expected risk %s, got %s", tt.wantRisk, res.LineItems[0].RiskLevel)
			}
			if res.LineItems[0].NormalizedCategory != tt.wantCategory {
				t.Errorf("expected category %s, got %s", tt.wantCategory, res.LineItems[0].NormalizedCategory)
			}
			if err := schema.Validate(res); err != nil {
				t.Errorf("stub output must always be schema-valid: %v", err)
			}
			if !res.Metadata.SchemaValid {
				t.Error("stub output must report schema_valid=true")
			}
			for _, it := range res.LineItems {
				if it.Confidence < 0 || it.Confidence > 1 {
					t.Errorf("confidence out of range: %f", it.Confidence)
				}
			}
		})
	}
}

func TestStubDeterminism(t *testing.T) {
	stub := NewStub("test-model")

	a, err := stub.Analyze(context.Background(), "brake pads and tyres", "req-a")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	b, err := stub.Analyze(context.Background(), "brake pads and tyres", "req-b")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	// Same input must be byte-identical apart from request_id, created_at
	// and latency_ms.
	zero := schema.Metadata{}
	a.Metadata, b.Metadata = zero, zero

	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	if string(aj) != string(bj) {
		t.Errorf("stub output not deterministic:\n%s\n%s", aj, bj)
	}
}

func TestDegraded(t *testing.T) {
	res := Degraded("req-1", "test-model")

	if res.Metadata.SchemaValid {
		t.Error("degraded result must report schema_valid=false")
	}
	if res.Metadata.RequestID != "req-1" {
		t.Errorf("expected request id req-1, got %s", res.Metadata.RequestID)
	}
	if res.Disclaimer == "" {
		t.Error("degraded result must carry the disclaimer")
	}
	if len(res.LineItems) == 0 {
		t.Error("degraded result must still be renderable")
	}
	if res.Metadata.CreatedAt.After(time.Now().UTC()) {
		t.Error("created_at must not be in the future")
	}
	// Apart from the validity flag, the degraded body still fits the contract
	// so clients can render it without special cases.
	if err := schema.Validate(res); err != nil {
		t.Errorf("degraded body should satisfy the contract: %v", err)
	}
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	if _, err := NewOpenAI("", "gpt-4o-mini"); err == nil {
		t.Error("expected error for missing api key")
	}
	cli, err := NewOpenAI("sk-test", "")
	if err != nil {
		t.Fatalf("NewOpenAI() error = %v", err)
	}
	if cli == nil {
		t.Fatal("expected client")
	}
}
