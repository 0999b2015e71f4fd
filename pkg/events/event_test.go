package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := "loan-123"

	before := time.Now().UTC()
	event := NewBaseEvent("lending.loan.created", aggregateID, "Loan")
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "lending.loan.created" {
		t.Errorf("expected event type %q, got %q", "lending.loan.created", event.EventType())
	}

	if event.AggregateID() != aggregateID {
		t.Errorf("expected aggregate ID %v, got %v", aggregateID, event.AggregateID())
	}

	if event.AggregateType() != "Loan" {
		t.Errorf("expected aggregate type %q, got %q", "Loan", event.AggregateType())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestBaseEventSerializesToJSON(t *testing.T) {
	event := NewBaseEvent("lending.loan.payment_applied", "loan-456", "Loan")

	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("expected valid JSON payload, got error: %v", err)
	}

	if parsed["event_type"] != "lending.loan.payment_applied" {
		t.Errorf("expected event_type in payload, got %v", parsed["event_type"])
	}

	if parsed["aggregate_id"] != "loan-456" {
		t.Errorf("expected aggregate_id in payload, got %v", parsed["aggregate_id"])
	}
}
