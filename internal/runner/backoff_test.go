package runner

import (
	"testing"
	"time"
)

func TestPolicy_Next_Exponential(t *testing.T) {
	policy := Policy{
		Initial: time.Second,
		Factor:  2,
		Max:     30 * time.Second,
	}

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second}, // capped at max
		{6, 30 * time.Second}, // stays at max
	}

	for _, tt := range tests {
		got := policy.Next(tt.attempt)
		if got != tt.expected {
			t.Errorf("attempt %d: expected %v, got %v", tt.attempt, tt.expected, got)
		}
	}
}

func TestPolicy_Next_Monotonic(t *testing.T) {
	policy := Policy{
		Initial: 500 * time.Millisecond,
		Factor:  2,
		Max:     30 * time.Second,
	}

	// Без jitter последовательность не убывает вплоть до потолка
	prev := time.Duration(0)
	for attempt := 0; attempt < 12; attempt++ {
		got := policy.Next(attempt)
		if got < prev {
			t.Errorf("attempt %d: %v < previous %v", attempt, got, prev)
		}
		if got > policy.Max {
			t.Errorf("attempt %d: %v exceeds max %v", attempt, got, policy.Max)
		}
		prev = got
	}
}

func TestPolicy_Next_ZeroValues(t *testing.T) {
	var policy Policy

	got := policy.Next(0)
	if got != time.Second {
		t.Errorf("expected 1s default, got %v", got)
	}

	// Потолок по умолчанию — 30 секунд
	got = policy.Next(20)
	if got != 30*time.Second {
		t.Errorf("expected 30s default cap, got %v", got)
	}
}

func TestFullJitter_Bounds(t *testing.T) {
	d := 8 * time.Second

	for i := 0; i < 1000; i++ {
		got := FullJitter(d)
		if got < 0 || got > d {
			t.Fatalf("jitter %v outside [0, %v]", got, d)
		}
	}
}

func TestFullJitter_Zero(t *testing.T) {
	if got := FullJitter(0); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()

	if policy.Factor != 2 {
		t.Errorf("expected factor 2, got %d", policy.Factor)
	}
	if policy.Max != 30*time.Second {
		t.Errorf("expected 30s cap, got %v", policy.Max)
	}
	if policy.Jitter == nil {
		t.Error("default policy should have jitter")
	}
}
