package domain

import "testing"

func TestClassifier_StageParams(t *testing.T) {
	c := &Classifier{
		ID:       "c1",
		Genes:    []int{7157, 7158, 7159, 7161},
		Diseases: []string{"ACC", "BLCA"},
	}

	params := c.StageParams()

	if params["gene_ids"] != "7157-7158-7159-7161" {
		t.Errorf("expected gene_ids=7157-7158-7159-7161, got %q", params["gene_ids"])
	}
	if params["disease_acronyms"] != "ACC-BLCA" {
		t.Errorf("expected disease_acronyms=ACC-BLCA, got %q", params["disease_acronyms"])
	}
}

func TestClassifier_StageParams_Single(t *testing.T) {
	c := &Classifier{ID: "c2", Genes: []int{7157}, Diseases: []string{"ACC"}}

	params := c.StageParams()

	if params["gene_ids"] != "7157" {
		t.Errorf("expected gene_ids=7157, got %q", params["gene_ids"])
	}
	if params["disease_acronyms"] != "ACC" {
		t.Errorf("expected disease_acronyms=ACC, got %q", params["disease_acronyms"])
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []ClassifierStatus{StatusCompleted, StatusFailed, StatusReleased}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}

	active := []ClassifierStatus{StatusClaimed, StatusComputing}
	for _, s := range active {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}
