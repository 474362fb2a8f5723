package ai

import (
	"testing"

	"google.golang.org/genai"
)

func TestCandidateText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "- First point\n"}, nil, {Text: "- Second point "}}},
		}},
	}
	got, err := candidateText(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "- First point\n- Second point" {
		t.Fatalf("unexpected text %q", got)
	}

	if _, err := candidateText(&genai.GenerateContentResponse{}); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
