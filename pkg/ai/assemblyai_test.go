package ai

import (
	"testing"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
)

func TestTranscriptText(t *testing.T) {
	text, err := transcriptText(aai.Transcript{Status: aai.TranscriptStatusCompleted, Text: aai.String("  Budget approved. ")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Budget approved." {
		t.Fatalf("unexpected text %q", text)
	}

	_, err = transcriptText(aai.Transcript{Status: aai.TranscriptStatusError, Error: aai.String("audio too short")})
	if err == nil {
		t.Fatal("expected error for failed transcript")
	}
	if Classify(err) != KindInvalidInput {
		t.Fatalf("expected invalid_input, got %s", Classify(err))
	}
}

func TestAssemblyAIParams(t *testing.T) {
	c := &AssemblyAIClient{}
	if p := c.params(); p.LanguageDetection == nil || !*p.LanguageDetection {
		t.Fatal("expected language detection without a language code")
	}

	c.languageCode = "en_us"
	p := c.params()
	if p.LanguageDetection != nil {
		t.Fatal("language detection should be off when a code is set")
	}
	if p.LanguageCode != aai.TranscriptLanguageCode("en_us") {
		t.Fatalf("unexpected language code %q", p.LanguageCode)
	}
}
