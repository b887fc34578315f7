package bank

import (
	"errors"
	"testing"
)

const validCatalogJSON = `[
	{"text": "What is Go?", "format": "multiple_choice", "options": ["Language", "Game"], "answer": "Language", "skill": "problem solving", "difficulty": "easy"},
	{"text": "Which SQL clause filters rows?", "format": "multiple_choice", "options": ["WHERE", "ORDER BY"], "answer": "WHERE", "skill": "sql", "difficulty": "medium"},
	{"text": "Explain index selection in a relational database.", "format": "free_text", "keyword": "index", "skill": "sql", "difficulty": "hard"}
]`

func TestParseCatalog_Valid(t *testing.T) {
	b, err := ParseCatalog([]byte(validCatalogJSON))
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	if b.Size() != 3 {
		t.Errorf("bank size = %d, want 3", b.Size())
	}

	hard, err := b.QuestionsFor(Hard)
	if err != nil {
		t.Fatalf("QuestionsFor(hard): %v", err)
	}
	if hard[0].Format != FormatFreeText {
		t.Errorf("hard question format = %s, want free_text", hard[0].Format)
	}
	if hard[0].Keyword != "index" {
		t.Errorf("keyword = %q, want %q", hard[0].Keyword, "index")
	}
}

func TestParseCatalog_RejectsInvalidJSON(t *testing.T) {
	_, err := ParseCatalog([]byte("{not json"))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigurationError", err)
	}
}

func TestParseCatalog_RejectsUnknownDifficulty(t *testing.T) {
	raw := `[{"text": "q", "format": "multiple_choice", "options": ["a", "b"], "answer": "a", "skill": "sql", "difficulty": "legendary"}]`

	_, err := ParseCatalog([]byte(raw))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigurationError", err)
	}
}

func TestParseCatalog_RejectsMissingFields(t *testing.T) {
	raw := `[{"format": "multiple_choice", "options": ["a", "b"], "answer": "a", "difficulty": "easy"}]`

	_, err := ParseCatalog([]byte(raw))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigurationError", err)
	}
}

func TestParseCatalog_RejectsUnknownProperty(t *testing.T) {
	raw := `[{"text": "q", "format": "multiple_choice", "options": ["a", "b"], "answer": "a", "skill": "sql", "difficulty": "easy", "hint": "x"}]`

	_, err := ParseCatalog([]byte(raw))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigurationError", err)
	}
}
