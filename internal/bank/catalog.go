package bank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/adixit/intervue/internal/skills"
)

// catalogEntry is the JSON shape of one question in an external catalog file.
type catalogEntry struct {
	Text       string   `json:"text"`
	Format     string   `json:"format"`
	Options    []string `json:"options,omitempty"`
	Answer     string   `json:"answer,omitempty"`
	Keyword    string   `json:"keyword,omitempty"`
	Skill      string   `json:"skill"`
	Difficulty string   `json:"difficulty"`
}

// catalogSchema is the JSON Schema an external catalog must satisfy.
// Structural validation happens here; semantic checks (answer among options,
// every tier populated) happen in New.
var catalogSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type":     "object",
		"required": []any{"text", "format", "skill", "difficulty"},
		"properties": map[string]any{
			"text":       map[string]any{"type": "string", "minLength": 1},
			"format":     map[string]any{"enum": []any{"multiple_choice", "free_text"}},
			"options":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"answer":     map[string]any{"type": "string"},
			"keyword":    map[string]any{"type": "string"},
			"skill":      map[string]any{"type": "string", "minLength": 1},
			"difficulty": map[string]any{"enum": []any{"easy", "medium", "hard"}},
		},
		"additionalProperties": false,
	},
}

// LoadCatalog reads an external JSON question catalog and builds a Bank from
// it. The file is validated against the catalog schema before any question is
// accepted; violations surface as a ConfigurationError.
func LoadCatalog(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog builds a Bank from raw catalog JSON.
func ParseCatalog(raw []byte) (*Bank, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("catalog is not valid JSON: %v", err)}
	}

	compiled, err := compileCatalogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("catalog schema violation: %v", err)}
	}

	var entries []catalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("decode catalog: %v", err)}
	}

	questions := make([]Question, 0, len(entries))
	for _, e := range entries {
		questions = append(questions, Question{
			Text:       e.Text,
			Format:     Format(e.Format),
			Options:    e.Options,
			Answer:     e.Answer,
			Keyword:    e.Keyword,
			Skill:      skills.Tag(e.Skill),
			Difficulty: Difficulty(e.Difficulty),
		})
	}

	return New(questions)
}

func compileCatalogSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	const url = "schema://question-catalog.json"
	if err := c.AddResource(url, catalogSchema); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
}

// Default returns the built-in question catalog.
func Default() *Bank {
	b, err := New(defaultQuestions())
	if err != nil {
		// The built-in catalog is static; a validation failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return b
}

func defaultQuestions() []Question {
	return []Question{
		{
			Text:       "What is Python?",
			Format:     FormatMultipleChoice,
			Options:    []string{"Snake", "Programming language", "Database", "OS"},
			Answer:     "Programming language",
			Skill:      "python",
			Difficulty: Easy,
		},
		{
			Text:       "Which keyword is used to define a function in Python?",
			Format:     FormatMultipleChoice,
			Options:    []string{"func", "define", "def", "function"},
			Answer:     "def",
			Skill:      "python",
			Difficulty: Easy,
		},
		{
			Text:       "Which library is used for data analysis?",
			Format:     FormatMultipleChoice,
			Options:    []string{"HTML", "CSS", "Pandas", "Bootstrap"},
			Answer:     "Pandas",
			Skill:      "data analysis",
			Difficulty: Medium,
		},
		{
			Text:       "Which SQL command retrieves data?",
			Format:     FormatMultipleChoice,
			Options:    []string{"INSERT", "DELETE", "SELECT", "UPDATE"},
			Answer:     "SELECT",
			Skill:      "sql",
			Difficulty: Medium,
		},
		{
			Text:       "What improves ML model performance?",
			Format:     FormatMultipleChoice,
			Options:    []string{"More UI", "More data", "More comments", "More colors"},
			Answer:     "More data",
			Skill:      "machine learning",
			Difficulty: Hard,
		},
		{
			Text:   "What does overfitting mean?",
			Format: FormatMultipleChoice,
			Options: []string{
				"Model performs well on training but poorly on test data",
				"Model is too simple",
				"Model trains too slowly",
				"Model has less data",
			},
			Answer:     "Model performs well on training but poorly on test data",
			Skill:      "machine learning",
			Difficulty: Hard,
		},
		{
			Text:       "Describe a time you solved a hard production problem. What was your approach?",
			Format:     FormatFreeText,
			Keyword:    "debug",
			Skill:      "problem solving",
			Difficulty: Hard,
		},
	}
}
