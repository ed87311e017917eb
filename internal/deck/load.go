package deck

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// deckFile is the on-disk deck schema: top-level meta plus questions.
type deckFile struct {
	Meta      metaFile       `json:"meta" yaml:"meta"`
	Questions []questionFile `json:"questions" yaml:"questions"`
}

type metaFile struct {
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Policy      *policyFile `json:"policy" yaml:"policy"`
}

// policyFile uses pointers so omitted fields can take defaults while
// explicit zero values still reach validation.
type policyFile struct {
	MaxAttempts           *int  `json:"max_attempts" yaml:"max_attempts"`
	RevealAnswerOnFailout *bool `json:"reveal_answer_on_failout" yaml:"reveal_answer_on_failout"`
}

type questionFile struct {
	ID                string   `json:"id" yaml:"id"`
	Prompt            string   `json:"prompt" yaml:"prompt"`
	AcceptableAnswers []string `json:"acceptable_answers" yaml:"acceptable_answers"`
	Hint              string   `json:"hint" yaml:"hint"`
	Rubric            string   `json:"rubric" yaml:"rubric"`
}

// Load reads, parses, and validates a deck file. JSON is selected by file
// extension; everything else is decoded as YAML.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	file, err := parseDeck(data, path)
	if err != nil {
		return nil, err
	}
	loaded := assemble(file)
	normalized, err := Normalize(loaded)
	if err != nil {
		return nil, err
	}
	return normalized, nil
}

func parseDeck(data []byte, path string) (deckFile, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return parseJSONDeck(data)
	}
	return parseYAMLDeck(data)
}

func parseJSONDeck(data []byte) (deckFile, error) {
	var file deckFile
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return deckFile{}, fmt.Errorf("parse json: %w", err)
	}
	var extra any
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return deckFile{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return deckFile{}, fmt.Errorf("parse json: %w", err)
	}
	return file, nil
}

func parseYAMLDeck(data []byte) (deckFile, error) {
	var file deckFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return deckFile{}, fmt.Errorf("parse yaml: %w", err)
	}
	var extra any
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return deckFile{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return deckFile{}, fmt.Errorf("parse yaml: %w", err)
	}
	return file, nil
}

// assemble maps the file schema onto the model, applying policy defaults for
// omitted fields only.
func assemble(file deckFile) *Deck {
	loaded := &Deck{
		Title:       file.Meta.Title,
		Description: file.Meta.Description,
		Policy: Policy{
			MaxAttempts:           DefaultMaxAttempts,
			RevealAnswerOnFailout: false,
		},
	}
	if policy := file.Meta.Policy; policy != nil {
		if policy.MaxAttempts != nil {
			loaded.Policy.MaxAttempts = *policy.MaxAttempts
		}
		if policy.RevealAnswerOnFailout != nil {
			loaded.Policy.RevealAnswerOnFailout = *policy.RevealAnswerOnFailout
		}
	}
	for _, q := range file.Questions {
		loaded.Questions = append(loaded.Questions, Question{
			ID:                q.ID,
			Prompt:            q.Prompt,
			AcceptableAnswers: q.AcceptableAnswers,
			Hint:              q.Hint,
			Rubric:            q.Rubric,
		})
	}
	return loaded
}
