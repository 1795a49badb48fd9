// Package rules loads the ordered detection rule table.
package rules

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tracker-tv/commit-sentinel/models"
	"gopkg.in/yaml.v3"
)

//go:embed default.json
var defaultRules []byte

var ErrEmptyRuleSet = errors.New("rule set is empty")

var validate = validator.New()

// Default returns the built-in rule table.
func Default() ([]models.DetectionRule, error) {
	return FromJSON(defaultRules)
}

// Load reads a rule table from path; the format follows the extension. An
// empty path selects the built-in table.
func Load(path string) ([]models.DetectionRule, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return FromJSON(data)
	}
}

func FromJSON(data []byte) ([]models.DetectionRule, error) {
	var rules []models.DetectionRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, err
	}
	return checked(rules)
}

func FromYAML(data []byte) ([]models.DetectionRule, error) {
	var rules []models.DetectionRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, err
	}
	return checked(rules)
}

func checked(rules []models.DetectionRule) ([]models.DetectionRule, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyRuleSet
	}
	for i, r := range rules {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return rules, nil
}
