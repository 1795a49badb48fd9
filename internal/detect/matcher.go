// Package detect tests text against an ordered table of credential rules.
package detect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tracker-tv/commit-sentinel/models"
)

// Match identifies the first line that hit a rule. Line is 1-based.
type Match struct {
	Line int
	Rule models.DetectionRule
}

type compiledRule struct {
	rule models.DetectionRule
	re   *regexp.Regexp
}

// Matcher is immutable after construction and safe for concurrent use.
type Matcher struct {
	rules []compiledRule
}

// NewMatcher compiles every rule case-insensitively, keeping the table order.
func NewMatcher(rules []models.DetectionRule) (*Matcher, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling rule %s: %w", r.Label, err)
		}
		compiled = append(compiled, compiledRule{rule: r, re: re})
	}
	return &Matcher{rules: compiled}, nil
}

// Detect returns the first (line, rule) pair that matches. Lines are scanned
// in order and, within a line, rules in table order.
func (m *Matcher) Detect(text string) (Match, bool) {
	if text == "" {
		return Match{}, false
	}

	for i, line := range strings.Split(text, "\n") {
		for _, r := range m.rules {
			if r.re.MatchString(line) {
				return Match{Line: i + 1, Rule: r.rule}, true
			}
		}
	}
	return Match{}, false
}

func (m *Matcher) Rules() []models.DetectionRule {
	out := make([]models.DetectionRule, len(m.rules))
	for i, r := range m.rules {
		out[i] = r.rule
	}
	return out
}
