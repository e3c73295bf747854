// Package intent classifies chat messages into emotions, conversational
// intents and directory intents, and extracts the search query a directory
// intent operates on.
//
// Every classifier is an ordered keyword table evaluated top to bottom.
// The first rule with a trigger contained in the lower-cased message wins,
// so reordering rules changes behavior.
package intent

import "strings"

// Rule pairs a label with the lower-case phrases that select it.
type Rule struct {
	Label    string
	Triggers []string
}

// Matcher evaluates Rules in declaration order.
type Matcher struct {
	rules []Rule
}

// NewMatcher creates a matcher over rules. The slice is not copied.
func NewMatcher(rules []Rule) *Matcher {
	return &Matcher{rules: rules}
}

// Match returns the label of the first rule with a trigger contained in text.
// Matching is case-insensitive.
func (m *Matcher) Match(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, r := range m.rules {
		for _, trigger := range r.Triggers {
			if strings.Contains(lower, trigger) {
				return r.Label, true
			}
		}
	}
	return "", false
}

// Labels returns the rule labels in priority order.
func (m *Matcher) Labels() []string {
	labels := make([]string, len(m.rules))
	for i, r := range m.rules {
		labels[i] = r.Label
	}
	return labels
}
