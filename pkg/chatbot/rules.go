package chatbot

import (
	"sort"
	"strings"
	"unicode"
)

// Rule answers a visitor message without calling the assistant when any of
// its keywords appears. Keywords may be phrases ("free estimate").
//
// A Standalone rule only matches when the message is made up of its keywords
// and nothing else, so "hello" matches but "hello, how much for a roof" does not.
type Rule struct {
	Name       string
	Keywords   []string
	Reply      string
	Standalone bool
}

// Engine evaluates rules in order; the first match wins.
type Engine struct {
	rules []compiledRule
}

type compiledRule struct {
	Rule
	phrases []string
}

func NewEngine(rules []Rule) *Engine {
	e := &Engine{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		cr := compiledRule{Rule: r}
		for _, k := range r.Keywords {
			if n := normalize(k); n != "  " {
				cr.phrases = append(cr.phrases, n)
			}
		}
		if r.Standalone {
			// longest first so "hi there" is stripped before "hi"
			sort.SliceStable(cr.phrases, func(i, j int) bool { return len(cr.phrases[i]) > len(cr.phrases[j]) })
		}
		e.rules = append(e.rules, cr)
	}
	return e
}

// Match returns the first rule whose keyword appears on word boundaries.
func (e *Engine) Match(text string) (Rule, bool) {
	normalized := normalize(text)
	for _, r := range e.rules {
		if r.Standalone {
			if len(r.phrases) > 0 && onlyPhrases(normalized, r.phrases) {
				return r.Rule, true
			}
			continue
		}
		for _, phrase := range r.phrases {
			if strings.Contains(normalized, phrase) {
				return r.Rule, true
			}
		}
	}
	return Rule{}, false
}

// onlyPhrases reports whether text is nothing but repetitions of phrases.
func onlyPhrases(text string, phrases []string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	for {
		before := text
		for _, phrase := range phrases {
			text = strings.ReplaceAll(text, phrase, " ")
		}
		if text == before {
			break
		}
	}
	return strings.TrimSpace(text) == ""
}

// normalize lowercases, collapses every non-alphanumeric run into one space and
// pads the result so " word " lookups respect word boundaries.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte(' ')
	lastSpace := true
	for _, r := range strings.ToLower(text) {
		if r == '\'' || r == '’' {
			// "what's" and "whats" match the same keywords
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	if !lastSpace {
		b.WriteByte(' ')
	}
	out := b.String()
	if out == " " {
		return "  "
	}
	return out
}
