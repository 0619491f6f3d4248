// Package grammar turns free text into calendar candidates. The Grammar
// interface is what the resolver depends on; Phrases, When and Chain are the
// implementations wired by default.
package grammar

import "time"

// Options tune a single parse.
type Options struct {
	// WeekStart is day zero for "this/next/last week" and weekday anchors.
	WeekStart time.Weekday
	// ForwardDate prefers future dates for ambiguous anchors.
	ForwardDate bool
}

// Candidate is one parse of a phrase.
type Candidate struct {
	Time time.Time
	// Text is the part of the input the grammar consumed and Index its
	// byte offset.
	Text  string
	Index int
}

// Grammar parses text relative to ref. ok is false when nothing in the text
// was recognized.
type Grammar interface {
	Parse(text string, ref time.Time, opts Options) (c Candidate, ok bool)
}

// Claimer is implemented by grammars that can tell a phrase they own but
// reject apart from one they do not know.
type Claimer interface {
	Claims(text string) bool
}

// Chain tries each grammar in order and returns the first candidate. A
// phrase claimed by a grammar that rejected it is not offered to the rest.
type Chain []Grammar

func (c Chain) Parse(text string, ref time.Time, opts Options) (Candidate, bool) {
	for _, g := range c {
		if g == nil {
			continue
		}
		if cand, ok := g.Parse(text, ref, opts); ok {
			return cand, true
		}
		if cl, ok := g.(Claimer); ok && cl.Claims(text) {
			return Candidate{}, false
		}
	}
	return Candidate{}, false
}

// GrammarFunc adapts a function to the Grammar interface.
type GrammarFunc func(text string, ref time.Time, opts Options) (Candidate, bool)

func (f GrammarFunc) Parse(text string, ref time.Time, opts Options) (Candidate, bool) {
	return f(text, ref, opts)
}

// NewDateGrammar is the default date-capable grammar: the phrase table, then
// the general-purpose English parser.
func NewDateGrammar() Grammar {
	return Chain{NewPhrases(), NewWhen()}
}

// NewTimeGrammar is the default grammar for time: expressions.
func NewTimeGrammar() Grammar {
	return Chain{NewClockPhrases(), NewWhen()}
}
