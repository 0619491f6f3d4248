package grammar

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// When delegates to olebedev/when with the English and common rule sets.
// It has no notion of week start, so Options are ignored; week-relative
// phrases are expected to be claimed by Phrases earlier in the chain.
type When struct {
	parser *when.Parser
}

// NewWhen builds the parser once; it is safe to reuse across calls.
func NewWhen() *When {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &When{parser: w}
}

// Parse accepts a result only when it covers the whole phrase; when itself
// reports the first readable fragment.
func (g *When) Parse(text string, ref time.Time, _ Options) (Candidate, bool) {
	res, err := g.parser.Parse(text, ref)
	if err != nil || res == nil {
		return Candidate{}, false
	}
	if normalize(res.Text) != normalize(text) {
		return Candidate{}, false
	}
	return Candidate{Time: res.Time, Text: res.Text, Index: res.Index}, true
}
