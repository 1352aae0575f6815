package table

import (
	"fmt"
	"strings"
)

// Formatter converts a cell's raw value into an ordered sequence of
// pre-wrap lines. No returned line may contain '\n'; interior spaces are
// preserved verbatim.
type Formatter func(value any) []string

// DefaultFormatter takes the value's fmt.Sprintf("%v", ...) representation
// and splits it on '\n'. A nil value or empty string yields an empty
// sequence, matching spec.md §4.3.
func DefaultFormatter(value any) []string {
	s := stringify(value)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// checkFormatted validates a Formatter's output against its contract at a
// given cell: no returned line may contain '\n' (spec.md §7 names "an
// external formatter, wrapper, or aligner" as the three sources of a
// ContractViolation; this is the formatter-stage half of that check, the
// same shape as [checkWrapped] and [checkAligned]). Without it, an
// embedded '\n' would silently become a token separator for
// [DelimiterTextWrapper] instead of surfacing the misbehaving Formatter.
func checkFormatted(lines []string, row, column int) error {
	for _, l := range lines {
		if strings.Contains(l, "\n") {
			return &ContractViolationError{Row: row, Column: column, Stage: "format", Reason: "line contains '\\n'"}
		}
	}
	return nil
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", value)
}

// rule pairs a Matcher with a pipeline strategy of type S. ruleSet
// replaces the Java source's four parallel LinkedHashMap<CellMatcher, X>
// fields (and their four near-identical linear-scan getters) with one
// generic type: matchers are plain predicates, not dispatched by type, so
// there is nothing a type hierarchy would buy here.
type rule[S any] struct {
	matcher  Matcher
	strategy S
}

type ruleSet[S any] struct {
	rules []rule[S]
}

func newRuleSet[S any](def S) *ruleSet[S] {
	return &ruleSet[S]{rules: []rule[S]{{matcher: All(), strategy: def}}}
}

func (rs *ruleSet[S]) add(m Matcher, s S) {
	rs.rules = append(rs.rules, rule[S]{matcher: m, strategy: s})
}

// resolve returns the strategy of the last rule whose matcher matches
// (row, column, model) — last-match-wins, per spec.md §3.
func (rs *ruleSet[S]) resolve(row, column int, model Model) (S, bool) {
	var result S
	found := false
	for _, r := range rs.rules {
		if r.matcher(row, column, model) {
			result = r.strategy
			found = true
		}
	}
	return result, found
}
