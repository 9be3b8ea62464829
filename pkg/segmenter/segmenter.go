// Package segmenter splits free-form completion text into a step list and a
// short encouragement.
package segmenter

import (
	"regexp"
	"strings"
)

var (
	// A run of consecutive list-item lines. Leading and separating whitespace is
	// limited to spaces and tabs so a run never crosses a blank line.
	stepListPattern = regexp.MustCompile(`(?m)^(?:[ \t]*(?:[1-9][.)]|[*\-+])[ \t]+.*(?:\n|$))+`)

	// Same item shape, anchored at the start of a single block.
	listItemStartPattern = regexp.MustCompile(`^[ \t]*(?:[1-9][.)]|[*\-+])[ \t]+`)

	paragraphBreakPattern = regexp.MustCompile(`\n\s*\n`)
)

// rules is evaluated top-down; the first match wins.
var rules = []rule{
	{
		name:  RuleListWithTail,
		match: func(in input) bool { return in.hasList && len(in.paragraphs) > 1 },
		apply: func(in input) Result {
			tail := in.paragraphs[len(in.paragraphs)-1]
			encouragement := tail
			if listItemStartPattern.MatchString(tail) {
				encouragement = PlaceholderFocus
			}
			return Result{Steps: strings.TrimSpace(in.stepList), Encouragement: encouragement}
		},
	},
	{
		name:  RuleParagraphs,
		match: func(in input) bool { return !in.hasList && len(in.paragraphs) > 1 },
		apply: func(in input) Result {
			last := len(in.paragraphs) - 1
			return Result{
				Steps:         strings.Join(in.paragraphs[:last], "\n\n"),
				Encouragement: in.paragraphs[last],
			}
		},
	},
	{
		name:  RuleSingleList,
		match: func(in input) bool { return in.hasList && len(in.paragraphs) == 1 },
		apply: func(in input) Result {
			return Result{Steps: in.raw, Encouragement: PlaceholderFirstStepProgress}
		},
	},
	{
		name:  RuleSingleProse,
		match: func(in input) bool { return !in.hasList && len(in.paragraphs) == 1 },
		apply: func(in input) Result {
			return Result{Steps: PlaceholderNoSteps, Encouragement: in.raw}
		},
	},
	{
		name:  RuleEmpty,
		match: func(in input) bool { return true },
		apply: func(in input) Result {
			return Result{Steps: PlaceholderCouldNotIdentify, Encouragement: PlaceholderOneStepAtATime}
		},
	},
}

// Segment splits raw into steps and encouragement. It never fails.
func Segment(raw string) Result {
	res, _ := Explain(raw)
	return res
}

// Explain is Segment plus the rule that produced the result.
func Explain(raw string) (Result, Rule) {
	in := analyze(raw)
	for _, r := range rules {
		if r.match(in) {
			return r.apply(in), r.name
		}
	}
	// Unreachable: the last rule always matches.
	return Result{Steps: PlaceholderCouldNotIdentify, Encouragement: PlaceholderOneStepAtATime}, RuleEmpty
}

// Rules returns the rule names in evaluation order.
func Rules() []Rule {
	names := make([]Rule, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

func analyze(raw string) input {
	in := input{raw: raw, paragraphs: splitParagraphs(raw)}
	if loc := stepListPattern.FindStringIndex(raw); loc != nil {
		in.stepList = raw[loc[0]:loc[1]]
		in.hasList = true
	}
	return in
}

func splitParagraphs(raw string) []string {
	var out []string
	for _, p := range paragraphBreakPattern.Split(raw, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
