package segmenter

// Fallback texts substituted when the completion has no detectable structure.
const (
	PlaceholderCouldNotIdentify  = "Could not identify clear steps in the response."
	PlaceholderOneStepAtATime    = "Remember to take it one step at a time."
	PlaceholderNoSteps           = "No specific steps identified."
	PlaceholderFirstStepProgress = "Just taking the first step is progress!"
	PlaceholderFocus             = "Focus on that first step, you can do it!"
)

// Rule identifies which row of the decision table produced a Result.
type Rule string

const (
	RuleListWithTail Rule = "list_with_tail"
	RuleParagraphs   Rule = "paragraphs"
	RuleSingleList   Rule = "single_list"
	RuleSingleProse  Rule = "single_prose"
	RuleEmpty        Rule = "empty"
)
