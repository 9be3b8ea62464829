package segmenter

// Result is the decomposition of one completion into steps and encouragement.
// Both fields are always non-empty.
type Result struct {
	Steps         string `json:"steps"`
	Encouragement string `json:"encouragement"`
}

// input is the pre-computed view of the raw text that every rule inspects.
type input struct {
	raw        string
	paragraphs []string
	stepList   string
	hasList    bool
}

type rule struct {
	name  Rule
	match func(in input) bool
	apply func(in input) Result
}
