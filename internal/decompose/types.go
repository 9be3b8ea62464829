package decompose

// --- UseCase Inputs ---

type DecomposeInput struct {
	TaskDescription string
}

// --- UseCase Outputs ---

type DecomposeOutput struct {
	Steps         string
	Encouragement string
	Rule          string // segmenter rule that produced the split
}
