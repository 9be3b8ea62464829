package http

import (
	"em-agent/internal/decompose"
)

// --- Request DTOs ---

type decomposeReq struct {
	TaskDescription string
}

func (r decomposeReq) toInput() decompose.DecomposeInput {
	return decompose.DecomposeInput{TaskDescription: r.TaskDescription}
}

// --- Response DTOs ---

type decomposeResp struct {
	Steps         string `json:"steps"`
	Encouragement string `json:"encouragement"`
}

func (h *handler) newDecomposeResp(out decompose.DecomposeOutput) decomposeResp {
	return decomposeResp{
		Steps:         out.Steps,
		Encouragement: out.Encouragement,
	}
}
