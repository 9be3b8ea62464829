package usecase

import (
	"context"
	"fmt"
	"strings"

	"em-agent/internal/decompose"
	"em-agent/internal/model"
	"em-agent/pkg/segmenter"
)

// Decompose sends one completion request and segments the trimmed reply.
// There is no retry; any failure of the call is reported as ErrCompletionFailed.
func (uc *implUseCase) Decompose(ctx context.Context, sc model.Scope, input decompose.DecomposeInput) (decompose.DecomposeOutput, error) {
	task := strings.TrimSpace(input.TaskDescription)
	if task == "" {
		return decompose.DecomposeOutput{}, decompose.ErrEmptyDescription
	}
	if uc.client == nil {
		uc.l.Errorf(ctx, "uc.Decompose: completion service is not configured")
		return decompose.DecomposeOutput{}, decompose.ErrCompletionUnavailable
	}

	uc.l.Infof(ctx, "uc.Decompose: user=%s deployment=%s task=%q", sc.UserID, uc.client.Deployment(), task)

	resp, err := uc.client.ChatCompletion(ctx, uc.newRequest(task))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Decompose ChatCompletion: %v", err)
		return decompose.DecomposeOutput{}, fmt.Errorf("%w: %v", decompose.ErrCompletionFailed, err)
	}

	content := strings.TrimSpace(resp.FirstContent())
	uc.l.Debugf(ctx, "uc.Decompose: raw response %d chars, %d tokens", len(content), resp.Usage.TotalTokens)

	result, rule := segmenter.Explain(content)
	if rule == segmenter.RuleEmpty {
		uc.l.Warnf(ctx, "uc.Decompose: could not split the response into steps and encouragement")
	}
	uc.l.Infof(ctx, "uc.Decompose: parsed with rule %s", rule)
	uc.l.Debugf(ctx, "uc.Decompose: steps=%q encouragement=%q", result.Steps, result.Encouragement)

	return decompose.DecomposeOutput{
		Steps:         result.Steps,
		Encouragement: result.Encouragement,
		Rule:          string(rule),
	}, nil
}
