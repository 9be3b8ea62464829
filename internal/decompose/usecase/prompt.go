package usecase

import (
	"fmt"

	"em-agent/pkg/azopenai"
)

const systemPrompt = "You are Em, a supportive, non-judgmental AI assistant for users with ADHD. " +
	"Your goal is to help users start tasks they feel overwhelmed by. " +
	"Be gentle, understanding and sincere, and focus on breaking things down into 3-5 small, concrete, actionable first steps. " +
	"Avoid demanding or overly cheerful language."

const userPromptTemplate = `I'm feeling overwhelmed by this task: '%s'.

Can you help me figure out just the first few steps to get started? Keep it simple and clear. Please list the steps first (maybe numbered or bulleted). After the steps, please provide a separate, brief (1-2 sentences) encouraging thought focused specifically on tackling the very first step you listed. Sound sincere and understanding.`

func buildUserPrompt(task string) string {
	return fmt.Sprintf(userPromptTemplate, task)
}

func (uc *implUseCase) newRequest(task string) *azopenai.Request {
	req := azopenai.NewRequest(systemPrompt, buildUserPrompt(task))
	req.MaxTokens = uc.sampling.MaxTokens
	req.Temperature = uc.sampling.Temperature
	req.TopP = uc.sampling.TopP
	req.FrequencyPenalty = uc.sampling.FrequencyPenalty
	req.PresencePenalty = uc.sampling.PresencePenalty
	return req
}
