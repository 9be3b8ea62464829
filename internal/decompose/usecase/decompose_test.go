package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"em-agent/internal/decompose"
	"em-agent/internal/model"
	"em-agent/pkg/azopenai"
	"em-agent/pkg/log"
	"em-agent/pkg/segmenter"
)

type mockCompletion struct {
	resp   *azopenai.Response
	err    error
	gotReq *azopenai.Request
	calls  int
}

func (m *mockCompletion) ChatCompletion(ctx context.Context, req *azopenai.Request) (*azopenai.Response, error) {
	m.calls++
	m.gotReq = req
	return m.resp, m.err
}

func (m *mockCompletion) Deployment() string { return "gpt-test" }

func reply(content string) *azopenai.Response {
	return &azopenai.Response{Choices: []azopenai.Choice{{Message: azopenai.Message{Role: azopenai.RoleAssistant, Content: content}}}}
}

func TestDecompose(t *testing.T) {
	client := &mockCompletion{resp: reply("\n1. Open the doc\n2. Write one line\n\nYou've got this, one line is enough.\n  ")}
	uc := New(log.NewNop(), client, DefaultSampling())

	out, err := uc.Decompose(context.Background(), model.Scope{UserID: "u1"}, decompose.DecomposeInput{TaskDescription: "  write my report "})
	require.NoError(t, err)

	assert.Equal(t, "1. Open the doc\n2. Write one line", out.Steps)
	assert.Equal(t, "You've got this, one line is enough.", out.Encouragement)
	assert.Equal(t, string(segmenter.RuleListWithTail), out.Rule)

	require.NotNil(t, client.gotReq)
	require.Len(t, client.gotReq.Messages, 2)
	assert.Equal(t, azopenai.RoleSystem, client.gotReq.Messages[0].Role)
	assert.Contains(t, client.gotReq.Messages[0].Content, "You are Em")
	assert.Contains(t, client.gotReq.Messages[0].Content, "3-5 small, concrete, actionable first steps")
	assert.Equal(t, azopenai.RoleUser, client.gotReq.Messages[1].Role)
	assert.True(t, strings.HasPrefix(client.gotReq.Messages[1].Content, "I'm feeling overwhelmed by this task: 'write my report'."))
	assert.Contains(t, client.gotReq.Messages[1].Content, "brief (1-2 sentences)")
	assert.Equal(t, 300, client.gotReq.MaxTokens)
	assert.InDelta(t, 0.7, client.gotReq.Temperature, 1e-9)
	assert.InDelta(t, 0.95, client.gotReq.TopP, 1e-9)
	assert.Nil(t, client.gotReq.Stop)
}

func TestDecompose_SingleProse(t *testing.T) {
	client := &mockCompletion{resp: reply("Just breathe and open the file.")}
	uc := New(log.NewNop(), client, DefaultSampling())

	out, err := uc.Decompose(context.Background(), model.Scope{}, decompose.DecomposeInput{TaskDescription: "taxes"})
	require.NoError(t, err)
	assert.Equal(t, segmenter.PlaceholderNoSteps, out.Steps)
	assert.Equal(t, "Just breathe and open the file.", out.Encouragement)
}

func TestDecompose_EmptyContent(t *testing.T) {
	client := &mockCompletion{resp: reply("   \n\n ")}
	uc := New(log.NewNop(), client, DefaultSampling())

	out, err := uc.Decompose(context.Background(), model.Scope{}, decompose.DecomposeInput{TaskDescription: "taxes"})
	require.NoError(t, err)
	assert.Equal(t, segmenter.PlaceholderCouldNotIdentify, out.Steps)
	assert.Equal(t, segmenter.PlaceholderOneStepAtATime, out.Encouragement)
}

func TestDecompose_CustomSampling(t *testing.T) {
	client := &mockCompletion{resp: reply("ok")}
	uc := New(log.NewNop(), client, Sampling{MaxTokens: 120, Temperature: 0.2, TopP: 1, FrequencyPenalty: 0.5, PresencePenalty: 0.1})

	_, err := uc.Decompose(context.Background(), model.Scope{}, decompose.DecomposeInput{TaskDescription: "taxes"})
	require.NoError(t, err)
	assert.Equal(t, 120, client.gotReq.MaxTokens)
	assert.InDelta(t, 0.5, client.gotReq.FrequencyPenalty, 1e-9)
	assert.InDelta(t, 0.1, client.gotReq.PresencePenalty, 1e-9)
}

func TestDecompose_Errors(t *testing.T) {
	t.Run("empty description", func(t *testing.T) {
		client := &mockCompletion{}
		uc := New(log.NewNop(), client, DefaultSampling())
		_, err := uc.Decompose(context.Background(), model.Scope{}, decompose.DecomposeInput{TaskDescription: " \t\n"})
		assert.ErrorIs(t, err, decompose.ErrEmptyDescription)
		assert.Zero(t, client.calls)
	})

	t.Run("not configured", func(t *testing.T) {
		uc := New(log.NewNop(), nil, DefaultSampling())
		_, err := uc.Decompose(context.Background(), model.Scope{}, decompose.DecomposeInput{TaskDescription: "taxes"})
		assert.ErrorIs(t, err, decompose.ErrCompletionUnavailable)
	})

	t.Run("completion fails once, no retry", func(t *testing.T) {
		client := &mockCompletion{err: azopenai.ErrNoChoices}
		uc := New(log.NewNop(), client, DefaultSampling())
		_, err := uc.Decompose(context.Background(), model.Scope{}, decompose.DecomposeInput{TaskDescription: "taxes"})
		assert.ErrorIs(t, err, decompose.ErrCompletionFailed)
		assert.Equal(t, 1, client.calls)
	})

	t.Run("transport error", func(t *testing.T) {
		client := &mockCompletion{err: errors.New("dial tcp: timeout")}
		uc := New(log.NewNop(), client, DefaultSampling())
		_, err := uc.Decompose(context.Background(), model.Scope{}, decompose.DecomposeInput{TaskDescription: "taxes"})
		assert.ErrorIs(t, err, decompose.ErrCompletionFailed)
	})
}
