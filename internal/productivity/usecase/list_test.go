package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"em-agent/internal/model"
	"em-agent/internal/productivity"
	repo "em-agent/internal/productivity/repository"
	"em-agent/pkg/log"
)

type mockRepo struct {
	events    []model.Event
	tasks     []model.TodoTask
	err       error
	gotEvents repo.ListEventsOptions
	gotTasks  repo.ListTasksOptions
}

func (m *mockRepo) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	m.gotEvents = opt
	return m.events, m.err
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.TodoTask, error) {
	m.gotTasks = opt
	return m.tasks, m.err
}

func newTestUseCase(r *mockRepo, now time.Time) *implUseCase {
	return &implUseCase{repo: r, l: log.NewNop(), now: func() time.Time { return now }}
}

var token = &oauth2.Token{AccessToken: "access"}

func TestListEvents(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("ICT", 7*3600))
	r := &mockRepo{events: []model.Event{{Subject: "Dentist"}}}
	uc := newTestUseCase(r, now)

	out, err := uc.ListEvents(context.Background(), model.Scope{UserID: "u1"}, productivity.ListEventsInput{Token: token})
	require.NoError(t, err)

	assert.Equal(t, []model.Event{{Subject: "Dentist"}}, out.Events)
	assert.Equal(t, time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC), r.gotEvents.Start)
	assert.Equal(t, time.Date(2024, 5, 8, 3, 0, 0, 0, time.UTC), r.gotEvents.End)
	assert.Equal(t, productivity.MaxEvents, r.gotEvents.Limit)
	assert.Same(t, token, r.gotEvents.Token)
}

func TestListEvents_CapsResult(t *testing.T) {
	r := &mockRepo{events: make([]model.Event, 40)}
	uc := newTestUseCase(r, time.Now())

	out, err := uc.ListEvents(context.Background(), model.Scope{}, productivity.ListEventsInput{Token: token})
	require.NoError(t, err)
	assert.Len(t, out.Events, productivity.MaxEvents)
}

func TestListEvents_Errors(t *testing.T) {
	uc := newTestUseCase(&mockRepo{err: errors.New("boom")}, time.Now())

	_, err := uc.ListEvents(context.Background(), model.Scope{}, productivity.ListEventsInput{})
	assert.ErrorIs(t, err, productivity.ErrMissingCredential)

	_, err = uc.ListEvents(context.Background(), model.Scope{}, productivity.ListEventsInput{Token: token})
	assert.ErrorIs(t, err, productivity.ErrFetchFailed)
}

func TestListTasks(t *testing.T) {
	r := &mockRepo{tasks: []model.TodoTask{{ID: "1", Title: "Pay rent", Status: "notStarted"}}}
	uc := newTestUseCase(r, time.Now())

	out, err := uc.ListTasks(context.Background(), model.Scope{}, productivity.ListTasksInput{Token: token})
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 1)
	assert.Same(t, token, r.gotTasks.Token)
}

func TestListTasks_Errors(t *testing.T) {
	uc := newTestUseCase(&mockRepo{err: errors.New("boom")}, time.Now())

	_, err := uc.ListTasks(context.Background(), model.Scope{}, productivity.ListTasksInput{Token: &oauth2.Token{}})
	assert.ErrorIs(t, err, productivity.ErrMissingCredential)

	_, err = uc.ListTasks(context.Background(), model.Scope{}, productivity.ListTasksInput{Token: token})
	assert.ErrorIs(t, err, productivity.ErrFetchFailed)
}
