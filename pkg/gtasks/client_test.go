package gtasks_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"em-agent/pkg/gtasks"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gtasks.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	c, err := gtasks.NewClientFromHTTP(context.Background(), httpClient)
	require.NoError(t, err)
	return c
}

func TestClient_ListTasks(t *testing.T) {
	t.Run("lists open tasks of the default list", func(t *testing.T) {
		var gotPath, gotShowCompleted string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotShowCompleted = r.URL.Query().Get("showCompleted")
			w.Write([]byte(`{"items":[
				{"id":"t1","title":"File taxes","status":"needsAction","due":"2024-05-01T00:00:00.000Z"},
				{"id":"t2","title":"Call mom","status":"needsAction"}
			]}`))
		})

		got, err := c.ListTasks(context.Background(), gtasks.ListTasksRequest{})
		require.NoError(t, err)

		assert.Equal(t, "/tasks/v1/lists/@default/tasks", gotPath)
		assert.Equal(t, "false", gotShowCompleted)
		require.Len(t, got, 2)
		assert.Equal(t, "File taxes", got[0].Title)
		assert.Equal(t, "2024-05-01T00:00:00.000Z", got[0].Due)
		assert.Empty(t, got[1].Due)
	})

	t.Run("api error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := c.ListTasks(context.Background(), gtasks.ListTasksRequest{TaskListID: "abc"})
		assert.Error(t, err)
	})
}
