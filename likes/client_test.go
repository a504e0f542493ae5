package likes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLikeAndCount(t *testing.T) {
	var likes int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/blog/blog%201/like", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPatch:
			n := atomic.AddInt64(&likes, 1)
			_, _ = w.Write([]byte(`{"success":true,"likeCount":` + strconv.FormatInt(n, 10) + `,"message":"Like count updated successfully"}`))
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"success":true,"likeCount":` + strconv.FormatInt(atomic.LoadInt64(&likes), 10) + `}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", srv.Client())
	ctx := context.Background()

	n, err := c.Like(ctx, "blog 1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = c.Count(ctx, "blog 1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClientErrorMapping(t *testing.T) {
	cases := []struct {
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{http.StatusBadRequest, `{"error":"Blog ID is required"}`, func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrMissingID) }},
		{http.StatusNotFound, `{"error":"Blog post not found"}`, func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrNotFound) }},
		{http.StatusInternalServerError, `{"error":"Failed to update like count"}`, func(t *testing.T, err error) {
			var se *StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
			assert.Equal(t, "Failed to update like count", se.Message)
		}},
		{http.StatusOK, `{"success":false,"error":"nope"}`, func(t *testing.T, err error) {
			var se *StatusError
			assert.True(t, errors.As(err, &se))
		}},
		{http.StatusOK, `not json`, func(t *testing.T, err error) { assert.Error(t, err) }},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(tc.body))
		}))
		_, err := NewClient(srv.URL, nil).Like(context.Background(), "x")
		tc.check(t, err)
		srv.Close()
	}
}

func TestClientMissingID(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1", nil).Like(context.Background(), " ")
	assert.ErrorIs(t, err, ErrMissingID)
}
