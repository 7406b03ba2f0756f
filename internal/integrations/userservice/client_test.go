package userservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type staticAdmins map[int64]bool

func (s staticAdmins) IsAdmin(userID int64) bool { return s[userID] }

func newServer(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/internal/users/42", r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestGetUser_OK(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"tg_user_id":42,"name":"Anna","role":"admin"}`)
	c := NewClient(srv.URL, time.Second, nil, nopLogger{})

	user, err := c.GetUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.TgUserID)
	assert.True(t, user.IsAdmin())
}

func TestGetUser_Statuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: ErrUserNotFound},
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrInvalidResponse},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: ErrInvalidResponse},
		{name: "malformed body", status: http.StatusOK, body: "{", wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			c := NewClient(srv.URL, time.Second, nil, nopLogger{})

			_, err := c.GetUser(context.Background(), 42)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsAdmin_StaticListSkipsRemoteCall(t *testing.T) {
	srv, calls := newServer(t, http.StatusOK, `{"tg_user_id":42,"role":"user"}`)
	c := NewClient(srv.URL, time.Second, staticAdmins{42: true}, nopLogger{})

	ok, err := c.IsAdmin(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, *calls)
}

func TestIsAdmin_RemoteRole(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"tg_user_id":42,"role":"user"}`)
	c := NewClient(srv.URL, time.Second, staticAdmins{}, nopLogger{})

	ok, err := c.IsAdmin(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAdmin_UnknownUser(t *testing.T) {
	srv, _ := newServer(t, http.StatusNotFound, "")
	c := NewClient(srv.URL, time.Second, nil, nopLogger{})

	ok, err := c.IsAdmin(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAdmin_ServiceFailure(t *testing.T) {
	srv, _ := newServer(t, http.StatusBadGateway, "")
	c := NewClient(srv.URL, time.Second, nil, nopLogger{})

	ok, err := c.IsAdmin(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.False(t, ok)
}

func TestIsAdmin_NoBaseURL(t *testing.T) {
	c := NewClient("", time.Second, staticAdmins{1: true}, nopLogger{})

	ok, err := c.IsAdmin(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, ok)
}
