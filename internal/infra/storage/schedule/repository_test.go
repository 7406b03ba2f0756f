package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct {
	err   error
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return f.err
}

func extractFirstSlot(t *testing.T, data []byte, index int) string {
	t.Helper()

	var docs []specialDateDocument
	require.NoError(t, json.Unmarshal(data, &docs))
	require.Greater(t, len(docs), index)
	require.NotEmpty(t, docs[index].TimeSlots)

	slot, err := json.Marshal(docs[index].TimeSlots[0])
	require.NoError(t, err)
	return string(slot)
}

func TestBuildSelectQuery(t *testing.T) {
	query, args, err := buildSelectQuery()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT session_duration, weekly, special_dates, recurring_holidays, seasonal_schedules, created_at, updated_at FROM schedule_config WHERE id = $1",
		query)
	assert.Equal(t, []interface{}{singletonID}, args)
}

func TestBuildUpsertQuery(t *testing.T) {
	rw, err := toRow(sampleConfig())
	require.NoError(t, err)

	insertQuery, args, err := buildUpsertQuery(rw, false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(insertQuery, "INSERT INTO schedule_config (id,session_duration,weekly,"))
	assert.True(t, strings.HasSuffix(insertQuery, "ON CONFLICT (id) DO NOTHING"))
	require.Len(t, args, 8)
	assert.Equal(t, singletonID, args[0])
	assert.Equal(t, 45, args[1])

	replaceQuery, _, err := buildUpsertQuery(rw, true)
	require.NoError(t, err)
	assert.Contains(t, replaceQuery, "ON CONFLICT (id) DO UPDATE SET")
	assert.Contains(t, replaceQuery, "RETURNING created_at, updated_at")
	assert.NotContains(t, replaceQuery, "created_at = EXCLUDED.created_at")
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(&pq.Error{Code: pqSerializationFailure}))
	assert.True(t, isRetryable(&pq.Error{Code: pqDeadlockDetected}))
	assert.False(t, isRetryable(&pq.Error{Code: "23505"}))
	assert.False(t, isRetryable(errors.New("connection refused")))
}

func TestWrapDBError(t *testing.T) {
	err := wrapDBError(ErrExecQuery, "insertDefault - exec", &pq.Error{Code: pqSerializationFailure})
	assert.ErrorIs(t, err, ErrSerialization)

	err = wrapDBError(ErrExecQuery, "insertDefault - exec", errors.New("boom"))
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrSerialization)
}

func TestGetOrCreateDefault_RetriesSerializationFailures(t *testing.T) {
	txManager := &fakeTxManager{err: ErrSerialization}
	repo := NewRepository(nil, txManager)

	_, err := repo.GetOrCreateDefault(context.Background())

	assert.ErrorIs(t, err, ErrTransaction)
	assert.Equal(t, serializationRetries, txManager.calls)
}

func TestGetOrCreateDefault_RetriesCommitConflicts(t *testing.T) {
	txManager := &fakeTxManager{err: &pq.Error{Code: pqSerializationFailure}}
	repo := NewRepository(nil, txManager)

	_, err := repo.GetOrCreateDefault(context.Background())

	assert.Error(t, err)
	assert.Equal(t, serializationRetries, txManager.calls)
}

func TestGetOrCreateDefault_DoesNotRetryOtherErrors(t *testing.T) {
	txManager := &fakeTxManager{err: errors.New("connection reset")}
	repo := NewRepository(nil, txManager)

	_, err := repo.GetOrCreateDefault(context.Background())

	assert.ErrorIs(t, err, ErrTransaction)
	assert.Equal(t, 1, txManager.calls)
}
