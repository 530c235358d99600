package lservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stevenskevin/lua-2pda/internal/historydb"
	"github.com/stevenskevin/lua-2pda/server/serr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return Service{DB: historydb.NewInMemoryStore()}
}

func TestValidate_AcceptedChunkIsRecordedAsAccepted(t *testing.T) {
	svc := newTestService()
	result, err := svc.Validate(context.Background(), "local x = 1\n")
	require.NoError(t, err)
	assert.True(t, result.Record.Accepted)
	assert.NotEqual(t, uuid.Nil, result.Record.ID)
}

func TestValidate_RejectedChunkRecordsFailurePosition(t *testing.T) {
	svc := newTestService()
	result, err := svc.Validate(context.Background(), "@@@not lua@@@")
	require.NoError(t, err)
	assert.False(t, result.Record.Accepted)
	assert.NotEmpty(t, result.Record.FailureMessage)
}

func TestHistory_ReturnsRecordedResults(t *testing.T) {
	svc := newTestService()
	_, err := svc.Validate(context.Background(), "return 1\n")
	require.NoError(t, err)

	recs, err := svc.History(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestHistoryByID_NotFoundTranslatesToSerrErrNotFound(t *testing.T) {
	svc := newTestService()
	id, err := uuid.NewRandom()
	require.NoError(t, err)

	_, err = svc.HistoryByID(context.Background(), id)
	assert.True(t, errors.Is(err, serr.ErrNotFound))
}

func TestHistoryByID_FindsRecordedResult(t *testing.T) {
	svc := newTestService()
	result, err := svc.Validate(context.Background(), "return 1\n")
	require.NoError(t, err)

	rec, err := svc.HistoryByID(context.Background(), result.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Record.ID, rec.ID)
}
