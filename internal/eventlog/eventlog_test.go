package eventlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-mcq/internal/db"
)

func TestSQLRepoAppendRecent(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:eventlog_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { dbh.Close() })

	repo := NewSQLRepo(dbh)
	require.NoError(t, repo.Append(ctx, NewEvent(TypeQuestionsImported, "uploads/a.pdf", map[string]int{"count": 3})))
	require.NoError(t, repo.Append(ctx, NewEvent(TypeQuestionsCleared, "", nil)))

	events, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, TypeQuestionsCleared, events[0].Type)
	assert.Equal(t, "{}", events[0].DataJSON)
	assert.Equal(t, TypeQuestionsImported, events[1].Type)
	assert.JSONEq(t, `{"count":3}`, events[1].DataJSON)
	assert.Equal(t, "local", events[1].SiteID)
	assert.NotZero(t, events[1].CreatedAt)
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard.Append(context.Background(), NewEvent(TypeExamSubmitted, "x", nil)))
}
