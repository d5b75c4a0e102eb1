package ingest

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-mcq/internal/eventlog"
	"github.com/mind-engage/mindengage-mcq/internal/mcq"
	"github.com/mind-engage/mindengage-mcq/internal/question"
	"github.com/mind-engage/mindengage-mcq/internal/storage"
)

const bankText = `Midterm paper
1. What is the
capital of France?
A. Paris
B. Lyon
Answer: a
2. Header with no options
3. Largest planet?
A. Jupiter
B. Mars
`

type recorder struct{ events []eventlog.Event }

func (r *recorder) Append(_ context.Context, e eventlog.Event) error {
	r.events = append(r.events, e)
	return nil
}

type failingStore struct{ question.Store }

func (failingStore) Save(context.Context, []mcq.Question) error { return errors.New("disk full") }

func TestImportSavesAndReports(t *testing.T) {
	ctx := context.Background()
	store := question.NewMemory()
	blobs, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)
	rec := &recorder{}
	svc := &Service{Store: store, Blobs: blobs, Events: rec}

	rep, err := svc.Import(ctx, Upload{Filename: "bank.txt", Data: []byte(bankText)})
	require.NoError(t, err)

	require.Len(t, rep.Questions, 2)
	assert.Equal(t, "What is the capital of France?", rep.Questions[0].Text)
	assert.Equal(t, "A", rep.Questions[0].CorrectAnswer)
	assert.Equal(t, []mcq.Discard{{ID: 2, Text: "Header with no options", Reason: mcq.ReasonNoOptions}}, rep.Discarded)
	assert.Equal(t, 1, rep.Orphans)

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, rep.Questions, saved)

	assert.False(t, strings.Contains(rep.UploadKey, "/"))
	assert.True(t, strings.HasSuffix(rep.UploadKey, ".txt"))
	rc, err := blobs.Get(UploadPrefix + rep.UploadKey)
	require.NoError(t, err)
	raw, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, bankText, string(raw))

	require.Len(t, rec.events, 1)
	assert.Equal(t, eventlog.TypeQuestionsImported, rec.events[0].Type)
	assert.Equal(t, rep.UploadKey, rec.events[0].Key)
}

func TestImportNoQuestionsLeavesStore(t *testing.T) {
	ctx := context.Background()
	store := question.NewMemory()
	prior := []mcq.Question{{ID: 9, Text: "keep me", Options: []string{"A. ok"}}}
	require.NoError(t, store.Save(ctx, prior))

	svc := &Service{Store: store}
	_, err := svc.Import(ctx, Upload{Filename: "notes.txt", Data: []byte("just prose\n1. header only\n")})
	assert.ErrorIs(t, err, ErrNoQuestions)

	got, _ := store.Load(ctx)
	assert.Equal(t, prior, got)
}

func TestImportSaveFailure(t *testing.T) {
	svc := &Service{Store: failingStore{question.NewMemory()}}
	_, err := svc.Import(context.Background(), Upload{Filename: "b.txt", Data: []byte("1. q\nA. a\n")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestImportExtractionFailure(t *testing.T) {
	svc := &Service{Store: question.NewMemory()}
	_, err := svc.Import(context.Background(), Upload{Filename: "b.pdf", Data: []byte("not a pdf")})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoQuestions)
}

func keptUploads(t *testing.T, base string) int {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(base, "uploads"))
	if errors.Is(err, os.ErrNotExist) {
		return 0
	}
	require.NoError(t, err)
	return len(entries)
}

func TestImportKeepsUploadOnlyOnSuccess(t *testing.T) {
	tests := []struct {
		name  string
		store question.Store
		up    Upload
	}{
		{"no questions", question.NewMemory(), Upload{Filename: "notes.txt", Data: []byte("just prose\n")}},
		{"extraction failure", question.NewMemory(), Upload{Filename: "b.pdf", Data: []byte("not a pdf")}},
		{"save failure", failingStore{question.NewMemory()}, Upload{Filename: "b.txt", Data: []byte("1. q\nA. a\n")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			blobs, err := storage.NewFSStore(base)
			require.NoError(t, err)
			svc := &Service{Store: tt.store, Blobs: blobs}

			_, err = svc.Import(context.Background(), tt.up)
			require.Error(t, err)
			assert.Zero(t, keptUploads(t, base))
		})
	}
}

func TestClearRecordsEvent(t *testing.T) {
	ctx := context.Background()
	store := question.NewMemory()
	require.NoError(t, store.Save(ctx, []mcq.Question{{ID: 1, Options: []string{"A. a"}}}))
	rec := &recorder{}

	require.NoError(t, (&Service{Store: store, Events: rec}).Clear(ctx))
	got, _ := store.Load(ctx)
	assert.Empty(t, got)
	require.Len(t, rec.events, 1)
	assert.Equal(t, eventlog.TypeQuestionsCleared, rec.events[0].Type)
}

func TestUploadExt(t *testing.T) {
	assert.Equal(t, ".pdf", uploadExt("Bank.PDF"))
	assert.Equal(t, ".txt", uploadExt("a.txt"))
	assert.Equal(t, ".bin", uploadExt("a.exe"))
	assert.Equal(t, ".bin", uploadExt("noext"))
}
