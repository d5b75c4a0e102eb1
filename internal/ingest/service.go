// Package ingest runs an uploaded document through text extraction, the
// question extractor and the question store.
package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-mcq/internal/eventlog"
	"github.com/mind-engage/mindengage-mcq/internal/mcq"
	"github.com/mind-engage/mindengage-mcq/internal/pdftext"
	"github.com/mind-engage/mindengage-mcq/internal/question"
	"github.com/mind-engage/mindengage-mcq/internal/storage"
)

// ErrNoQuestions means extraction finished but produced no records.
var ErrNoQuestions = errors.New("ingest: no questions found")

// UploadPrefix is the blob namespace kept uploads live under. Report.UploadKey
// is relative to it.
const UploadPrefix = "uploads/"

type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Report struct {
	UploadKey string         `json:"upload_key,omitempty"`
	Questions []mcq.Question `json:"questions"`
	Discarded []mcq.Discard  `json:"discarded,omitempty"`
	Orphans   int            `json:"orphans,omitempty"`
}

type Service struct {
	Store  question.Store
	Blobs  storage.BlobStore // optional: nil skips keeping uploads
	Events eventlog.Appender // optional

	// Extractor overrides per-file selection when set.
	Extractor pdftext.Extractor
}

func (s *Service) events() eventlog.Appender {
	if s.Events == nil {
		return eventlog.Discard
	}
	return s.Events
}

// Parse extracts questions without touching the store.
func (s *Service) Parse(ctx context.Context, up Upload) (mcq.Result, error) {
	ex := s.Extractor
	if ex == nil {
		ex = pdftext.ForFile(up.Filename, up.ContentType)
	}
	text, err := ex.Extract(ctx, up.Data)
	if err != nil {
		return mcq.Result{}, err
	}
	return mcq.ExtractText(text), nil
}

// Import parses the upload and, when at least one question came out,
// replaces the stored bank with it.
func (s *Service) Import(ctx context.Context, up Upload) (Report, error) {
	res, err := s.Parse(ctx, up)
	if err != nil {
		return Report{}, err
	}
	rep := Report{Questions: res.Questions, Discarded: res.Discarded, Orphans: res.Orphans}
	if len(res.Discarded) > 0 || res.Orphans > 0 {
		log.Printf("ingest: %s: %d questions, %d headers without options discarded, %d lines outside any question",
			up.Filename, len(res.Questions), len(res.Discarded), res.Orphans)
	}
	if len(res.Questions) == 0 {
		return rep, ErrNoQuestions
	}

	var blobKey string
	if s.Blobs != nil {
		k, err := s.Blobs.Put(UploadPrefix+uuid.NewString()+uploadExt(up.Filename), bytes.NewReader(up.Data))
		if err != nil {
			return Report{}, fmt.Errorf("ingest: keep upload: %w", err)
		}
		blobKey = k
		rep.UploadKey = strings.TrimPrefix(k, UploadPrefix)
	}

	if err := s.Store.Save(ctx, res.Questions); err != nil {
		if blobKey != "" {
			if derr := s.Blobs.Delete(blobKey); derr != nil {
				log.Printf("ingest: drop upload %s: %v", blobKey, derr)
			}
		}
		return Report{}, fmt.Errorf("ingest: save: %w", err)
	}
	ev := eventlog.NewEvent(eventlog.TypeQuestionsImported, rep.UploadKey, map[string]any{
		"filename":  up.Filename,
		"count":     len(res.Questions),
		"discarded": len(res.Discarded),
	})
	if err := s.events().Append(ctx, ev); err != nil {
		log.Printf("ingest: event log: %v", err)
	}
	return rep, nil
}

func (s *Service) Clear(ctx context.Context) error {
	if err := s.Store.Clear(ctx); err != nil {
		return err
	}
	if err := s.events().Append(ctx, eventlog.NewEvent(eventlog.TypeQuestionsCleared, "", nil)); err != nil {
		log.Printf("ingest: event log: %v", err)
	}
	return nil
}

func uploadExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pdf", ".txt":
		return ext
	default:
		return ".bin"
	}
}
