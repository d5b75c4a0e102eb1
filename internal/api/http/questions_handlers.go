package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/mind-engage/mindengage-mcq/internal/eventlog"
	"github.com/mind-engage/mindengage-mcq/internal/grading"
	"github.com/mind-engage/mindengage-mcq/internal/ingest"
	"github.com/mind-engage/mindengage-mcq/internal/mcq"
	"github.com/mind-engage/mindengage-mcq/internal/question"

	"github.com/google/uuid"
)

// POST /api/upload (multipart: file=bank.pdf)
func UploadHandler(svc *ingest.Service, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if maxBytes > 0 {
			if r.ContentLength > maxBytes {
				writeError(w, http.StatusRequestEntityTooLarge, "File too large")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) || strings.Contains(err.Error(), "request body too large") {
				writeError(w, http.StatusRequestEntityTooLarge, "File too large")
				return
			}
			writeError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to process PDF: "+err.Error())
			return
		}

		rep, err := svc.Import(r.Context(), ingest.Upload{
			Filename:    hdr.Filename,
			ContentType: hdr.Header.Get("Content-Type"),
			Data:        data,
		})
		switch {
		case errors.Is(err, ingest.ErrNoQuestions):
			writeError(w, http.StatusBadRequest, "No questions found in PDF. Please ensure format is correct.")
			return
		case err != nil:
			log.Printf("upload %s: %v", hdr.Filename, err)
			writeError(w, http.StatusInternalServerError, "Failed to process PDF: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"count":      len(rep.Questions),
			"questions":  rep.Questions,
			"discarded":  len(rep.Discarded),
			"upload_key": rep.UploadKey,
		})
	}
}

// GET /api/questions
func ListQuestionsHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, loadOrEmpty(r, store))
	}
}

// DELETE /api/questions
func ClearQuestionsHandler(svc *ingest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context()); err != nil {
			log.Printf("clear questions: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to clear questions")
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// GET /api/exam: the bank without correct answers.
func ExamHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, question.StripAnswers(loadOrEmpty(r, store)))
	}
}

// POST /api/exam/submit {"answers":["A","",...]}
func SubmitExamHandler(store question.Store, events eventlog.Appender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answers []string `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
		qs, err := store.Load(r.Context())
		if err != nil {
			log.Printf("submit: load questions: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to load questions")
			return
		}
		if len(qs) == 0 {
			writeError(w, http.StatusNotFound, "No exam available")
			return
		}
		sheet := grading.Grade(qs, req.Answers)
		attemptID := uuid.NewString()
		if events != nil {
			ev := eventlog.NewEvent(eventlog.TypeExamSubmitted, attemptID, map[string]int{"score": sheet.Score, "total": sheet.Total})
			if err := events.Append(r.Context(), ev); err != nil {
				log.Printf("submit: event log: %v", err)
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"attempt_id": attemptID,
			"score":      sheet.Score,
			"total":      sheet.Total,
			"results":    sheet.Results,
		})
	}
}

// loadOrEmpty treats a read failure as an empty bank, logging it.
func loadOrEmpty(r *http.Request, store question.Store) []mcq.Question {
	qs, err := store.Load(r.Context())
	if err != nil {
		log.Printf("load questions: %v", err)
		return []mcq.Question{}
	}
	if qs == nil {
		return []mcq.Question{}
	}
	return qs
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
