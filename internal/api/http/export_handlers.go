package http

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/mindengage-mcq/internal/ingest"
	"github.com/mind-engage/mindengage-mcq/internal/qti/export"
	"github.com/mind-engage/mindengage-mcq/internal/question"
	"github.com/mind-engage/mindengage-mcq/internal/storage"
)

// GET /api/questions/export: QTI 2.1 package of the bank.
func ExportQTIHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qs, err := store.Load(r.Context())
		if err != nil {
			log.Printf("export: load questions: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to load questions")
			return
		}
		pkg, err := export.BuildPackage(qs)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", `attachment; filename="questions-qti.zip"`)
		http.ServeContent(w, r, "questions-qti.zip", time.Now(), bytes.NewReader(pkg))
	}
}

// MountUploads serves kept uploads by upload key: GET /<upload_key>
func MountUploads(r chi.Router, bs storage.BlobStore) {
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		rc, err := bs.Get(ingest.UploadPrefix + key)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer rc.Close()
		ct := "application/octet-stream"
		switch {
		case strings.HasSuffix(key, ".pdf"):
			ct = "application/pdf"
		case strings.HasSuffix(key, ".txt"):
			ct = "text/plain; charset=utf-8"
		}
		w.Header().Set("Content-Type", ct)
		_, _ = io.Copy(w, rc)
	})
}
