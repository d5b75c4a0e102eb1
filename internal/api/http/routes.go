package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/mindengage-mcq/internal/eventlog"
	"github.com/mind-engage/mindengage-mcq/internal/ingest"
	"github.com/mind-engage/mindengage-mcq/internal/question"
	"github.com/mind-engage/mindengage-mcq/internal/storage"
)

type Deps struct {
	Store          question.Store
	Ingest         *ingest.Service
	Blobs          storage.BlobStore // optional
	Events         eventlog.Appender
	EventLog       eventlog.Reader // optional: nil leaves /api/events unmounted
	MaxUploadBytes int64
}

// MountAPI registers the /api routes on r.
func MountAPI(r chi.Router, d Deps) {
	r.Route("/api", func(ar chi.Router) {
		ar.Post("/upload", UploadHandler(d.Ingest, d.MaxUploadBytes))

		ar.Get("/questions", ListQuestionsHandler(d.Store))
		ar.Delete("/questions", ClearQuestionsHandler(d.Ingest))
		ar.Get("/questions/export", ExportQTIHandler(d.Store))

		ar.Get("/exam", ExamHandler(d.Store))
		ar.Post("/exam/submit", SubmitExamHandler(d.Store, d.Events))

		if d.EventLog != nil {
			ar.Get("/events", EventsHandler(d.EventLog))
		}

		if d.Blobs != nil {
			ar.Route("/uploads", func(ur chi.Router) {
				MountUploads(ur, d.Blobs)
			})
		}
	})
}
