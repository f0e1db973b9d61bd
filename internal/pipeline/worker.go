package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/docclamp/internal/parser"
	"github.com/dgallion1/docclamp/internal/preview"
	"github.com/dgallion1/docclamp/internal/stats"
)

// Worker processes a single document job.
type Worker struct {
	stats     *stats.Recorder
	log       *slog.Logger
	parserOpt parser.Options
}

func NewWorker(rec *stats.Recorder, log *slog.Logger, opts parser.Options) *Worker {
	return &Worker{
		stats:     rec,
		log:       log,
		parserOpt: opts,
	}
}

// Process parses the job's file and builds its preview.
func (w *Worker) Process(job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename, w.parserOpt)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	tree, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if job.Title != "" {
		tree.Title = job.Title
	}

	// Phase 2: Clamp
	job.SetStatus(StatusClamping, "clamping")
	start := time.Now()
	pv, err := preview.Build(tree, job.WordLimit)
	if err != nil {
		log.Error("preview failed", "error", err)
		job.AddError(fmt.Sprintf("preview: %s", err))
		job.SetStatus(StatusFailed, "clamping")
		return
	}
	if w.stats != nil {
		w.stats.Record(time.Since(start), pv.Truncated)
	}

	job.Complete(pv)
	log.Info("preview built", "words", pv.Words, "limit", pv.Limit, "truncated", pv.Truncated)
}
