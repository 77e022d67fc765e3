package pipeline

import (
	"context"
	"log/slog"

	"github.com/dgallion1/docsight/internal/analyze"
	"github.com/dgallion1/docsight/internal/extractor"
)

// Worker processes a single analysis job.
type Worker struct {
	analyzer *analyze.Analyzer
	log      *slog.Logger

	maxConcurrentExtract int
}

func NewWorker(analyzer *analyze.Analyzer, log *slog.Logger, maxExtract int) *Worker {
	return &Worker{
		analyzer:             analyzer,
		log:                  log,
		maxConcurrentExtract: maxExtract,
	}
}

// Process runs extraction and analysis for a job. Extraction never fails a
// document outright; documents that yield no fragments simply contribute
// nothing to the analysis.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)

	files := job.Files()
	if len(files) == 0 {
		job.AddError("no documents to analyze")
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	// Phase 1: extract fragments from each upload with bounded concurrency.
	job.SetStatus(StatusExtracting, "extracting")

	inputs := make([]analyze.Input, len(files))
	sem := make(chan struct{}, w.maxConcurrentExtract)
	done := make(chan int, len(files))

	for i, f := range files {
		sem <- struct{}{}
		go func(i int, f JobFile) {
			defer func() { <-sem }()
			res := extractor.Extract(f.Data, f.Name, log)
			inputs[i] = analyze.Input{Document: f.Name, Fragments: res.Fragments}
			done <- i
		}(i, f)
	}
	for range files {
		i := <-done
		job.IncrDocumentsExtracted()
		if len(inputs[i].Fragments) == 0 {
			log.Warn("document produced no fragments", "document", inputs[i].Document)
			job.AddError("no extractable content: " + inputs[i].Document)
		}
	}
	job.ReleaseFiles()

	select {
	case <-ctx.Done():
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	default:
	}

	// Phase 2: single analysis pass over the whole collection.
	job.SetStatus(StatusAnalyzing, "analyzing")
	result := w.analyzer.Analyze(ctx, inputs, job.Persona, job.JobToBeDone)
	job.SetResult(result)

	log.Info("analysis complete",
		"documents", len(files),
		"sections", len(result.ExtractedSections),
		"subsections", len(result.SubsectionAnalysis))
	job.SetStatus(StatusCompleted, "done")
}
