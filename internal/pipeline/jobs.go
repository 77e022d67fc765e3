package pipeline

import (
	"sync"
	"time"

	"github.com/dgallion1/docsight/internal/analyze"
)

// JobStatus represents the state of an analysis job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusExtracting JobStatus = "extracting"
	StatusAnalyzing  JobStatus = "analyzing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// JobFile is one uploaded document held until the worker picks the job up.
type JobFile struct {
	Name string
	Data []byte
}

// Job tracks the state of a single batch analysis.
type Job struct {
	mu sync.Mutex

	ID string `json:"job_id"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Persona     string `json:"persona"`
	JobToBeDone string `json:"job_to_be_done"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	files  []JobFile
	result *analyze.Result
	errors []string
}

// Progress tracks how far through the batch the worker is.
type Progress struct {
	TotalDocuments     int      `json:"total_documents"`
	DocumentsExtracted int      `json:"documents_extracted"`
	Errors             []string `json:"errors"`
}

// NewJob builds a queued job holding the uploaded files.
func NewJob(id string, files []JobFile, personaText, jobText string) *Job {
	now := time.Now()
	return &Job{
		ID:          id,
		Status:      StatusQueued,
		Phase:       "queued",
		Persona:     personaText,
		JobToBeDone: jobText,
		Progress:    Progress{TotalDocuments: len(files)},
		CreatedAt:   now,
		UpdatedAt:   now,
		files:       files,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// IncrDocumentsExtracted atomically bumps the extraction counter.
func (j *Job) IncrDocumentsExtracted() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.DocumentsExtracted++
	j.UpdatedAt = time.Now()
}

// Files returns the uploaded documents.
func (j *Job) Files() []JobFile {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.files
}

// ReleaseFiles drops the raw upload bytes once extraction is done.
func (j *Job) ReleaseFiles() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.files = nil
}

// SetResult stores the completed analysis.
func (j *Job) SetResult(r analyze.Result) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = &r
	j.UpdatedAt = time.Now()
}

// Result returns the completed analysis, or nil while the job is running.
func (j *Job) Result() *analyze.Result {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string    `json:"job_id"`
	Status      JobStatus `json:"status"`
	Phase       string    `json:"phase"`
	Persona     string    `json:"persona"`
	JobToBeDone string    `json:"job_to_be_done"`
	Progress    Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:          j.ID,
		Status:      j.Status,
		Phase:       j.Phase,
		Persona:     j.Persona,
		JobToBeDone: j.JobToBeDone,
		Progress: Progress{
			TotalDocuments:     j.Progress.TotalDocuments,
			DocumentsExtracted: j.Progress.DocumentsExtracted,
			Errors:             errs,
		},
	}
}
