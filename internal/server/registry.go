package server

import (
	"sort"
	"sync"
)

// StatusQueued marks a submission no worker has picked up yet. Once a
// worker starts the pipeline the job package statuses take over.
const StatusQueued = "queued"

// Record is the registry's view of one submitted job.
type Record struct {
	ID          string `json:"id"`
	DesignName  string `json:"design_name,omitempty"`
	SubmittedAt string `json:"submitted_at"`
	Status      string `json:"status"`
}

// Registry tracks submitted jobs in memory. Detailed stage state lives
// in each job's job.json; the registry answers existence and coarse
// status.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]*Record
}

func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]*Record)}
}

// Add registers a new submission.
func (r *Registry) Add(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[rec.ID] = &rec
}

// Remove drops a record. Used when a submission cannot be queued.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
}

// Get returns a copy of the record for id.
func (r *Registry) Get(id string) (Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.jobs[id]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// SetStatus updates a record's coarse status. Unknown ids are ignored.
func (r *Registry) SetStatus(id, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.jobs[id]; ok {
		rec.Status = status
	}
}

// List returns all records, newest submission first. Ties break on id
// so the order is stable.
func (r *Registry) List() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, 0, len(r.jobs))
	for _, rec := range r.jobs {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SubmittedAt != out[j].SubmittedAt {
			return out[i].SubmittedAt > out[j].SubmittedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len returns the number of tracked jobs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}
