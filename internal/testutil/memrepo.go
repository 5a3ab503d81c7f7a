// Package testutil provides an in-memory jobseeker repository that mirrors
// the PostgreSQL semantics the API depends on: generated ids, a unique email
// constraint, insertion order and zero-affected-row not-found reporting.
package testutil

import (
	"context"
	"strings"
	"sync"

	"go-jobseeker-backend/internal/domain"
)

type MemoryRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []domain.Jobseeker

	// Err, when set, is returned by every call to simulate a store outage.
	Err error
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

// Count returns the number of stored rows.
func (r *MemoryRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// Row returns a copy of the stored row with the given id.
func (r *MemoryRepo) Row(id int64) (domain.Jobseeker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.Jobseeker{}, false
	}
	return r.rows[i], true
}

func (r *MemoryRepo) List(_ context.Context, f domain.JobseekerFilter) ([]domain.Jobseeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	out := []domain.Jobseeker{}
	for _, js := range r.rows {
		if f.Name != "" && !strings.Contains(js.FullName, f.Name) {
			continue
		}
		if f.Skill != "" && (js.Skills == nil || !strings.Contains(*js.Skills, f.Skill)) {
			continue
		}
		if f.Location != "" && (js.Location == nil || *js.Location != f.Location) {
			continue
		}
		if f.MinExp != nil && js.ExperienceYears < *f.MinExp {
			continue
		}
		if f.MaxExp != nil && js.ExperienceYears > *f.MaxExp {
			continue
		}
		out = append(out, js)
	}
	return out, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id int64) (*domain.Jobseeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	js := r.rows[i]
	return &js, nil
}

func (r *MemoryRepo) Create(_ context.Context, js *domain.Jobseeker) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	if r.emailTaken(js.Email, 0) {
		return 0, domain.ErrDuplicateEmail
	}
	js.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, *js)
	return js.ID, nil
}

func (r *MemoryRepo) Update(_ context.Context, js *domain.Jobseeker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	// an UPDATE matching no row never reaches the unique check
	i := r.indexOf(js.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	if r.emailTaken(js.Email, js.ID) {
		return domain.ErrDuplicateEmail
	}
	r.rows[i] = *js
	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return nil
}

func (r *MemoryRepo) indexOf(id int64) int {
	for i, js := range r.rows {
		if js.ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryRepo) emailTaken(email string, exceptID int64) bool {
	for _, js := range r.rows {
		if js.Email == email && js.ID != exceptID {
			return true
		}
	}
	return false
}
