package store

import (
	"sync"
	"time"

	"github.com/shaiso/Mnemo/internal/domain"
)

// DefaultTTL — время жизни записи по умолчанию.
const DefaultTTL = time.Hour

// Registry — in-memory реестр заявок с индексами по track_id и task_id.
type Registry struct {
	mu      sync.RWMutex
	byTrack map[string]*entry
	byTask  map[string]*entry
	ttl     time.Duration
	now     func() time.Time
}

type entry struct {
	gen     *domain.Generation
	touched time.Time
}

// NewRegistry создаёт реестр. Неположительный ttl — DefaultTTL.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		byTrack: make(map[string]*entry),
		byTask:  make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Put регистрирует заявку. Пустые идентификаторы не индексируются.
func (r *Registry) Put(gen *domain.Generation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := &entry{gen: gen, touched: r.now()}
	if gen.TrackID != "" {
		r.byTrack[gen.TrackID] = e
	}
	if gen.TaskID != "" {
		r.byTask[gen.TaskID] = e
	}
}

// GetByTrack возвращает заявку по track_id и продлевает её TTL.
func (r *Registry) GetByTrack(trackID string) (*domain.Generation, error) {
	return r.get(r.byTrack, trackID)
}

// GetByTask возвращает заявку по task_id и продлевает её TTL.
func (r *Registry) GetByTask(taskID string) (*domain.Generation, error) {
	return r.get(r.byTask, taskID)
}

func (r *Registry) get(index map[string]*entry, id string) (*domain.Generation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := index[id]
	if !ok {
		return nil, ErrNotFound
	}

	if r.now().Sub(e.touched) > r.ttl {
		r.evict(e)
		return nil, ErrNotFound
	}

	e.touched = r.now()
	return e.gen, nil
}

// Sweep удаляет просроченные записи и возвращает их число.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for _, e := range r.byTrack {
		if e.touched.Before(cutoff) {
			r.evict(e)
			removed++
		}
	}
	// Записи только с task_id (без track_id) живут лишь во втором индексе
	for _, e := range r.byTask {
		if e.touched.Before(cutoff) {
			r.evict(e)
			removed++
		}
	}
	return removed
}

// evict удаляет запись из обоих индексов. Вызывается под mu.
func (r *Registry) evict(e *entry) {
	if e.gen.TrackID != "" {
		delete(r.byTrack, e.gen.TrackID)
	}
	if e.gen.TaskID != "" {
		delete(r.byTask, e.gen.TaskID)
	}
}

// Len возвращает число записей в индексе track_id.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byTrack)
}
