package repository

import (
	"context"
	"sync"
)

// MemoryRepository хранит баллы в памяти процесса без вытеснения.
type MemoryRepository struct {
	mu     sync.RWMutex
	points map[string]int
}

// NewMemoryRepository создаёт пустое хранилище в памяти.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		points: make(map[string]int),
	}
}

// Close ничего не делает и нужен для совместимости с другими хранилищами.
func (r *MemoryRepository) Close() error {
	return nil
}

// SavePoints сохраняет баллы, перезаписывая предыдущее значение.
func (r *MemoryRepository) SavePoints(_ context.Context, id string, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.points[id] = points
	return nil
}

// GetPoints возвращает сохранённые баллы или ErrNotFound.
func (r *MemoryRepository) GetPoints(_ context.Context, id string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	points, ok := r.points[id]
	if !ok {
		return 0, ErrNotFound
	}
	return points, nil
}
