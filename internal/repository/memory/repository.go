package memory

import (
	"context"
	"fmt"
	"slices"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository"

	"github.com/google/uuid"
)

// ErrRecordNotFound возвращается, когда контакт не найден
var ErrRecordNotFound = fmt.Errorf("memory: %w", model.ErrNotFound)

var _ repository.RecordRepository = (*repo)(nil)

// repo хранит записи в map и помнит порядок добавления имен.
// Доступ однопоточный, блокировки не нужны
type repo struct {
	order   []string
	records map[string]model.Record
}

// NewRepository создает новый экземпляр in-memory репозитория
func NewRepository() repository.RecordRepository {
	return &repo{
		records: make(map[string]model.Record),
	}
}

// Save сохраняет запись. Перезапись существующего имени не меняет его позицию в списке
func (r *repo) Save(ctx context.Context, record model.Record) (model.Record, error) {
	if record.Name == "" {
		return model.Record{}, model.ErrInvalidName
	}

	// Генерируем UUID если не передан
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	if _, exists := r.records[record.Name]; !exists {
		r.order = append(r.order, record.Name)
	}
	r.records[record.Name] = record.Clone()

	return record.Clone(), nil
}

// GetByName возвращает копию записи по имени
func (r *repo) GetByName(ctx context.Context, name string) (model.Record, error) {
	record, exists := r.records[name]
	if !exists {
		return model.Record{}, ErrRecordNotFound
	}

	return record.Clone(), nil
}

// List возвращает все записи в порядке добавления
func (r *repo) List(ctx context.Context) ([]model.Record, error) {
	records := make([]model.Record, 0, len(r.order))
	for _, name := range r.order {
		record := r.records[name]
		records = append(records, record.Clone())
	}

	return records, nil
}

// Delete удаляет запись по имени
func (r *repo) Delete(ctx context.Context, name string) error {
	if _, exists := r.records[name]; !exists {
		return ErrRecordNotFound
	}

	delete(r.records, name)
	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })

	return nil
}
