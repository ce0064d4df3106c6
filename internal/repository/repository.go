package repository

import (
	"context"

	"assistant-bot/internal/model"
)

// RecordRepository интерфейс для работы с контактами в хранилище
type RecordRepository interface {
	// Save сохраняет запись по имени, заменяя существующую.
	// Запись без ID получает новый UUID
	Save(ctx context.Context, record model.Record) (model.Record, error)

	// GetByName возвращает копию записи по имени
	GetByName(ctx context.Context, name string) (model.Record, error)

	// List возвращает все записи в порядке добавления
	List(ctx context.Context) ([]model.Record, error)

	// Delete удаляет запись по имени
	Delete(ctx context.Context, name string) error
}
