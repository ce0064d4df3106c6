package service

import (
	"context"
	"time"

	"assistant-bot/internal/model"
)

// AddressBook интерфейс для бизнес-логики работы с контактами
type AddressBook interface {
	// AddRecord создает контакт с одним телефоном, заменяя существующий с тем же именем
	AddRecord(ctx context.Context, name, phone string) (model.Record, error)

	// ChangePhone заменяет первый телефон контакта
	ChangePhone(ctx context.Context, name, newPhone string) error

	// EditPhone заменяет указанный телефон контакта
	EditPhone(ctx context.Context, name, oldPhone, newPhone string) error

	// RemovePhone удаляет телефон контакта
	RemovePhone(ctx context.Context, name, phone string) error

	// Find возвращает контакт по имени
	Find(ctx context.Context, name string) (model.Record, error)

	// Delete удаляет контакт по имени
	Delete(ctx context.Context, name string) error

	// GetPhone возвращает телефоны контакта
	GetPhone(ctx context.Context, name string) ([]string, error)

	// ListAll возвращает все контакты в порядке добавления
	ListAll(ctx context.Context) ([]model.Record, error)

	// AddBirthday задает дату рождения контакта
	AddBirthday(ctx context.Context, name, date string) error

	// ShowBirthday возвращает дату рождения контакта (нулевую, если не задана)
	ShowBirthday(ctx context.Context, name string) (model.Birthday, error)

	// UpcomingBirthdays группирует по дням недели контакты с днем рождения в ближайшие 7 дней
	UpcomingBirthdays(ctx context.Context, today time.Time) (model.BirthdayBuckets, error)
}
