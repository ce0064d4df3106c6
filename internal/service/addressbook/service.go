package addressbook

import (
	"context"
	"fmt"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository"
	svc "assistant-bot/internal/service"
)

var _ svc.AddressBook = (*service)(nil)

type service struct {
	recordRepository repository.RecordRepository
	events           *EventService
}

// NewAddressBook создает новый экземпляр сервиса адресной книги.
// events может быть nil, тогда события не публикуются
func NewAddressBook(recordRepository repository.RecordRepository, events *EventService) svc.AddressBook {
	return &service{
		recordRepository: recordRepository,
		events:           events,
	}
}

// AddRecord создает контакт с одним телефоном.
// Существующий контакт с тем же именем заменяется целиком, без слияния
func (s *service) AddRecord(ctx context.Context, name, phone string) (model.Record, error) {
	record, err := model.NewRecord(name)
	if err != nil {
		return model.Record{}, err
	}

	if err := record.AddPhone(phone); err != nil {
		return model.Record{}, err
	}

	saved, err := s.recordRepository.Save(ctx, *record)
	if err != nil {
		return model.Record{}, fmt.Errorf("save record: %w", err)
	}

	s.publish(EventRecordAdded, saved)

	return saved, nil
}

// ChangePhone заменяет телефон с индексом 0 по правилам EditPhone
func (s *service) ChangePhone(ctx context.Context, name, newPhone string) error {
	return s.update(ctx, name, func(record *model.Record) error {
		if len(record.Phones) == 0 {
			return fmt.Errorf("%w: %s has no phones", model.ErrIndexOutOfRange, name)
		}
		return record.EditPhone(record.Phones[0].String(), newPhone)
	})
}

// EditPhone заменяет oldPhone на newPhone
func (s *service) EditPhone(ctx context.Context, name, oldPhone, newPhone string) error {
	return s.update(ctx, name, func(record *model.Record) error {
		return record.EditPhone(oldPhone, newPhone)
	})
}

// RemovePhone удаляет телефон, отсутствующий номер не является ошибкой
func (s *service) RemovePhone(ctx context.Context, name, phone string) error {
	return s.update(ctx, name, func(record *model.Record) error {
		record.RemovePhone(phone)
		return nil
	})
}

// Find возвращает контакт по имени
func (s *service) Find(ctx context.Context, name string) (model.Record, error) {
	return s.recordRepository.GetByName(ctx, name)
}

// Delete удаляет контакт по имени
func (s *service) Delete(ctx context.Context, name string) error {
	record, err := s.Find(ctx, name)
	if err != nil {
		return err
	}

	if err := s.recordRepository.Delete(ctx, name); err != nil {
		return err
	}

	s.publish(EventRecordDeleted, record)

	return nil
}

// GetPhone возвращает телефоны контакта
func (s *service) GetPhone(ctx context.Context, name string) ([]string, error) {
	record, err := s.Find(ctx, name)
	if err != nil {
		return nil, err
	}

	return record.PhoneValues(), nil
}

// ListAll возвращает все контакты
func (s *service) ListAll(ctx context.Context) ([]model.Record, error) {
	return s.recordRepository.List(ctx)
}

// AddBirthday задает дату рождения контакта
func (s *service) AddBirthday(ctx context.Context, name, date string) error {
	return s.update(ctx, name, func(record *model.Record) error {
		return record.SetBirthday(date)
	})
}

// ShowBirthday возвращает дату рождения контакта
func (s *service) ShowBirthday(ctx context.Context, name string) (model.Birthday, error) {
	record, err := s.Find(ctx, name)
	if err != nil {
		return model.Birthday{}, err
	}

	return record.Birthday, nil
}

// update загружает запись, применяет изменение и сохраняет результат.
// При ошибке изменения хранилище не трогается
func (s *service) update(ctx context.Context, name string, mutate func(*model.Record) error) error {
	record, err := s.Find(ctx, name)
	if err != nil {
		return err
	}

	if err := mutate(&record); err != nil {
		return err
	}

	if _, err := s.recordRepository.Save(ctx, record); err != nil {
		return fmt.Errorf("save record: %w", err)
	}

	return nil
}

func (s *service) publish(kind EventKind, record model.Record) {
	if s.events == nil {
		return
	}
	s.events.Publish(NewEvent(kind, record))
}
