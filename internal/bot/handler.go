package bot

import (
	"context"
	"fmt"
	"time"

	"assistant-bot/internal/converter"
	svc "assistant-bot/internal/service"
)

// CommandFunc обработчик одной команды: аргументы → ответ пользователю
type CommandFunc func(ctx context.Context, args []string) (string, error)

// Handler реализует команды бота поверх адресной книги
type Handler struct {
	book svc.AddressBook
	now  func() time.Time
}

// NewHandler создает новый экземпляр хэндлера.
// now задает источник текущей даты для поиска ближайших дней рождения, nil означает time.Now
func NewHandler(book svc.AddressBook, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		book: book,
		now:  now,
	}
}

// Commands возвращает таблицу команд по имени
func (h *Handler) Commands() map[string]CommandFunc {
	return map[string]CommandFunc{
		"hello":         h.Hello,
		"add":           h.AddContact,
		"change":        h.ChangeContact,
		"edit-phone":    h.EditPhone,
		"remove-phone":  h.RemovePhone,
		"phone":         h.ShowPhone,
		"all":           h.ShowAll,
		"delete":        h.DeleteContact,
		"add-birthday":  h.AddBirthday,
		"show-birthday": h.ShowBirthday,
		"birthdays":     h.Birthdays,
	}
}

// Hello приветствует пользователя
func (h *Handler) Hello(_ context.Context, _ []string) (string, error) {
	return "How can I help you?", nil
}

// AddContact: add <name> <phone>
func (h *Handler) AddContact(ctx context.Context, args []string) (string, error) {
	if err := expectArgs(args, 2); err != nil {
		return "", err
	}

	if _, err := h.book.AddRecord(ctx, args[0], args[1]); err != nil {
		return "", err
	}

	return "Contact added.", nil
}

// ChangeContact: change <name> <phone>. Заменяет первый телефон контакта
func (h *Handler) ChangeContact(ctx context.Context, args []string) (string, error) {
	if err := expectArgs(args, 2); err != nil {
		return "", err
	}

	if err := h.book.ChangePhone(ctx, args[0], args[1]); err != nil {
		return "", err
	}

	return fmt.Sprintf("Phone number for %s changed.", args[0]), nil
}

// EditPhone: edit-phone <name> <old> <new>
func (h *Handler) EditPhone(ctx context.Context, args []string) (string, error) {
	if err := expectArgs(args, 3); err != nil {
		return "", err
	}

	if err := h.book.EditPhone(ctx, args[0], args[1], args[2]); err != nil {
		return "", err
	}

	return fmt.Sprintf("Phone number for %s updated.", args[0]), nil
}

// RemovePhone: remove-phone <name> <phone>
func (h *Handler) RemovePhone(ctx context.Context, args []string) (string, error) {
	if err := expectArgs(args, 2); err != nil {
		return "", err
	}

	if err := h.book.RemovePhone(ctx, args[0], args[1]); err != nil {
		return "", err
	}

	return "Phone number removed.", nil
}

// ShowPhone: phone <name>
func (h *Handler) ShowPhone(ctx context.Context, args []string) (string, error) {
	if err := expectArgs(args, 1); err != nil {
		return "", err
	}

	phones, err := h.book.GetPhone(ctx, args[0])
	if err != nil {
		return "", err
	}
	if len(phones) == 0 {
		return fmt.Sprintf("%s has no phone numbers.", args[0]), nil
	}

	return converter.PhonesToText(phones), nil
}

// ShowAll: all
func (h *Handler) ShowAll(ctx context.Context, args []string) (string, error) {
	if err := expectArgs(args, 0); err != nil {
		return "", err
	}

	records, err := h.book.ListAll(ctx)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "Address book is empty.", nil
	}

	return converter.RecordsToText(records), nil
}

// DeleteContact: delete <name>
func (h *Handler) DeleteContact(ctx context.Context, args []string) (string, error) {
	if err := expectArgs(args, 1); err != nil {
		return "", err
	}

	if err := h.book.Delete(ctx, args[0]); err != nil {
		return "", err
	}

	return "Contact deleted.", nil
}

// AddBirthday: add-birthday <name> <DD.MM.YYYY>
func (h *Handler) AddBirthday(ctx context.Context, args []string) (string, error) {
	if err := expectArgs(args, 2); err != nil {
		return "", err
	}

	if err := h.book.AddBirthday(ctx, args[0], args[1]); err != nil {
		return "", err
	}

	return "Birthday added.", nil
}

// ShowBirthday: show-birthday <name>
func (h *Handler) ShowBirthday(ctx context.Context, args []string) (string, error) {
	if err := expectArgs(args, 1); err != nil {
		return "", err
	}

	birthday, err := h.book.ShowBirthday(ctx, args[0])
	if err != nil {
		return "", err
	}
	if birthday.IsZero() {
		return fmt.Sprintf("Birthday for %s is not set.", args[0]), nil
	}

	return fmt.Sprintf("%s's birthday: %s", args[0], birthday), nil
}

// Birthdays: birthdays. Контакты с днем рождения в ближайшие 7 дней по дням недели
func (h *Handler) Birthdays(ctx context.Context, args []string) (string, error) {
	if err := expectArgs(args, 0); err != nil {
		return "", err
	}

	buckets, err := h.book.UpcomingBirthdays(ctx, h.now())
	if err != nil {
		return "", err
	}
	if len(buckets) == 0 {
		return "No upcoming birthdays this week.", nil
	}

	return converter.BucketsToText(buckets), nil
}
