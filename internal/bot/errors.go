package bot

import (
	"errors"
	"fmt"

	"assistant-bot/internal/model"
)

// ErrArity возвращается, когда команде передано неверное число аргументов
var ErrArity = errors.New("incorrect number of arguments")

// Сообщения пользователю для каждого вида ошибки
const (
	msgInvalidPhone    = "Phone number must contain exactly 10 digits."
	msgInvalidDate     = "Invalid date format. Use DD.MM.YYYY."
	msgNotFound        = "Contact not found."
	msgArity           = "Incorrect number of arguments."
	msgIndexOutOfRange = "Contact has no phone numbers."
	msgInvalidName     = "Name cannot be empty."
	msgInternal        = "Internal error."
)

func expectArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: expected %d, got %d", ErrArity, n, len(args))
	}
	return nil
}

// handleError конвертирует внутренние ошибки в сообщения для пользователя
func handleError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrArity):
		return msgArity
	case errors.Is(err, model.ErrInvalidPhone):
		return msgInvalidPhone
	case errors.Is(err, model.ErrInvalidDate):
		return msgInvalidDate
	case errors.Is(err, model.ErrNotFound):
		return msgNotFound
	case errors.Is(err, model.ErrIndexOutOfRange):
		return msgIndexOutOfRange
	case errors.Is(err, model.ErrInvalidName):
		return msgInvalidName
	default:
		return msgInternal
	}
}
