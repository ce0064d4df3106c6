package model

import "errors"

// Виды ошибок доменной модели. Проверяются через errors.Is
var (
	ErrInvalidName     = errors.New("name cannot be empty")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidDate     = errors.New("invalid date")
	ErrNotFound        = errors.New("record not found")
	ErrIndexOutOfRange = errors.New("phone index out of range")
)
