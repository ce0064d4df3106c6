package model

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// BirthdayLayout формат даты рождения: DD.MM.YYYY
const BirthdayLayout = "02.01.2006"

const (
	phoneRules    = "len=10,number"
	birthdayRules = "required,datetime=" + BirthdayLayout
)

var validate = validator.New()

// PhoneNumber номер телефона ровно из 10 цифр
type PhoneNumber struct {
	value string
}

// NewPhoneNumber проверяет строку и создает PhoneNumber
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if err := validate.Var(raw, phoneRules); err != nil {
		return PhoneNumber{}, fmt.Errorf("%w: %q must contain exactly 10 digits", ErrInvalidPhone, raw)
	}
	return PhoneNumber{value: raw}, nil
}

func (p PhoneNumber) String() string { return p.value }

// Birthday дата рождения контакта. Нулевое значение означает "не задана"
type Birthday struct {
	date time.Time
	set  bool
}

// NewBirthday разбирает дату в формате DD.MM.YYYY.
// Несуществующие даты (30.02, 31.04) и даты без ведущих нулей отклоняются
func NewBirthday(raw string) (Birthday, error) {
	if err := validate.Var(raw, birthdayRules); err != nil {
		return Birthday{}, fmt.Errorf("%w: %q does not match DD.MM.YYYY", ErrInvalidDate, raw)
	}

	date, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return Birthday{date: date, set: true}, nil
}

// Date возвращает дату рождения (полночь UTC)
func (b Birthday) Date() time.Time { return b.date }

// IsZero сообщает, что дата рождения не задана
func (b Birthday) IsZero() bool { return !b.set }

func (b Birthday) String() string {
	if b.IsZero() {
		return ""
	}
	return b.date.Format(BirthdayLayout)
}
