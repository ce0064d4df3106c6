package model

import (
	"fmt"
	"slices"
	"strings"
)

// notAvailable выводится вместо отсутствующих телефонов и даты рождения
const notAvailable = "N/A"

// Record представляет контакт (доменная модель)
type Record struct {
	ID       string        // UUID записи, назначается репозиторием
	Name     string        // Имя контакта, уникальный ключ
	Phones   []PhoneNumber // Телефоны в порядке добавления
	Birthday Birthday      // Дата рождения (может быть не задана)
}

// NewRecord создает пустую запись с указанным именем
func NewRecord(name string) (*Record, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Record{Name: name}, nil
}

// AddPhone проверяет номер и добавляет его в конец списка. Дубликаты допускаются
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhoneNumber(raw)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, phone)
	return nil
}

// RemovePhone удаляет первый совпадающий номер, если он есть
func (r *Record) RemovePhone(raw string) {
	i := r.phoneIndex(raw)
	if i < 0 {
		return
	}
	r.Phones = slices.Delete(r.Phones, i, i+1)
}

// EditPhone заменяет oldPhone на newPhone.
// newPhone проверяется до любых изменений; если oldPhone отсутствует, newPhone все равно добавляется
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	phone, err := NewPhoneNumber(newPhone)
	if err != nil {
		return err
	}
	r.RemovePhone(oldPhone)
	r.Phones = append(r.Phones, phone)
	return nil
}

// FindPhone возвращает сохраненный номер, равный raw
func (r *Record) FindPhone(raw string) (string, bool) {
	i := r.phoneIndex(raw)
	if i < 0 {
		return "", false
	}
	return r.Phones[i].String(), true
}

// SetBirthday проверяет дату и заменяет текущую дату рождения
func (r *Record) SetBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.Birthday = birthday
	return nil
}

// PhoneValues возвращает номера в виде строк
func (r *Record) PhoneValues() []string {
	values := make([]string, len(r.Phones))
	for i, phone := range r.Phones {
		values[i] = phone.String()
	}
	return values
}

// Clone возвращает независимую копию записи
func (r *Record) Clone() Record {
	clone := *r
	clone.Phones = slices.Clone(r.Phones)
	return clone
}

func (r *Record) String() string {
	phones := notAvailable
	if len(r.Phones) > 0 {
		phones = strings.Join(r.PhoneValues(), "; ")
	}
	birthday := notAvailable
	if !r.Birthday.IsZero() {
		birthday = r.Birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s", r.Name, phones, birthday)
}

func (r *Record) phoneIndex(raw string) int {
	return slices.IndexFunc(r.Phones, func(p PhoneNumber) bool {
		return p.value == raw
	})
}
