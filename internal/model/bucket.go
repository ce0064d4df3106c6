package model

import "time"

// BirthdayBucket группа контактов, которых нужно поздравить в указанный день недели
type BirthdayBucket struct {
	Weekday time.Weekday
	Names   []string
}

// BirthdayBuckets результат запроса ближайших дней рождения.
// Порядок групп соответствует порядку первого появления дня недели
type BirthdayBuckets []BirthdayBucket

// Lookup возвращает имена для дня недели
func (b BirthdayBuckets) Lookup(day time.Weekday) ([]string, bool) {
	for _, bucket := range b {
		if bucket.Weekday == day {
			return bucket.Names, true
		}
	}
	return nil, false
}

// Add добавляет имя в группу дня недели, создавая группу при необходимости
func (b BirthdayBuckets) Add(day time.Weekday, name string) BirthdayBuckets {
	for i := range b {
		if b[i].Weekday == day {
			b[i].Names = append(b[i].Names, name)
			return b
		}
	}
	return append(b, BirthdayBucket{Weekday: day, Names: []string{name}})
}
