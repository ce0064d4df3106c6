package addressbook

import (
	"context"
	"time"

	"assistant-bot/internal/model"
)

// lookaheadDays размер окна: сегодня и следующие 6 дней
const lookaheadDays = 7

// UpcomingBirthdays возвращает контакты, чей день рождения наступает в ближайшие 7 дней.
// Дни рождения в субботу и воскресенье попадают в группу понедельника, сама дата не сдвигается
func (s *service) UpcomingBirthdays(ctx context.Context, today time.Time) (model.BirthdayBuckets, error) {
	records, err := s.recordRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	day := dateOf(today)

	var buckets model.BirthdayBuckets
	for _, record := range records {
		if record.Birthday.IsZero() {
			continue
		}

		occurrence := NextOccurrence(record.Birthday, day)
		if daysBetween(day, occurrence) >= lookaheadDays {
			continue
		}

		buckets = buckets.Add(congratulationDay(occurrence.Weekday()), record.Name)
	}

	return buckets, nil
}

// NextOccurrence возвращает ближайшую к today (включительно) дату дня рождения.
// 29 февраля в невисокосный год приходится на 1 марта
func NextOccurrence(birthday model.Birthday, today time.Time) time.Time {
	day := dateOf(today)
	date := birthday.Date()

	occurrence := time.Date(day.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if occurrence.Before(day) {
		occurrence = time.Date(day.Year()+1, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	}

	return occurrence
}

func congratulationDay(weekday time.Weekday) time.Weekday {
	switch weekday {
	case time.Saturday, time.Sunday:
		return time.Monday
	default:
		return weekday
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
