package converter

import (
	"strings"

	"assistant-bot/internal/model"
)

// RecordsToText конвертирует список контактов в строки для вывода, по одной на контакт
func RecordsToText(records []model.Record) string {
	if len(records) == 0 {
		return ""
	}

	lines := make([]string, len(records))
	for i := range records {
		lines[i] = records[i].String()
	}

	return strings.Join(lines, "\n")
}

// PhonesToText конвертирует телефоны в строку через "; "
func PhonesToText(phones []string) string {
	return strings.Join(phones, "; ")
}

// BucketsToText конвертирует группы дней рождения в строки вида "Monday: Ann, Bob"
func BucketsToText(buckets model.BirthdayBuckets) string {
	if len(buckets) == 0 {
		return ""
	}

	lines := make([]string, len(buckets))
	for i, bucket := range buckets {
		lines[i] = bucket.Weekday.String() + ": " + strings.Join(bucket.Names, ", ")
	}

	return strings.Join(lines, "\n")
}
