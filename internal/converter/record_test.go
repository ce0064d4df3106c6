package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant-bot/internal/model"
)

func TestRecordsToText(t *testing.T) {
	assert.Equal(t, "", RecordsToText(nil))

	ann, err := model.NewRecord("Ann")
	require.NoError(t, err)
	require.NoError(t, ann.AddPhone("1111111111"))

	bob, err := model.NewRecord("Bob")
	require.NoError(t, err)
	require.NoError(t, bob.AddPhone("2222222222"))
	require.NoError(t, bob.AddPhone("3333333333"))
	require.NoError(t, bob.SetBirthday("01.02.2003"))

	assert.Equal(t,
		"Contact name: Ann, phones: 1111111111, birthday: N/A\n"+
			"Contact name: Bob, phones: 2222222222; 3333333333, birthday: 01.02.2003",
		RecordsToText([]model.Record{*ann, *bob}))
}

func TestPhonesToText(t *testing.T) {
	assert.Equal(t, "", PhonesToText(nil))
	assert.Equal(t, "1111111111", PhonesToText([]string{"1111111111"}))
	assert.Equal(t, "1111111111; 2222222222", PhonesToText([]string{"1111111111", "2222222222"}))
}

func TestBucketsToText(t *testing.T) {
	assert.Equal(t, "", BucketsToText(nil))
	assert.Equal(t, "Friday: Ann\nMonday: Bob, Carl", BucketsToText(model.BirthdayBuckets{
		{Weekday: time.Friday, Names: []string{"Ann"}},
		{Weekday: time.Monday, Names: []string{"Bob", "Carl"}},
	}))
}
