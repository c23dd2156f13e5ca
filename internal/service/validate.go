package service

import (
	"strconv"
	"strings"
	"time"
)

const (
	maxUsernameLen = 150
	maxTitleLen    = 200
	dateLayout     = "2006-01-02"
)

// допустимые форматы write_date, от точного к общему
var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	dateLayout,
}

// requireText проверяет обязательное текстовое поле. partial=true пропускает отсутствующие поля.
func requireText(v *ValidationError, field string, val *string, partial bool) {
	if val == nil {
		if !partial {
			v.Add(field, msgRequired)
		}
		return
	}
	if strings.TrimSpace(*val) == "" {
		v.Add(field, msgBlank)
	}
}

func maxLen(v *ValidationError, field string, val *string, n int) {
	if val != nil && len([]rune(*val)) > n {
		v.Add(field, "Ensure this field has no more than "+strconv.Itoa(n)+" characters.")
	}
}

// parseDay разбирает YYYY-MM-DD в полночь UTC.
func parseDay(field, s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fieldError(field, msgDateFormat)
	}
	return t, nil
}

// parseDatetime принимает RFC 3339, локальное время без зоны (считается UTC) или голую дату.
func parseDatetime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
