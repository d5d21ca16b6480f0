package datefmt

import "time"

const (
	isoLayout     = "2006-01-02"
	displayLayout = "Jan 02, 2006"
)

// FormatDisplayDate переводит календарную дату ISO в вид "Aug 20, 2025".
// Дата разбирается в UTC, поэтому результат не зависит от часового пояса машины.
// Некорректная строка возвращается без изменений.
func FormatDisplayDate(iso string) string {
	if iso == "" {
		return ""
	}

	t, err := time.ParseInLocation(isoLayout, iso, time.UTC)
	if err != nil {
		return iso
	}

	return t.Format(displayLayout)
}
