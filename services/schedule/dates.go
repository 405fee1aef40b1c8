package schedule

import (
	"time"

	"parenthub/models"
)

var indonesianDays = map[time.Weekday]string{
	time.Sunday:    "Min",
	time.Monday:    "Sen",
	time.Tuesday:   "Sel",
	time.Wednesday: "Rab",
	time.Thursday:  "Kam",
	time.Friday:    "Jum",
	time.Saturday:  "Sab",
}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// NextSevenDays returns the date-picker entries for today and the six days
// after it, with Indonesian day and month labels.
func NextSevenDays(now time.Time) []models.BookingDate {
	dates := make([]models.BookingDate, 0, 7)
	for i := 0; i < 7; i++ {
		d := now.AddDate(0, 0, i)
		dates = append(dates, models.BookingDate{
			Day:      indonesianDays[d.Weekday()],
			Date:     d.Format("02"),
			FullDate: formatFullDate(d),
		})
	}
	return dates
}

func formatFullDate(d time.Time) string {
	return longDayName(d.Weekday()) + d.Format(", 2 ") + indonesianMonths[d.Month()-1] + d.Format(" 2006")
}

// FormatDate renders a date the way transaction records display it,
// e.g. "29 Agustus 2026".
func FormatDate(d time.Time) string {
	return d.Format("2 ") + indonesianMonths[d.Month()-1] + d.Format(" 2006")
}

func longDayName(w time.Weekday) string {
	switch w {
	case time.Sunday:
		return "Minggu"
	case time.Monday:
		return "Senin"
	case time.Tuesday:
		return "Selasa"
	case time.Wednesday:
		return "Rabu"
	case time.Thursday:
		return "Kamis"
	case time.Friday:
		return "Jumat"
	default:
		return "Sabtu"
	}
}
