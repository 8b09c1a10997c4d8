package timetable

// dayNames indexes Indonesian day names by platform weekday (0=Sunday).
var dayNames = []string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// DayName returns the Indonesian name for a day index 0..6, or "" when the
// index is out of range. School days use 1 (Senin) through 6 (Sabtu).
func DayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return ""
	}
	return dayNames[day]
}

// ShortDayName returns the three-letter abbreviation used in compact
// tables, e.g. "Sen" for Senin.
func ShortDayName(day int) string {
	name := DayName(day)
	if len(name) < 3 {
		return name
	}
	return name[:3]
}
