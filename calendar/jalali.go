package calendar

import "time"

// Jalali is the Iranian solar (Shamsi) calendar. The week starts on
// Shanbeh (Saturday) and the script runs right to left.
type Jalali struct{}

// The 33-year cycle arithmetic below is exact inside this span.
// Outside it the cycle drifts against the astronomical calendar, so
// conversions refuse rather than silently mislabel leap years.
const (
	jalaliMinYear = 1178
	jalaliMaxYear = 1633
)

var jalaliMonths = []string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

var jalaliDays = []string{"Sh", "Ye", "Do", "Se", "Ch", "Pa", "Jo"}

// Saturday is column zero of the Jalali week.
var goToJalaliWeekday = [7]int{1, 2, 3, 4, 5, 6, 0}

func (Jalali) Name() string { return "jalali" }
func (Jalali) RTL() bool    { return true }
func (Jalali) MinYear() int { return jalaliMinYear }
func (Jalali) MaxYear() int { return jalaliMaxYear }

func (Jalali) Months() []string { return jalaliMonths }
func (Jalali) Days() []string   { return jalaliDays }

func (Jalali) WeekdayIndex(w time.Weekday) int {
	return goToJalaliWeekday[int(w)%7]
}

func (Jalali) MonthDays(year, month int) int {
	if year < jalaliMinYear || year > jalaliMaxYear {
		return 0
	}
	switch {
	case month >= 1 && month <= 6:
		return 31
	case month >= 7 && month <= 11:
		return 30
	case month == 12:
		if isJalaliLeapYear(year) {
			return 30
		}
		return 29
	}
	return 0
}

func (j Jalali) FromTime(t time.Time) (Date, bool) {
	gy, gm, gd := t.UTC().Date()
	jy, jm, jd := gregorianToJalali(gy, int(gm), gd)
	if jy < jalaliMinYear || jy > jalaliMaxYear {
		return Date{}, false
	}
	return Date{
		Year:    jy,
		Month:   jm,
		Day:     jd,
		Weekday: j.WeekdayIndex(t.UTC().Weekday()),
	}, true
}

func (j Jalali) ToTime(d Date) (time.Time, bool) {
	if d.Year < jalaliMinYear || d.Year > jalaliMaxYear {
		return time.Time{}, false
	}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > j.MonthDays(d.Year, d.Month) {
		return time.Time{}, false
	}
	gy, gm, gd := jalaliToGregorian(d.Year, d.Month, d.Day)
	return time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC), true
}

// isJalaliLeapYear derives leapness from the same 33-year-cycle
// counting term the conversions below use, so Esfand's length and the
// day arithmetic can never disagree: a year is leap exactly when the
// cycle term grows by one extra day across it.
func isJalaliLeapYear(year int) bool {
	return jalaliLeapTerm(year+1)-jalaliLeapTerm(year) == 1
}

func jalaliLeapTerm(year int) int {
	jy := year + 1595
	return (jy/33)*8 + ((jy%33)+3)/4
}

func gregorianToJalali(gy, gm, gd int) (int, int, int) {
	jy := 0
	if gy > 1600 {
		jy = 979
		gy -= 1600
	} else {
		gy -= 621
	}

	gy2 := gy
	if gm <= 2 {
		gy2 = gy - 1
	}
	totalDays := 365*gy + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400 - 80 + gd
	monthDays := [...]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	totalDays += monthDays[gm-1]

	jy += 33 * (totalDays / 12053)
	totalDays %= 12053

	jy += 4 * (totalDays / 1461)
	totalDays %= 1461

	if totalDays > 365 {
		jy += (totalDays - 1) / 365
		totalDays = (totalDays - 1) % 365
	}

	var jm, jd int
	if totalDays < 186 {
		jm = 1 + totalDays/31
		jd = 1 + totalDays%31
	} else {
		jm = 7 + (totalDays-186)/30
		jd = 1 + (totalDays-186)%30
	}
	return jy, jm, jd
}

func jalaliToGregorian(jy, jm, jd int) (int, int, int) {
	jy += 1595
	days := -355668 + 365*jy + (jy/33)*8 + ((jy%33)+3)/4 + jd
	if jm < 7 {
		days += (jm - 1) * 31
	} else {
		days += (jm-7)*30 + 186
	}

	gy := 400 * (days / 146097)
	days %= 146097

	if days > 36524 {
		days--
		gy += 100 * (days / 36524)
		days %= 36524
		if days >= 365 {
			days++
		}
	}

	gy += 4 * (days / 1461)
	days %= 1461

	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}

	gd := days + 1
	leap := 0
	if (gy%4 == 0 && gy%100 != 0) || gy%400 == 0 {
		leap = 1
	}
	monthDays := [...]int{31, 28 + leap, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	gm := 0
	for gm < 12 && gd > monthDays[gm] {
		gd -= monthDays[gm]
		gm++
	}
	return gy, gm + 1, gd
}
