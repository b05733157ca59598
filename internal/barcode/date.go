package barcode

import "time"

// dateLen is the fixed width of GS1 date fields (YYMMDD).
const dateLen = 6

// pivotYear splits two-digit years: >= 80 maps to the 1900s, below to
// the 2000s.
const pivotYear = 80

// decodeDate decodes a YYMMDD field. Day 00 means "last day of the
// month". The decoded date must round-trip (time.Date normalizes out of
// range components, so a mismatch means the input was invalid) or the
// field is rejected.
func decodeDate(s string) (time.Time, bool) {
	if len(s) != dateLen || !allDigits(s) {
		return time.Time{}, false
	}

	yy := atoi2(s[0:2])
	mm := atoi2(s[2:4])
	dd := atoi2(s[4:6])

	year := 2000 + yy
	if yy >= pivotYear {
		year = 1900 + yy
	}

	if dd == 0 {
		// Last day of the month: day zero of the following month.
		d := time.Date(year, time.Month(mm+1), 0, 0, 0, 0, 0, time.UTC)
		if int(d.Month()) != mm || d.Year() != year {
			return time.Time{}, false
		}
		return d, true
	}

	d := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != mm || d.Day() != dd {
		return time.Time{}, false
	}
	return d, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
