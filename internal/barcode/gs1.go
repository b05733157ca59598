// Package barcode decodes traceability fields out of scanned GS1-128
// payloads. Only the application identifiers the back office cares about
// are understood: 01 (GTIN, skipped), 10 (lot number) and 15/17
// (best-before / expiration dates). Everything else is skipped
// best-effort.
package barcode

import (
	"strings"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

// groupSeparator is the ASCII GS control character used as a variable
// length field terminator in raw GS1-128 payloads.
const groupSeparator = "\x1d"

// symbologyPrefix is the FNC1 symbology identifier some scanners prepend.
const symbologyPrefix = "]C1"

// minRawDigitLen is the minimum length of a pure digit string before we
// assume it is an unbracketed GS1 payload rather than a plain EAN.
const minRawDigitLen = 16

// skipBudget bounds the single-character recovery skips on unrecognized
// application identifiers. Malformed input can desynchronize the walk;
// exhausting the budget means "no more fields parsable", not an error.
const skipBudget = 32

// ParseGS1 extracts the lot number and expiration date from a scanned
// string. Inputs that do not look GS1-encoded yield the zero value; an
// unparsable field is dropped rather than guessed at.
func ParseGS1(raw string) domain.GS1Data {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, symbologyPrefix)
	if s == "" {
		return domain.GS1Data{}
	}

	switch {
	case strings.Contains(s, "("):
		return parseBracketed(s)
	case strings.Contains(raw, symbologyPrefix) || strings.Contains(s, groupSeparator) || isLongDigitRun(s):
		return parseRaw(s)
	default:
		return domain.GS1Data{}
	}
}

func isLongDigitRun(s string) bool {
	if len(s) < minRawDigitLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseBracketed handles human-readable payloads like
// "(01)03712345678903(17)260228(10)LOT-42".
func parseBracketed(s string) domain.GS1Data {
	var data domain.GS1Data

	if lot, ok := bracketedValue(s, "10"); ok && lot != "" {
		data.LotNumber = &lot
	}

	// AI 17 (expiration) wins over 15 (best before) when both appear.
	for _, ai := range []string{"17", "15"} {
		v, ok := bracketedValue(s, ai)
		if !ok || len(v) < dateLen {
			continue
		}
		if d, ok := decodeDate(v[:dateLen]); ok {
			data.ExpirationDate = &d
			break
		}
	}

	return data
}

// bracketedValue returns the first value of "(ai)" in scan order,
// terminated by the next "(" or end of string.
func bracketedValue(s, ai string) (string, bool) {
	marker := "(" + ai + ")"
	idx := strings.Index(s, marker)
	if idx < 0 {
		return "", false
	}
	rest := s[idx+len(marker):]
	if end := strings.Index(rest, "("); end >= 0 {
		rest = rest[:end]
	}
	return rest, true
}

// parseRaw walks an unbracketed payload left to right. AI 01 is fixed
// width and skipped; 17/15 consume exactly six digits; 10 runs until the
// group separator or end of string. Unknown prefixes advance one
// character at a time until the skip budget runs out.
func parseRaw(s string) domain.GS1Data {
	var data domain.GS1Data
	expAI := "" // AI that produced data.ExpirationDate
	skipsLeft := skipBudget
	i := 0

	for i+2 <= len(s) {
		// Field separators between variable length fields.
		if strings.HasPrefix(s[i:], groupSeparator) {
			i++
			continue
		}

		switch s[i : i+2] {
		case "01":
			// GTIN: fixed 14 digits, not needed here.
			i += 2 + 14
		case "17", "15":
			ai := s[i : i+2]
			i += 2
			if i+dateLen > len(s) {
				return data
			}
			if d, ok := decodeDate(s[i : i+dateLen]); ok {
				// First date per AI wins; AI 17 replaces an AI 15 date.
				if data.ExpirationDate == nil || (ai == "17" && expAI == "15") {
					data.ExpirationDate = &d
					expAI = ai
				}
			}
			i += dateLen
		case "10":
			i += 2
			end := strings.Index(s[i:], groupSeparator)
			if end < 0 {
				end = len(s) - i
			}
			if end > 0 {
				lot := s[i : i+end]
				data.LotNumber = &lot
			}
			i += end
		default:
			// Best-effort recovery: not guaranteed to resynchronize.
			if skipsLeft == 0 {
				return data
			}
			skipsLeft--
			i++
		}
	}

	return data
}
