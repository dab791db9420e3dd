package statement

import (
	"errors"
	"fmt"
)

var ErrUnknownLanguage = errors.New("unknown statement language")

// Labels holds the fmt templates for each statement line.
// Header takes the customer, Line takes play name, formatted amount and audience,
// Total takes the formatted total and Credits the credit count.
type Labels struct {
	Header  string
	Line    string
	Total   string
	Credits string
}

var KoreanLabels = Labels{
	Header:  "청구내역 (고객명: %s)",
	Line:    "%s : %s (%d석)",
	Total:   "총액: %s",
	Credits: "적립 포인트: %d점",
}

var EnglishLabels = Labels{
	Header:  "Statement for %s",
	Line:    "%s : %s (%d seats)",
	Total:   "Amount owed: %s",
	Credits: "Earned credits: %d points",
}

// LabelsFor returns the labels for a language code ("ko" or "en")
func LabelsFor(lang string) (Labels, error) {
	switch lang {
	case "", "ko":
		return KoreanLabels, nil
	case "en":
		return EnglishLabels, nil
	default:
		return Labels{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
}
