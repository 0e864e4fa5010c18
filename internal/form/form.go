// Package form holds the field rules of the prediction form: positive number
// checks, live counters and the submit guard.
package form

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"movieform/internal/domain"
)

// NotPositiveMessage is shown when a submit attempt is rejected
const NotPositiveMessage = "Opening theaters and release days must be greater than 0"

// ErrNotPositive is returned by Validate when a numeric field is not above zero
var ErrNotPositive = errors.New("opening theaters and release days must be greater than 0")

var printer = message.NewPrinter(language.English)

// StripThousands removes grouping commas, as done when a number field gains focus
func StripThousands(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// ParsePositive reads a number that may carry grouping commas and reports
// whether it is greater than zero
func ParsePositive(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(StripThousands(s)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// ParseCount reads a positive whole count, truncating any fraction
func ParseCount(s string) (int, bool) {
	v, ok := ParsePositive(s)
	if !ok || v >= math.MaxInt32 {
		return 0, false
	}
	n := int(v)
	return n, n > 0
}

// FormatThousands groups a count with commas, as done when a number field
// loses focus. Text that is not a count is returned unchanged.
func FormatThousands(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	n, ok := ParseCount(s)
	if !ok {
		return s
	}
	return printer.Sprintf("%d", n)
}

// CounterText is the live hint under a numeric field
func CounterText(s, unit string) string {
	if n, ok := ParseCount(s); ok {
		return printer.Sprintf("%d %s", n, unit)
	}
	return "Enter number of " + unit
}

// GenreCounterText describes how many genres are ticked
func GenreCounterText(selected int) string {
	switch {
	case selected <= 0:
		return "No genres selected"
	case selected == 1:
		return "1 genre selected"
	default:
		return strconv.Itoa(selected) + " genres selected"
	}
}

// Fields is the raw text of the form
type Fields struct {
	Title           string
	OpeningTheaters string
	ReleaseDays     string
	Genres          []string
}

// Ready reports whether every required field is filled and every number is
// positive; the submit button is styled as ready only then
func (f Fields) Ready() bool {
	if strings.TrimSpace(f.Title) == "" {
		return false
	}
	_, theatersOK := ParsePositive(f.OpeningTheaters)
	_, daysOK := ParsePositive(f.ReleaseDays)
	return theatersOK && daysOK
}

// Validate is the submit guard
func (f Fields) Validate() error {
	_, theatersOK := ParsePositive(f.OpeningTheaters)
	_, daysOK := ParsePositive(f.ReleaseDays)
	if !theatersOK || !daysOK {
		return ErrNotPositive
	}
	return nil
}

// Submission validates the fields and collects them
func (f Fields) Submission() (domain.Submission, error) {
	if err := f.Validate(); err != nil {
		return domain.Submission{}, err
	}
	theaters, _ := ParsePositive(f.OpeningTheaters)
	days, _ := ParsePositive(f.ReleaseDays)

	title := strings.TrimSpace(f.Title)
	if title == "" {
		title = "Unknown Movie"
	}
	genres := append([]string{}, f.Genres...)

	return domain.Submission{
		Title:           title,
		OpeningTheaters: int(theaters),
		ReleaseDays:     int(days),
		Genres:          genres,
	}, nil
}
