// Package calc holds the derived figures shown next to backend records:
// rent variance, remaining lease months, insurance status and pt-BR formatting.
package calc

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// InsuranceStatus labels a policy by how far its end date is.
type InsuranceStatus string

const (
	InsuranceExpired  InsuranceStatus = "Vencido"
	InsuranceExpiring InsuranceStatus = "Vence em breve"
	InsuranceActive   InsuranceStatus = "Vigente"
)

// ExpiringWindowDays is how close to the end date a policy counts as expiring.
const ExpiringWindowDays = 30

// InvalidDateLabel is shown for competences that cannot be parsed.
const InvalidDateLabel = "Data inválida"

const apiDateLayout = "2006-01-02T15:04:05.000Z07:00"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// ParseDate accepts the date shapes the backend and the forms exchange:
// RFC3339 timestamps, zone-less timestamps and plain YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// PercentChange returns the variation from prev to next in percent, rounded to two
// decimals. A zero base yields 0.
func PercentChange(prev, next float64) float64 {
	if prev == 0 {
		return 0
	}
	return round2((next - prev) / prev * 100)
}

// DaysUntil returns the whole days from now until target, rounded up.
// Past targets give negative values.
func DaysUntil(target, now time.Time) int {
	return int(math.Ceil(target.Sub(now).Hours() / 24))
}

// MonthsRemaining approximates the 30-day months left until end, never below zero.
func MonthsRemaining(end, now time.Time) int {
	months := int(math.Ceil(float64(DaysUntil(end, now)) / 30))
	if months < 0 {
		return 0
	}
	return months
}

// CoverageDays is the length of a policy in days.
func CoverageDays(start, end time.Time) int {
	return DaysUntil(end, start)
}

// StatusForInsurance classifies a policy end date relative to now.
func StatusForInsurance(end, now time.Time) InsuranceStatus {
	days := DaysUntil(end, now)
	switch {
	case days < 0:
		return InsuranceExpired
	case days <= ExpiringWindowDays:
		return InsuranceExpiring
	default:
		return InsuranceActive
	}
}

// FormatBRL renders v as Brazilian reais, e.g. "R$ 1.234,56".
func FormatBRL(v float64) string {
	if v < 0 {
		return "-R$ " + brPrinter.Sprintf("%.2f", -v)
	}
	return "R$ " + brPrinter.Sprintf("%.2f", v)
}

// CompetenceLabel renders a billing competence as "janeiro de 2025".
func CompetenceLabel(competence string) string {
	if competence == "" || competence == "-infinity" {
		return InvalidDateLabel
	}
	t, err := ParseDate(competence)
	if err != nil {
		return InvalidDateLabel
	}
	t = t.UTC()
	return fmt.Sprintf("%s de %d", monthNames[t.Month()-1], t.Year())
}

// ToAPIDate normalises a form date for the backend. Plain dates are pinned to noon
// UTC so no timezone shifts them to the previous day.
func ToAPIDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	if !strings.Contains(s, "T") {
		t = time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
	}
	return t.UTC().Format(apiDateLayout)
}

// MonthStartISO returns the first instant of the given month (1-12) in UTC.
func MonthStartISO(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format(apiDateLayout)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
