package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// StoredDateLayout is the canonical shape deadlines are persisted in.
const StoredDateLayout = "2006-01-02"

// ParseDueDate parses the due date formats accepted at the command line.
// Supported formats:
// - yyyy-mm-dd (e.g., "2026-09-15")
// - dd/mm/yyyy (e.g., "15/09/2026")
// - today, tomorrow
// - X days (e.g., "3 days", "1 day")
// - X weeks (e.g., "2 weeks", "1 week")
// Returns the date at midnight local time.
func ParseDueDate(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	input = strings.TrimSpace(input)

	if d, err := time.ParseInLocation(StoredDateLayout, input, time.Local); err == nil {
		return &d, nil
	}

	if d, err := parseSlashedDate(input); err == nil {
		return d, nil
	}

	if d, err := parseRelativeDate(input); err == nil {
		return d, nil
	}

	return nil, fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days, or X weeks")
}

// parseSlashedDate parses dd/mm/yyyy format.
func parseSlashedDate(input string) (*time.Time, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)

	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return nil, fmt.Errorf("invalid date")
	}

	return &date, nil
}

// parseRelativeDate parses "today", "tomorrow" and "X days"/"X weeks".
func parseRelativeDate(input string) (*time.Time, error) {
	input = strings.ToLower(input)
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "today":
		return &today, nil
	case "tomorrow":
		d := today.AddDate(0, 0, 1)
		return &d, nil
	}

	relativeRegex := regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks)$`)
	matches := relativeRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "day", "days":
		if amount < 1 || amount > 365 {
			return nil, fmt.Errorf("days must be between 1 and 365")
		}
		d := today.AddDate(0, 0, amount)
		return &d, nil

	case "week", "weeks":
		if amount < 1 || amount > 52 {
			return nil, fmt.Errorf("weeks must be between 1 and 52")
		}
		d := today.AddDate(0, 0, amount*7)
		return &d, nil

	default:
		return nil, fmt.Errorf("unsupported time unit")
	}
}

// FormatDue formats a due date for display relative to today. The day
// difference is taken between UTC-anchored midnights so DST-shortened days
// still count as a full day.
func FormatDue(due, today time.Time) string {
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	todayDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	daysDiff := int(dueDay.Sub(todayDay).Hours() / 24)

	dateStr := due.Format("02 Jan 2006")

	switch {
	case daysDiff < 0:
		return fmt.Sprintf("OVERDUE (%s)", dateStr)
	case daysDiff == 0:
		return fmt.Sprintf("due today (%s)", dateStr)
	case daysDiff == 1:
		return fmt.Sprintf("due tomorrow (%s)", dateStr)
	case daysDiff <= 7:
		return fmt.Sprintf("due %s (in %d days)", dateStr, daysDiff)
	default:
		return fmt.Sprintf("due %s", dateStr)
	}
}
