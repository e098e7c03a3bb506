package domain

import (
	"strconv"
	"strings"
)

// SeverityLevel ranks validation findings. Higher is worse.
type SeverityLevel int

const (
	SeverityUnknown       SeverityLevel = 0
	SeverityPassed        SeverityLevel = 10
	SeverityNotice        SeverityLevel = 20
	SeverityWarning       SeverityLevel = 30
	SeverityError         SeverityLevel = 40
	SeverityCriticalError SeverityLevel = 50
	SeverityFatalError    SeverityLevel = 60
)

var severityLabels = map[SeverityLevel]string{ //nolint: gochecknoglobals
	SeverityUnknown:       "",
	SeverityPassed:        "Passed",
	SeverityNotice:        "Notice",
	SeverityWarning:       "Warning",
	SeverityError:         "Error",
	SeverityCriticalError: "Critical error",
	SeverityFatalError:    "Fatal error",
}

// SeverityLevels returns all levels in ascending order.
func SeverityLevels() []SeverityLevel {
	return []SeverityLevel{
		SeverityUnknown,
		SeverityPassed,
		SeverityNotice,
		SeverityWarning,
		SeverityError,
		SeverityCriticalError,
		SeverityFatalError,
	}
}

// Label returns the human readable label of the level, or "" for unknown values.
func (s SeverityLevel) Label() string { return severityLabels[s] }

// Valid reports whether s is one of the defined levels.
func (s SeverityLevel) Valid() bool {
	_, ok := severityLabels[s]

	return ok
}

// IsSeverityLabel reports whether label names a defined level. The empty label is valid.
func IsSeverityLabel(label string) bool {
	for _, l := range severityLabels {
		if l == label {
			return true
		}
	}

	return false
}

// SeverityByLabel maps a label to its level, falling back to SeverityUnknown.
func SeverityByLabel(label string) SeverityLevel {
	for level, l := range severityLabels {
		if l == label {
			return level
		}
	}

	return SeverityUnknown
}

// SeverityByAnyValue accepts either the numeric value or the label of a level.
func SeverityByAnyValue(value string) (SeverityLevel, bool) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		level := SeverityLevel(n)

		return level, level.Valid()
	}
	for level, l := range severityLabels {
		if l == value {
			return level, true
		}
	}

	return SeverityUnknown, false
}

// ValidationStatus is the processing state of a validation.
type ValidationStatus int

const (
	ValidationStatusWaiting ValidationStatus = 0
	ValidationStatusRunning ValidationStatus = 1
	ValidationStatusSuccess ValidationStatus = 2
	ValidationStatusFailure ValidationStatus = 3
)
