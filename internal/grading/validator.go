package grading

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// AnswerFormat tags how a question's answer is encoded and compared.
type AnswerFormat string

const (
	FormatSingleChoice AnswerFormat = "single-choice-5"
	FormatMatrixMulti  AnswerFormat = "matrix-multi-select"
	FormatFillIn       AnswerFormat = "fill-in"
)

// FillInRelTolerance is the relative tolerance for numeric fill-in answers,
// expressed as a fraction of the correct value's magnitude.
const FillInRelTolerance = 0.001

// Validate compares a submitted answer against the correct answer under the
// rules of the given format. Unrecognized formats are always incorrect so
// that scoring stays total over arbitrary format strings.
//
// Normalization rules:
//   - Whitespace is trimmed on both sides
//   - Comparison is case-insensitive
//   - matrix-multi-select compares comma-separated selections as sets
//     (order-independent, duplicate-sensitive)
//   - fill-in compares numerically when both sides parse as numbers,
//     within FillInRelTolerance of the correct value's magnitude
func Validate(submitted, correct string, format AnswerFormat) bool {
	switch format {
	case FormatSingleChoice:
		return equalFold(submitted, correct)
	case FormatMatrixMulti:
		return matrixEqual(submitted, correct)
	case FormatFillIn:
		return fillInEqual(submitted, correct)
	default:
		return false
	}
}

// equalFold is case-insensitive trim-equality.
func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// matrixEqual splits both sides on commas, trims each token, sorts, and
// compares as ordered sequences. No de-duplication is applied, so
// "A,A" never matches "A".
func matrixEqual(submitted, correct string) bool {
	s := splitSelections(submitted)
	c := splitSelections(correct)
	if len(s) != len(c) {
		return false
	}
	sort.Strings(s)
	sort.Strings(c)
	for i := range s {
		if !strings.EqualFold(s[i], c[i]) {
			return false
		}
	}
	return true
}

func splitSelections(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// fillInEqual compares numerically when both sides parse as numbers,
// falling back to case-insensitive text equality otherwise.
func fillInEqual(submitted, correct string) bool {
	sv, sErr := strconv.ParseFloat(strings.TrimSpace(submitted), 64)
	cv, cErr := strconv.ParseFloat(strings.TrimSpace(correct), 64)
	if sErr == nil && cErr == nil {
		return math.Abs(sv-cv) <= FillInRelTolerance*math.Abs(cv)
	}
	return equalFold(submitted, correct)
}
