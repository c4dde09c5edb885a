package rank

import (
	"math"
	"sort"
)

// RankStrings ranks categorical values by lexicographic order.
// Each distinct string maps to an ordinal code preserving alphabetical
// order, then the codes go through the numeric ranking. The empty
// string marks a missing entry (output NaN).
func RankStrings(values []string, policy Policy) ([]float64, error) {
	if !policy.Valid() {
		return nil, ErrInvalidPolicy
	}

	// Dictionary pass: distinct values -> ordinal codes.
	seen := make(map[string]bool, len(values))
	distinct := make([]string, 0, len(values))
	for _, s := range values {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		distinct = append(distinct, s)
	}
	sort.Strings(distinct)

	code := make(map[string]float64, len(distinct))
	for i, s := range distinct {
		code[s] = float64(i + 1)
	}

	encoded := make([]float64, len(values))
	for i, s := range values {
		if s == "" {
			encoded[i] = math.NaN()
			continue
		}
		encoded[i] = code[s]
	}

	return Rank(encoded, policy)
}

// RankValues ranks a series of loosely-typed values, as delivered by a
// JSON array. Accepted element types:
//   - float64 / int (all numeric series)
//   - string (all categorical series)
//   - nil (missing, either series kind)
//
// Mixing numeric and string elements returns ErrInvalidInput; the
// caller gets no partial output.
func RankValues(values []any, policy Policy) ([]float64, error) {
	if !policy.Valid() {
		return nil, ErrInvalidPolicy
	}

	numeric := make([]float64, len(values))
	strs := make([]string, len(values))
	hasNumber, hasString := false, false

	for i, v := range values {
		switch t := v.(type) {
		case nil:
			numeric[i] = math.NaN()
			strs[i] = ""
		case float64:
			numeric[i] = t
			hasNumber = true
		case int:
			numeric[i] = float64(t)
			hasNumber = true
		case string:
			strs[i] = t
			hasString = true
		default:
			return nil, ErrInvalidInput
		}
	}

	if hasNumber && hasString {
		return nil, ErrInvalidInput
	}
	if hasString {
		return RankStrings(strs, policy)
	}
	return Rank(numeric, policy)
}
