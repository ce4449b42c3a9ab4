package engine

import (
	"strings"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
)

// PersonName is a child's name split the way the workbook stores it.
type PersonName struct {
	FirstName string
	LastName  string
}

// String renders the name in "First Last" display order.
func (n PersonName) String() string {
	return strings.TrimSpace(n.FirstName + " " + n.LastName)
}

// SplitKidName parses the UI's "First Last" input: the first whitespace token
// is the first name, the remainder joined is the last name.
func SplitKidName(full string) (PersonName, error) {
	fields := strings.Fields(full)
	if len(fields) < 2 {
		return PersonName{}, newError(KindValidationFailure, config.ErrKidNameInvalid, nil)
	}
	return PersonName{
		FirstName: fields[0],
		LastName:  strings.Join(fields[1:], " "),
	}, nil
}

// NameMatch classifies a spreadsheet name against the queried name.
type NameMatch int

const (
	// MatchDistinct means a different person.
	MatchDistinct NameMatch = iota
	// MatchSimilar means the same person with a likely typo; the lookup must
	// stop and ask a human to fix the sheet.
	MatchSimilar
	// MatchExact means a case-insensitive, trimmed match on both components.
	MatchExact
)

// Distance computes the Levenshtein edit distance between a and b using the
// classic dynamic-programming table of size (len(a)+1) x (len(b)+1) with unit
// costs for insertion, deletion and substitution. It operates on runes so
// umlauts count as single edits.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Similar reports whether a and b are within the configured edit-distance
// threshold. Equal strings are similar by definition; callers that need the
// "typo" case must check equality first (see Classify).
func Similar(a, b string) bool {
	return Distance(a, b) <= config.NameDistanceMax
}

// Classify compares the queried name against a sheet name component-wise.
// Exact wins over similar; similarity is judged on the normalized full name
// so a single typo in either component triggers MatchSimilar.
func Classify(query, sheet PersonName) NameMatch {
	qFirst := normalizeName(query.FirstName)
	qLast := normalizeName(query.LastName)
	sFirst := normalizeName(sheet.FirstName)
	sLast := normalizeName(sheet.LastName)

	if qFirst == sFirst && qLast == sLast {
		return MatchExact
	}
	if Similar(qLast+" "+qFirst, sLast+" "+sFirst) {
		return MatchSimilar
	}
	return MatchDistinct
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
