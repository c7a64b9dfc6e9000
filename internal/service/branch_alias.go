package service

import (
	"strings"
	"unicode"
)

// Branch matching is deliberately kept as data, not code. The customers
// table was filled by hand across several spreadsheet eras, so the same
// branch appears as "mumbai", "Mumbai", "MUMBAI" and "Mumbai HO". Reads
// expand a short code into its alias set; writes canonicalize to the one
// stored long form. The asymmetry is load-bearing: canonicalizing on read or
// expanding on write would strand existing rows.

// branchAliases maps a short branch code to the long-form variants known to
// exist in stored rows. "Banglore" is how the rows actually spell it.
var branchAliases = map[string][]string{
	"mumbai":     {"Mumbai HO", "Mumbai"},
	"ulhasnagar": {"Ulhasnagar HO", "Ulhasnagar"},
	"delhi":      {"Delhi HO", "Delhi"},
	"bangalore":  {"Banglore HO", "Banglore"},
}

// branchWriteCanonical maps short codes to the long form new rows are stored
// under. Only branches whose rows use the HO variant are listed — adding an
// entry without migrating the stored data breaks findability.
var branchWriteCanonical = map[string]string{
	"mumbai":     "Mumbai HO",
	"ulhasnagar": "Ulhasnagar HO",
}

// BranchVariants expands a branch input into its alias set: the exact value,
// upper-cased, capitalized, plus the known long-form aliases for the code.
func BranchVariants(branch string) []string {
	variants := []string{branch, strings.ToUpper(branch), capitalize(branch)}
	variants = append(variants, branchAliases[strings.ToLower(branch)]...)

	seen := make(map[string]struct{}, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// MatchesBranch reports whether a stored branch value equals any variant,
// case-insensitively. "Mumbai Branch" does not match the mumbai alias set —
// membership is exact equality, not substring.
func MatchesBranch(stored string, variants []string) bool {
	stored = strings.ToLower(stored)
	for _, v := range variants {
		if stored == strings.ToLower(v) {
			return true
		}
	}
	return false
}

// CanonicalBranch returns the stored long form for a short code at write
// time, or the input unchanged when no canonical form is registered.
func CanonicalBranch(branch string) string {
	if canonical, ok := branchWriteCanonical[strings.ToLower(branch)]; ok {
		return canonical
	}
	return branch
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
