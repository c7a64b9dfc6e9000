package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranchVariants(t *testing.T) {
	variants := BranchVariants("mumbai")
	assert.Contains(t, variants, "mumbai")
	assert.Contains(t, variants, "MUMBAI")
	assert.Contains(t, variants, "Mumbai")
	assert.Contains(t, variants, "Mumbai HO")

	// No duplicates even when casing collapses variants together
	seen := map[string]int{}
	for _, v := range variants {
		seen[v]++
	}
	for v, n := range seen {
		assert.Equal(t, 1, n, "variant %q appears %d times", v, n)
	}
}

func TestBranchVariantsUnknownBranch(t *testing.T) {
	variants := BranchVariants("pune")
	assert.ElementsMatch(t, []string{"pune", "PUNE", "Pune"}, variants)
}

func TestMatchesBranch(t *testing.T) {
	variants := BranchVariants("mumbai")

	for _, stored := range []string{"Mumbai HO", "Mumbai", "mumbai", "MUMBAI", "mumbai ho"} {
		assert.True(t, MatchesBranch(stored, variants), "stored %q should match", stored)
	}
	for _, stored := range []string{"Mumbai Branch", "Navi Mumbai", "", "Delhi"} {
		assert.False(t, MatchesBranch(stored, variants), "stored %q should not match", stored)
	}
}

func TestMatchesBranchBangaloreSpelling(t *testing.T) {
	// Stored rows spell it "Banglore"
	variants := BranchVariants("bangalore")
	assert.True(t, MatchesBranch("Banglore HO", variants))
	assert.True(t, MatchesBranch("Banglore", variants))
	assert.False(t, MatchesBranch("Bengaluru", variants))
}

func TestCanonicalBranch(t *testing.T) {
	assert.Equal(t, "Mumbai HO", CanonicalBranch("mumbai"))
	assert.Equal(t, "Mumbai HO", CanonicalBranch("Mumbai"))
	assert.Equal(t, "Ulhasnagar HO", CanonicalBranch("ulhasnagar"))

	// Branches without a registered long form pass through unchanged
	assert.Equal(t, "delhi", CanonicalBranch("delhi"))
	assert.Equal(t, "Banglore", CanonicalBranch("Banglore"))
}
