package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferralLevelOrder(t *testing.T) {
	assert.Equal(t, []ReferralLevel{ReferralLevelA, ReferralLevelB, ReferralLevelC}, ReferralLevels)
	assert.Equal(t, 1, ReferralLevelA.Int())
	assert.Equal(t, 2, ReferralLevelB.Int())
	assert.Equal(t, 3, ReferralLevelC.Int())
	assert.Equal(t, 0, ReferralLevel("d_level").Int())
	assert.False(t, ReferralLevel("d_level").IsValid())
}

func TestReferralTree(t *testing.T) {
	a := uint64(10)
	b := uint64(20)
	tree := ReferralTree{UserID: 30, A: &a, B: &b}

	assert.Equal(t, 2, tree.Depth())

	ancestor, ok := tree.ForLevel(ReferralLevelA)
	assert.True(t, ok)
	assert.Equal(t, a, ancestor)

	ancestor, ok = tree.ForLevel(ReferralLevelB)
	assert.True(t, ok)
	assert.Equal(t, b, ancestor)

	_, ok = tree.ForLevel(ReferralLevelC)
	assert.False(t, ok)
}
