package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/dk-lineup/internal/types"
)

func sampledPicks(t *testing.T) map[string]types.PlayerRecord {
	t.Helper()
	picks, err := NewSampler(rand.New(rand.NewSource(21))).Sample(testPools(), nil)
	require.NoError(t, err)
	return picks
}

func TestAssembleLineup_SlotsInCanonicalOrder(t *testing.T) {
	lineup, err := AssembleLineup(sampledPicks(t))
	require.NoError(t, err)

	require.Len(t, lineup.Slots, 9)
	for i, slot := range types.SlotOrder {
		assert.Equal(t, slot, lineup.Slots[i].Slot)
	}
	assert.Contains(t, lineup.ID, "lineup_")
}

func TestAssembleLineup_MissingSlot(t *testing.T) {
	picks := sampledPicks(t)
	delete(picks, types.SlotDST)

	_, err := AssembleLineup(picks)
	var compErr *CompositionError
	require.ErrorAs(t, err, &compErr)
}

func TestAssembleLineup_UnknownSlotName(t *testing.T) {
	picks := sampledPicks(t)
	rec := picks[types.SlotDST]
	delete(picks, types.SlotDST)
	picks["K"] = rec // kickers are not a DraftKings classic slot

	_, err := AssembleLineup(picks)
	var compErr *CompositionError
	require.ErrorAs(t, err, &compErr)
}

func TestAssembleLineup_DuplicateSkillPlayer(t *testing.T) {
	picks := sampledPicks(t)
	picks[types.SlotFlex] = picks[types.SlotRB1]

	_, err := AssembleLineup(picks)
	var compErr *CompositionError
	require.ErrorAs(t, err, &compErr)
	assert.Contains(t, compErr.Invariant, picks[types.SlotRB1].Name)
}

func TestAssembleLineup_EmptyRecord(t *testing.T) {
	picks := sampledPicks(t)
	picks[types.SlotTE] = types.PlayerRecord{}

	_, err := AssembleLineup(picks)
	var compErr *CompositionError
	require.ErrorAs(t, err, &compErr)
}
