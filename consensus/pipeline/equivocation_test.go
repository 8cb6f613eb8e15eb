package pipeline

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/casperlabs/highway/dag"
	"github.com/casperlabs/highway/model/highway"
	"github.com/casperlabs/highway/storage"
	storagemock "github.com/casperlabs/highway/storage/mock"
	"github.com/casperlabs/highway/utils/unittest"
)

// erasOf returns an era store mock backed by the given eras.
func erasOf(t *testing.T, eras ...*highway.Era) storage.Eras {
	db := make(map[highway.Identifier]*highway.Era, len(eras))
	for _, era := range eras {
		db[era.KeyBlock] = era
	}
	store := &storagemock.Eras{}
	store.On("ByKeyBlock", mock.Anything).Return(
		func(keyBlock highway.Identifier) *highway.Era {
			return db[keyBlock]
		},
		func(keyBlock highway.Identifier) error {
			if _, ok := db[keyBlock]; !ok {
				return storage.ErrNotFound
			}
			return nil
		},
	)
	return store
}

func TestFirstMessagePasses(t *testing.T) {
	era := unittest.EraFixture()
	index := dag.NewIndex(erasOf(t, era))
	detector := NewEquivocationDetector(index, LineageScope{})

	key := unittest.PrivateKeyFixture()
	msg := unittest.SignedMessageFixture(key, unittest.WithEra(era))
	require.NoError(t, detector.Check(msg))
}

func TestDirectDescendantPasses(t *testing.T) {
	era := unittest.EraFixture()
	index := dag.NewIndex(erasOf(t, era))
	detector := NewEquivocationDetector(index, LineageScope{})

	key := unittest.PrivateKeyFixture()
	first := unittest.SignedMessageFixture(key, unittest.WithEra(era))
	require.NoError(t, index.Add(first, false))

	next := unittest.SignedMessageFixture(key,
		unittest.WithEra(era),
		unittest.WithRound(2),
		unittest.WithPrevMessage(first),
	)
	require.NoError(t, detector.Check(next))
}

func TestReObservedTipPasses(t *testing.T) {
	era := unittest.EraFixture()
	index := dag.NewIndex(erasOf(t, era))
	detector := NewEquivocationDetector(index, LineageScope{})

	key := unittest.PrivateKeyFixture()
	msg := unittest.SignedMessageFixture(key, unittest.WithEra(era))
	require.NoError(t, index.Add(msg, false))

	require.NoError(t, detector.Check(msg))
}

func TestConflictingSiblingIsFlagged(t *testing.T) {
	era := unittest.EraFixture()
	index := dag.NewIndex(erasOf(t, era))
	detector := NewEquivocationDetector(index, LineageScope{})

	key := unittest.PrivateKeyFixture()
	first := unittest.SignedMessageFixture(key, unittest.WithEra(era), unittest.WithRound(1))
	require.NoError(t, index.Add(first, false))

	sibling := unittest.SignedMessageFixture(key, unittest.WithEra(era), unittest.WithRound(2))
	err := detector.Check(sibling)
	require.Error(t, err)
	require.True(t, IsEquivocationError(err))

	equivocation, ok := AsEquivocationError(err)
	require.True(t, ok)
	require.Equal(t, unittest.ValidatorIDOf(key), equivocation.Validator)
	require.Equal(t, first.ID(), equivocation.First.ID())
}

func TestSequenceGapIsFlagged(t *testing.T) {
	era := unittest.EraFixture()
	index := dag.NewIndex(erasOf(t, era))
	detector := NewEquivocationDetector(index, LineageScope{})

	key := unittest.PrivateKeyFixture()
	first := unittest.SignedMessageFixture(key, unittest.WithEra(era))
	require.NoError(t, index.Add(first, false))

	// cites the tip but skips a sequence number, leaving room for a hidden
	// conflicting message in between
	gapped := unittest.SignedMessageFixture(key,
		unittest.WithEra(era),
		unittest.WithRound(2),
		unittest.WithPrevMessage(first),
		func(msg *highway.Message) { msg.SeqNum = first.SeqNum + 2 },
	)
	err := detector.Check(gapped)
	require.True(t, IsEquivocationError(err))
}

func TestKnownEquivocatorStaysFlagged(t *testing.T) {
	era := unittest.EraFixture()
	index := dag.NewIndex(erasOf(t, era))
	detector := NewEquivocationDetector(index, LineageScope{})

	key := unittest.PrivateKeyFixture()
	first := unittest.SignedMessageFixture(key, unittest.WithEra(era), unittest.WithRound(1))
	second := unittest.SignedMessageFixture(key, unittest.WithEra(era), unittest.WithRound(2))
	require.NoError(t, index.Add(first, false))
	require.NoError(t, index.Add(second, true))

	// even a message merging both lineages cannot undo the recorded conflict
	merge := unittest.SignedMessageFixture(key,
		unittest.WithEra(era),
		unittest.WithRound(3),
		unittest.WithPrevMessage(second),
		unittest.WithJustification(first),
	)
	err := detector.Check(merge)
	require.True(t, IsEquivocationError(err))
}

// TestSiblingErasAreCompared pins down the over-approximation of the lineage
// scope: two messages by the same validator in sibling eras of one key-block
// lineage are flagged even though they never cite each other. Distinguishing
// legitimate per-era forks would require tracking citations across the era
// boundary.
func TestSiblingErasAreCompared(t *testing.T) {
	root := unittest.EraFixture()
	left := unittest.EraFixture(func(era *highway.Era) { era.Parent = root.KeyBlock })
	right := unittest.EraFixture(func(era *highway.Era) { era.Parent = root.KeyBlock })

	index := dag.NewIndex(erasOf(t, root, left, right))
	detector := NewEquivocationDetector(index, LineageScope{})

	key := unittest.PrivateKeyFixture()
	inLeft := unittest.SignedMessageFixture(key, unittest.WithEra(left))
	require.NoError(t, index.Add(inLeft, false))

	inRight := unittest.SignedMessageFixture(key, unittest.WithEra(right))
	err := detector.Check(inRight)
	require.True(t, IsEquivocationError(err))
}

// TestUnrelatedLineagesAreSeparate checks the flip side: eras rooted in
// different key blocks are only compared under the global scope.
func TestUnrelatedLineagesAreSeparate(t *testing.T) {
	eraA := unittest.EraFixture()
	eraB := unittest.EraFixture()

	eras := erasOf(t, eraA, eraB)
	index := dag.NewIndex(eras)

	key := unittest.PrivateKeyFixture()
	inA := unittest.SignedMessageFixture(key, unittest.WithEra(eraA))
	require.NoError(t, index.Add(inA, false))

	inB := unittest.SignedMessageFixture(key, unittest.WithEra(eraB))

	lineage := NewEquivocationDetector(index, LineageScope{})
	require.NoError(t, lineage.Check(inB))

	global := NewEquivocationDetector(index, GlobalScope{})
	err := global.Check(inB)
	require.True(t, IsEquivocationError(err))
}
