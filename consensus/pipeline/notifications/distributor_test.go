package notifications_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casperlabs/highway/consensus/pipeline/notifications"
	"github.com/casperlabs/highway/model/highway"
	"github.com/casperlabs/highway/utils/unittest"
)

func TestDistributorFansOut(t *testing.T) {
	dist := notifications.NewDistributor()

	var added1, added2, finalized []*highway.Message
	dist.AddOnMessageAddedConsumer(func(msg *highway.Message) {
		added1 = append(added1, msg)
	})
	dist.AddOnMessageAddedConsumer(func(msg *highway.Message) {
		added2 = append(added2, msg)
	})
	dist.AddOnMessageFinalizedConsumer(func(msg *highway.Message) {
		finalized = append(finalized, msg)
	})

	msg := unittest.MessageFixture()
	dist.MessageAdded(msg)

	assert.Len(t, added1, 1)
	assert.Len(t, added2, 1)
	assert.Empty(t, finalized)

	dist.MessageFinalized(msg)
	assert.Len(t, added1, 1)
	assert.Len(t, finalized, 1)
	assert.Equal(t, msg, finalized[0])
}

func TestDistributorWithoutConsumers(t *testing.T) {
	dist := notifications.NewDistributor()

	assert.NotPanics(t, func() {
		dist.MessageAdded(unittest.MessageFixture())
		dist.MessageFinalized(unittest.MessageFixture())
	})
}
