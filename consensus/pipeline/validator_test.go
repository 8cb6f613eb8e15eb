package pipeline

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/casperlabs/highway/model/highway"
	"github.com/casperlabs/highway/storage"
	storagemock "github.com/casperlabs/highway/storage/mock"
	"github.com/casperlabs/highway/utils/unittest"
)

func TestValidator(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

type ValidatorSuite struct {
	suite.Suite

	keys []ed25519.PrivateKey
	key  ed25519.PrivateKey
	era  *highway.Era

	msgDB map[highway.Identifier]*highway.Message
	eraDB map[highway.Identifier]*highway.Era

	messages *storagemock.Messages
	eras     *storagemock.Eras
	config   Config

	validator *Validator
}

func (s *ValidatorSuite) SetupTest() {

	keys, era := unittest.BondedValidatorsFixture(3)
	s.keys = keys
	s.key = keys[0]
	s.era = era

	s.msgDB = make(map[highway.Identifier]*highway.Message)
	s.eraDB = map[highway.Identifier]*highway.Era{era.KeyBlock: era}

	s.messages = &storagemock.Messages{}
	s.messages.On("Contains", mock.Anything).Return(
		func(msgID highway.Identifier) bool {
			_, ok := s.msgDB[msgID]
			return ok
		},
		nil,
	)
	s.messages.On("ByIDUnsafe", mock.Anything).Return(
		func(msgID highway.Identifier) *highway.Message {
			return s.msgDB[msgID]
		},
	)

	s.eras = &storagemock.Eras{}
	s.eras.On("ByKeyBlock", mock.Anything).Return(
		func(keyBlock highway.Identifier) *highway.Era {
			return s.eraDB[keyBlock]
		},
		func(keyBlock highway.Identifier) error {
			if _, ok := s.eraDB[keyBlock]; !ok {
				return storage.ErrNotFound
			}
			return nil
		},
	)

	s.config = DefaultConfig()
	s.validator = NewValidator(s.messages, s.eras, s.config)
}

// persist stores a message in the backing database, bypassing validation.
func (s *ValidatorSuite) persist(msg *highway.Message) {
	s.msgDB[msg.ID()] = msg
}

func (s *ValidatorSuite) TestValidFirstBlock() {
	msg := unittest.SignedMessageFixture(s.key, unittest.WithEra(s.era))
	require.NoError(s.T(), s.validator.Validate(msg))
}

func (s *ValidatorSuite) TestValidSuccessor() {
	prev := unittest.SignedMessageFixture(s.key, unittest.WithEra(s.era))
	s.persist(prev)

	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		unittest.WithRound(2),
		unittest.WithPrevMessage(prev),
	)
	require.NoError(s.T(), s.validator.Validate(msg))
}

func (s *ValidatorSuite) TestUnknownKind() {
	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		unittest.WithKind(highway.MessageKindUnknown),
	)
	err := s.validator.Validate(msg)
	require.True(s.T(), IsInvalidMessageError(err))
}

func (s *ValidatorSuite) TestRoundOutsideEra() {
	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		unittest.WithRound(s.era.EndRound+1),
	)
	err := s.validator.Validate(msg)
	require.True(s.T(), IsInvalidMessageError(err))
}

func (s *ValidatorSuite) TestDeployLimit() {
	s.config.SetMaxDeploysPerBlock(2)
	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		unittest.WithDeploys(unittest.DeployListFixture(3)),
	)
	err := s.validator.Validate(msg)
	require.True(s.T(), IsInvalidMessageError(err))
}

func (s *ValidatorSuite) TestExpiredDeploy() {
	stale := unittest.DeployFixture(
		unittest.WithDeployTimestamp(100),
		unittest.WithDeployTTL(50),
	)
	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		unittest.WithDeploys([]highway.Deploy{stale}),
	)
	err := s.validator.Validate(msg)
	require.True(s.T(), IsInvalidMessageError(err))
}

func (s *ValidatorSuite) TestPrematureDeploy() {
	// the deploy claims a creation time after the block's timestamp
	premature := unittest.DeployFixture(
		unittest.WithDeployTimestamp(2_000_000),
	)
	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		unittest.WithDeploys([]highway.Deploy{premature}),
	)
	err := s.validator.Validate(msg)
	require.True(s.T(), IsInvalidMessageError(err))
}

func (s *ValidatorSuite) TestDuplicateJustification() {
	other := unittest.SignedMessageFixture(s.keys[1], unittest.WithEra(s.era))
	s.persist(other)

	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		unittest.WithRound(2),
		unittest.WithJustification(other),
		unittest.WithJustification(other),
	)
	err := s.validator.Validate(msg)
	require.True(s.T(), IsInvalidMessageError(err))
}

func (s *ValidatorSuite) TestUnknownJustification() {
	phantom := unittest.MessageFixture(unittest.WithEra(s.era))

	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		unittest.WithRound(2),
		unittest.WithJustification(phantom),
	)
	err := s.validator.Validate(msg)
	require.True(s.T(), IsInvalidMessageError(err))
}

func (s *ValidatorSuite) TestJustificationCitesWrongValidator() {
	other := unittest.SignedMessageFixture(s.keys[1], unittest.WithEra(s.era))
	s.persist(other)

	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		unittest.WithRound(2),
		func(msg *highway.Message) {
			// the citation names a different validator than the message's
			// actual producer
			msg.Justifications = append(msg.Justifications, highway.Justification{
				Validator: unittest.ValidatorIDOf(s.keys[2]),
				Hash:      other.ID(),
			})
			msg.Rank = other.Rank + 1
		},
	)
	err := s.validator.Validate(msg)
	require.True(s.T(), IsInvalidMessageError(err))
}

func (s *ValidatorSuite) TestRankMustExceedCited() {
	other := unittest.SignedMessageFixture(s.keys[1],
		unittest.WithEra(s.era),
		func(msg *highway.Message) { msg.Rank = 5 },
	)
	s.persist(other)

	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		unittest.WithRound(2),
		func(msg *highway.Message) {
			msg.Justifications = append(msg.Justifications, highway.Justification{
				Validator: other.Validator,
				Hash:      other.ID(),
			})
			msg.Rank = 5
		},
	)
	err := s.validator.Validate(msg)
	require.True(s.T(), IsInvalidMessageError(err))
}

func (s *ValidatorSuite) TestRankMustFollowMaxCited() {
	other := unittest.SignedMessageFixture(s.keys[1], unittest.WithEra(s.era))
	s.persist(other)

	// rank skips ahead of max cited rank + 1
	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		unittest.WithRound(2),
		unittest.WithJustification(other),
		func(msg *highway.Message) { msg.Rank = 10 },
	)
	err := s.validator.Validate(msg)
	require.True(s.T(), IsInvalidMessageError(err))
}

func (s *ValidatorSuite) TestFirstMessageSequenceNumber() {
	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		func(msg *highway.Message) { msg.SeqNum = 2 },
	)
	err := s.validator.Validate(msg)
	require.True(s.T(), IsInvalidMessageError(err))
}

func (s *ValidatorSuite) TestSequenceNumberGap() {
	prev := unittest.SignedMessageFixture(s.key, unittest.WithEra(s.era))
	s.persist(prev)

	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		unittest.WithRound(2),
		unittest.WithPrevMessage(prev),
		func(msg *highway.Message) { msg.SeqNum = prev.SeqNum + 2 },
	)
	err := s.validator.Validate(msg)
	require.True(s.T(), IsInvalidMessageError(err))
}

func (s *ValidatorSuite) TestParentMustBeCited() {
	orphan := unittest.SignedMessageFixture(s.keys[1], unittest.WithEra(s.era))
	s.persist(orphan)

	msg := unittest.SignedMessageFixture(s.key,
		unittest.WithEra(s.era),
		unittest.WithRound(2),
		func(msg *highway.Message) {
			// parent points at a persisted message the justifications omit
			msg.Parent = orphan.ID()
		},
	)
	err := s.validator.Validate(msg)
	require.True(s.T(), IsInvalidMessageError(err))
}

func (s *ValidatorSuite) TestValidationIsReadOnly() {
	msg := unittest.SignedMessageFixture(s.key, unittest.WithEra(s.era))
	require.NoError(s.T(), s.validator.Validate(msg))

	s.messages.AssertNotCalled(s.T(), "Store", mock.Anything, mock.Anything)
	require.Empty(s.T(), s.msgDB)
}
