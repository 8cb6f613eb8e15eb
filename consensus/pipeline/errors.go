package pipeline

import (
	"errors"
	"fmt"

	"github.com/casperlabs/highway/model/highway"
)

// UnattributableError indicates that a message was rejected before the
// identity of its producer could be established, e.g. because the signature
// is missing or does not verify. No culprit can be blamed, so the message is
// never persisted and no misbehavior is recorded.
type UnattributableError struct {
	MsgID highway.Identifier
	err   error
}

func NewUnattributableErrorf(msgID highway.Identifier, msg string, args ...interface{}) error {
	return UnattributableError{
		MsgID: msgID,
		err:   fmt.Errorf(msg, args...),
	}
}

func (e UnattributableError) Error() string {
	return fmt.Sprintf("unattributable message %x: %s", e.MsgID, e.err.Error())
}

func (e UnattributableError) Unwrap() error { return e.err }

// IsUnattributableError returns whether err is an UnattributableError.
func IsUnattributableError(err error) bool {
	var e UnattributableError
	return errors.As(err, &e)
}

// InvalidMessageError indicates that a correctly signed message is
// internally inconsistent, e.g. carries a forged rank or sequence number.
// The failure is attributable to the signing validator. The message is
// rejected without being persisted; the full message is retained on the
// error so callers can collect slashing evidence.
type InvalidMessageError struct {
	InvalidMessage *highway.Message
	Err            error
}

func NewInvalidMessageErrorf(msg *highway.Message, format string, args ...interface{}) error {
	return InvalidMessageError{
		InvalidMessage: msg,
		Err:            fmt.Errorf(format, args...),
	}
}

func (e InvalidMessageError) Error() string {
	return fmt.Sprintf("invalid message %x by validator %x: %s",
		e.InvalidMessage.ID(), e.InvalidMessage.Validator, e.Err.Error())
}

func (e InvalidMessageError) Unwrap() error { return e.Err }

// IsInvalidMessageError returns whether an error is InvalidMessageError.
func IsInvalidMessageError(err error) bool {
	var e InvalidMessageError
	return errors.As(err, &e)
}

// AsInvalidMessageError determines whether the given error is an
// InvalidMessageError (potentially wrapped). It follows the same semantics
// as a checked type cast.
func AsInvalidMessageError(err error) (*InvalidMessageError, bool) {
	var e InvalidMessageError
	ok := errors.As(err, &e)
	if ok {
		return &e, true
	}
	return nil, false
}

// EquivocationError indicates that a validator has produced two incomparable
// messages within one detection scope. It is informational: the conflicting
// message is still persisted, but its execution effects are withheld.
type EquivocationError struct {
	Validator   highway.ValidatorID
	First       *highway.Message
	Conflicting *highway.Message
}

func NewEquivocationError(first, conflicting *highway.Message) error {
	return EquivocationError{
		Validator:   conflicting.Validator,
		First:       first,
		Conflicting: conflicting,
	}
}

func (e EquivocationError) Error() string {
	return fmt.Sprintf("validator %x equivocated: message %x conflicts with %x",
		e.Validator, e.Conflicting.ID(), e.First.ID())
}

// IsEquivocationError returns whether an error is EquivocationError.
func IsEquivocationError(err error) bool {
	var e EquivocationError
	return errors.As(err, &e)
}

// AsEquivocationError determines whether the given error is an
// EquivocationError (potentially wrapped).
func AsEquivocationError(err error) (*EquivocationError, bool) {
	var e EquivocationError
	ok := errors.As(err, &e)
	if ok {
		return &e, true
	}
	return nil, false
}

// ExecutorError indicates a systemic failure of the external deploy
// execution engine. It is fatal to the specific ValidateAndAdd call and is
// escalated to the caller; it does not indicate a failing deploy.
type ExecutorError struct {
	err error
}

func NewExecutorErrorf(msg string, args ...interface{}) error {
	return ExecutorError{err: fmt.Errorf(msg, args...)}
}

func (e ExecutorError) Error() string { return e.err.Error() }
func (e ExecutorError) Unwrap() error { return e.err }

// IsExecutorError returns whether err is an ExecutorError.
func IsExecutorError(err error) bool {
	var e ExecutorError
	return errors.As(err, &e)
}
