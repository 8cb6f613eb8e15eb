package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/attribute"

	"github.com/casperlabs/highway/consensus/pipeline/notifications"
	"github.com/casperlabs/highway/dag"
	"github.com/casperlabs/highway/model/highway"
	"github.com/casperlabs/highway/module"
	"github.com/casperlabs/highway/module/counters"
	"github.com/casperlabs/highway/module/trace"
	"github.com/casperlabs/highway/storage"
)

// Status classifies the outcome of computing a message's effects.
type Status int

const (
	// StatusValid marks a message that passed all checks. Blocks carry the
	// committed effect bundle; ballots carry the empty bundle.
	StatusValid Status = iota + 1
	// StatusEquivocated marks a provable double-sign. The message is still
	// persisted, but with the empty bundle: the misbehavior is recorded in
	// the DAG, not rewarded with applied effects.
	StatusEquivocated
	// StatusRejected marks a message that failed validation. It is never
	// persisted; the reason is surfaced to the caller as an error.
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "VALID"
	case StatusEquivocated:
		return "EQUIVOCATED"
	case StatusRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// Outcome is the tagged result of ComputeEffects. Exactly one of the three
// variants applies: Valid (with effects), Equivocated (empty effects), or
// Rejected (with the reason). The orchestrator decides persistence per
// variant; components below it never mix statuses with thrown errors.
type Outcome struct {
	Status  Status
	Effects *highway.EffectBundle
	// Reason carries the validation failure for StatusRejected and is nil
	// otherwise.
	Reason error
}

const (
	deployStatusRetryAttempts = 3
	deployStatusRetryBase     = 20 * time.Millisecond
)

// MessageExecutor orchestrates the ingestion of one message: validation,
// equivocation detection, deterministic execution of the deploy payload,
// atomic persistence, and post-commit bookkeeping.
//
// CAUTION with CONCURRENCY: ValidateAndAdd may be called concurrently, but
// the executor serializes all processing through a single global critical
// section. This keeps rank/sequence computations consistent against one DAG
// snapshot, at the cost of serializing block processing through one
// executor instance. Post-commit bookkeeping runs outside the lock.
type MessageExecutor struct {
	log            zerolog.Logger
	tracer         trace.Tracer
	metrics        module.PipelineMetrics
	validator      *Validator
	detector       *EquivocationDetector
	deployExecutor module.DeployExecutor
	messages       storage.Messages
	deployStatuses storage.DeployStatuses
	index          dag.Index
	finalizer      module.Finalizer
	distributor    *notifications.Distributor

	// finalizedRank tracks the highest rank the finalizer has reported.
	finalizedRank counters.StrictMonotonicCounter

	// mu guards the critical section: validate → detect → execute → persist.
	mu sync.Mutex
	// bookkeeping runs effectsAfterAdded outside the critical section.
	bookkeeping *workerpool.WorkerPool
}

// NewMessageExecutor instantiates the ingestion pipeline. All collaborators
// are injected so tests can substitute fakes.
func NewMessageExecutor(
	log zerolog.Logger,
	tracer trace.Tracer,
	collector module.PipelineMetrics,
	validator *Validator,
	detector *EquivocationDetector,
	deployExecutor module.DeployExecutor,
	messages storage.Messages,
	deployStatuses storage.DeployStatuses,
	index dag.Index,
	finalizer module.Finalizer,
	distributor *notifications.Distributor,
) *MessageExecutor {
	return &MessageExecutor{
		log:            log.With().Str("component", "message_executor").Logger(),
		tracer:         tracer,
		metrics:        collector,
		validator:      validator,
		detector:       detector,
		deployExecutor: deployExecutor,
		messages:       messages,
		deployStatuses: deployStatuses,
		index:          index,
		finalizer:      finalizer,
		distributor:    distributor,
		finalizedRank:  counters.NewMonotonicCounter(0),
		bookkeeping:    workerpool.New(1),
	}
}

// Stop drains the post-commit bookkeeping queue and stops the executor. It
// must not be called concurrently with ValidateAndAdd.
func (e *MessageExecutor) Stop() {
	e.bookkeeping.StopWait()
}

// FinalizedRank returns the highest rank reported as finalized so far.
func (e *MessageExecutor) FinalizedRank() uint64 {
	return e.finalizedRank.Value()
}

// ComputeEffects validates the message, checks it for equivocation, and, for
// genuine new blocks, executes and commits its deploys. It is pure relative
// to persisted state: it reads the DAG and storage but persists nothing.
//
// The returned Outcome is one of:
//   - StatusValid with the committed effect bundle (empty for ballots)
//   - StatusEquivocated with the empty bundle
//   - StatusRejected with the validation failure as Reason
//
// No errors are expected during normal operation; returned errors indicate
// either a systemic failure of the deploy executor (ExecutorError) or
// internal state corruption.
func (e *MessageExecutor) ComputeEffects(ctx context.Context, msg *highway.Message, isBookingBlock bool) (Outcome, error) {
	span, ctx := e.tracer.StartMessageSpan(ctx, msg.ID(), trace.PIPEComputeEffects)
	defer span.End()

	err := e.validator.Validate(msg)
	if err != nil {
		if IsInvalidMessageError(err) || IsUnattributableError(err) {
			return Outcome{Status: StatusRejected, Effects: highway.EmptyEffectBundle(), Reason: err}, nil
		}
		return Outcome{}, fmt.Errorf("unexpected error validating message: %w", err)
	}

	err = e.detector.Check(msg)
	if err != nil {
		if equivocation, ok := AsEquivocationError(err); ok {
			e.log.Warn().
				Hex("message_id", logID(msg.ID())).
				Hex("validator", equivocation.Validator[:]).
				Hex("conflicts_with", logID(equivocation.First.ID())).
				Msg("equivocation detected, withholding effects")
			e.metrics.EquivocationDetected()
			return Outcome{Status: StatusEquivocated, Effects: highway.EmptyEffectBundle()}, nil
		}
		return Outcome{}, fmt.Errorf("unexpected error checking equivocation: %w", err)
	}

	// ballots carry no deploys, so there is nothing to execute
	if !msg.IsBlock() {
		return Outcome{Status: StatusValid, Effects: highway.EmptyEffectBundle()}, nil
	}

	effects, err := e.executeBlock(ctx, msg, isBookingBlock)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Status: StatusValid, Effects: effects}, nil
}

// executeBlock runs the block's deploys against the parent's post-state and
// commits the resulting transforms.
// Error returns:
//   - ExecutorError on a systemic failure of the deploy execution engine
func (e *MessageExecutor) executeBlock(ctx context.Context, msg *highway.Message, isBookingBlock bool) (*highway.EffectBundle, error) {

	preStateHash, bonds, upgrades, err := e.executionContext(msg)
	if err != nil {
		return nil, fmt.Errorf("could not determine execution context: %w", err)
	}

	results, err := e.deployExecutor.Execute(ctx, preStateHash, bonds, msg.Deploys, upgrades)
	if err != nil {
		return nil, NewExecutorErrorf("deploy execution failed: %w", err)
	}

	// deploy-level failures contribute no effects but do not abort the block
	var effects []highway.Effect
	for _, result := range results {
		if result.Failed {
			e.log.Debug().
				Hex("deploy_id", logID(result.DeployID)).
				Str("failure", result.Message).
				Msg("deploy failed during execution")
			continue
		}
		effects = append(effects, result.Effects...)
	}

	postStateHash, newBonds, err := e.deployExecutor.Commit(ctx, preStateHash, effects)
	if err != nil {
		return nil, NewExecutorErrorf("could not commit effects: %w", err)
	}

	bundle := &highway.EffectBundle{
		Effects:       effects,
		PostStateHash: postStateHash,
	}
	// only booking blocks shift the bond table; all other blocks carry the
	// table they were executed under
	if isBookingBlock {
		bundle.Bonds = newBonds
	} else {
		bundle.Bonds = bonds
	}
	return bundle, nil
}

// executionContext resolves the pre-state root, governing bond table and
// active protocol upgrades for executing the block: the parent block's
// post-state and refreshed bonds where available, otherwise the era's bond
// table over the empty state, plus the era's upgrades in effect at the
// block's round.
func (e *MessageExecutor) executionContext(msg *highway.Message) (highway.Identifier, highway.BondSet, []highway.Upgrade, error) {

	era, err := e.validator.eras.ByKeyBlock(msg.EraID)
	if err != nil {
		return highway.ZeroID, nil, nil, fmt.Errorf("could not get era %x: %w", msg.EraID, err)
	}

	preStateHash := highway.ZeroID
	bonds := era.Bonds
	upgrades := era.ActiveUpgrades(msg.Round)

	if msg.Parent == highway.ZeroID || msg.Parent == msg.EraID {
		return preStateHash, bonds, upgrades, nil
	}

	parentEffects, err := e.messages.EffectsByID(msg.Parent)
	if errors.Is(err, storage.ErrNotFound) {
		// the parent was validated as cited, so it must be stored
		return highway.ZeroID, nil, nil, fmt.Errorf("validated parent %x has no stored effects", msg.Parent)
	}
	if err != nil {
		return highway.ZeroID, nil, nil, fmt.Errorf("could not get parent effects %x: %w", msg.Parent, err)
	}

	// an equivocating parent block has its effects withheld; execution then
	// proceeds from the era's baseline, same as for a parent-less block
	if !parentEffects.IsEmpty() {
		preStateHash = parentEffects.PostStateHash
		if len(parentEffects.Bonds) > 0 {
			bonds = parentEffects.Bonds
		}
	}
	return preStateHash, bonds, upgrades, nil
}

// ValidateAndAdd runs the full ingestion of one message: compute effects,
// persist per outcome, and schedule post-commit bookkeeping. At most one
// call is in flight at any time; concurrent callers are serialized.
//
// Persistence per outcome:
//   - StatusValid: message and effects are stored atomically
//   - StatusEquivocated: the message itself is stored with the empty bundle,
//     so downstream DAG queries can recompute the equivocator set
//   - StatusRejected: nothing is persisted, the reason propagates as error
//
// Re-adding an already persisted message restores its index entry if needed
// and is otherwise a no-op.
// Expected errors during normal operations:
//   - UnattributableError / InvalidMessageError if validation rejected the message
//   - ExecutorError on a systemic failure of the deploy execution engine
func (e *MessageExecutor) ValidateAndAdd(ctx context.Context, msg *highway.Message, isBookingBlock bool) error {
	span, ctx := e.tracer.StartMessageSpan(ctx, msg.ID(), trace.PIPEValidateAndAdd)
	span.SetAttributes(
		attribute.String("kind", msg.Kind.String()),
		attribute.Bool("booking_block", isBookingBlock),
	)
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	startTime := time.Now()
	defer func() {
		e.metrics.MessageProcessingDuration(time.Since(startTime))
	}()

	msgID := msg.ID()
	log := e.log.With().
		Hex("message_id", logID(msgID)).
		Str("kind", msg.Kind.String()).
		Hex("validator", msg.Validator[:]).
		Uint64("seq_num", msg.SeqNum).
		Uint64("rank", msg.Rank).
		Uint64("round", msg.Round).
		Hex("era_id", logID(msg.EraID)).
		Int("deploys", len(msg.Deploys)).
		Logger()
	log.Debug().Msg("processing message")

	outcome, err := e.ComputeEffects(ctx, msg, isBookingBlock)
	if err != nil {
		return fmt.Errorf("could not compute effects for message %x: %w", msgID, err)
	}
	e.metrics.MessageProcessed(msg.Kind.String(), outcome.Status.String())

	if outcome.Status == StatusRejected {
		log.Warn().Err(outcome.Reason).Msg("message rejected")
		return outcome.Reason
	}

	// both valid and equivocating messages are persisted; only the bundle
	// differs
	err = e.messages.Store(msg, outcome.Effects)
	alreadyStored := errors.Is(err, storage.ErrAlreadyExists)
	if err != nil && !alreadyStored {
		return fmt.Errorf("could not store message %x: %w", msgID, err)
	}

	// indexing also runs for re-deliveries, so a message that was persisted
	// but dropped from the in-memory index (failed earlier attempt, restart)
	// is restored; Add is idempotent for messages already indexed
	err = e.index.Add(msg, outcome.Status == StatusEquivocated)
	if err != nil {
		return fmt.Errorf("could not index message %x: %w", msgID, err)
	}

	if alreadyStored {
		log.Debug().Msg("skipping bookkeeping for already persisted message")
		return nil
	}

	log.Info().Str("status", outcome.Status.String()).Msg("message added")

	// bookkeeping must not block subsequent message validation, so it runs
	// on the worker pool after the lock is released
	e.bookkeeping.Submit(func() {
		e.effectsAfterAdded(msg, outcome)
	})

	return nil
}

// effectsAfterAdded performs the post-commit bookkeeping for a durably
// persisted message: emit the added event, notify the finalizer, and mark
// the contained deploys processed. The three effects are independently
// best-effort: failures are aggregated and logged, never escalated, since
// the message itself is already committed.
func (e *MessageExecutor) effectsAfterAdded(msg *highway.Message, outcome Outcome) {
	span, ctx := e.tracer.StartMessageSpan(context.Background(), msg.ID(), trace.PIPEEffectsAfterAdded)
	defer span.End()

	var result *multierror.Error

	// (a) added events fire for every persisted message, equivocations included
	e.distributor.MessageAdded(msg)

	// (b) inform the finality oracle; propagate a finality event if it
	// reports a newly finalized message
	finalized, err := e.finalizer.OnMessageAdded(msg)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("finalizer notification failed: %w", err))
	}
	if finalized != nil {
		e.finalizedRank.Set(finalized.Rank)
		e.distributor.MessageFinalized(finalized)
		for _, deploy := range finalized.Deploys {
			err = e.deployStatuses.MarkFinalized(deploy.ID())
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("could not finalize deploy %x: %w", deploy.ID(), err))
			}
		}
	}

	// (c) the added block's deploys move to processed
	if outcome.Status == StatusValid && msg.IsBlock() && len(msg.Deploys) > 0 {
		err = e.markDeploysProcessed(ctx, msg)
		if err != nil {
			result = multierror.Append(result, err)
		}
		e.metrics.DeploysProcessed(len(msg.Deploys))
	}

	err = result.ErrorOrNil()
	if err != nil {
		e.log.Warn().Err(err).
			Hex("message_id", logID(msg.ID())).
			Msg("post-commit bookkeeping incomplete; message remains committed")
	}
}

// markDeploysProcessed transitions the block's deploys to processed,
// retrying transient storage failures with capped exponential backoff.
func (e *MessageExecutor) markDeploysProcessed(ctx context.Context, msg *highway.Message) error {
	expRetry, err := retry.NewExponential(deployStatusRetryBase)
	if err != nil {
		return fmt.Errorf("could not create retry mechanism: %w", err)
	}
	backoff := retry.WithMaxRetries(deployStatusRetryAttempts, expRetry)

	var result *multierror.Error
	for _, deploy := range msg.Deploys {
		deployID := deploy.ID()
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			return retry.RetryableError(e.deployStatuses.MarkProcessed(deployID))
		})
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("could not mark deploy %x processed: %w", deployID, err))
		}
	}
	return result.ErrorOrNil()
}

func logID(id highway.Identifier) []byte {
	return id[:]
}
