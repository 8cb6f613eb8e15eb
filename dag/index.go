package dag

import (
	"errors"
	"fmt"
	"sync"

	"github.com/casperlabs/highway/model/highway"
	"github.com/casperlabs/highway/storage"
)

// index is the in-memory implementation of the latest-message index.
// Messages are bucketed by the root of their era's key-block lineage: all
// eras descending from one root key block share a bucket. This makes
// messages in sibling eras comparable even when they do not cite each other,
// which is exactly the documented over-approximation of the lineage
// detection scope.
//
// Mutation is serialized by the message executor's critical section; the
// internal lock only protects concurrent readers against the writer.
type index struct {
	eras storage.Eras

	mu       sync.RWMutex
	lineages map[highway.Identifier]*lineageBucket
	roots    map[highway.Identifier]highway.Identifier
	seen     map[highway.Identifier]struct{}
}

type lineageBucket struct {
	latest       map[highway.ValidatorID][]*highway.Message
	equivocators map[highway.ValidatorID]struct{}
}

func newLineageBucket() *lineageBucket {
	return &lineageBucket{
		latest:       make(map[highway.ValidatorID][]*highway.Message),
		equivocators: make(map[highway.ValidatorID]struct{}),
	}
}

// NewIndex creates an empty latest-message index. The era store is used to
// resolve key-block lineages.
func NewIndex(eras storage.Eras) Index {
	return &index{
		eras:     eras,
		lineages: make(map[highway.Identifier]*lineageBucket),
		roots:    make(map[highway.Identifier]highway.Identifier),
		seen:     make(map[highway.Identifier]struct{}),
	}
}

func (x *index) LatestInEra(eraID highway.Identifier) (EraView, error) {
	root, err := x.lineageRoot(eraID)
	if err != nil {
		return nil, err
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	bucket, ok := x.lineages[root]
	if !ok {
		return emptyView(), nil
	}
	return snapshotOf(bucket), nil
}

func (x *index) GlobalView() (EraView, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	merged := newLineageBucket()
	for _, bucket := range x.lineages {
		for validator, tips := range bucket.latest {
			merged.latest[validator] = append(merged.latest[validator], tips...)
		}
		for validator := range bucket.equivocators {
			merged.equivocators[validator] = struct{}{}
		}
	}
	return snapshotOf(merged), nil
}

func (x *index) Contains(msgID highway.Identifier) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()

	_, ok := x.seen[msgID]
	return ok
}

func (x *index) Add(msg *highway.Message, equivocator bool) error {
	root, err := x.lineageRoot(msg.EraID)
	if err != nil {
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	bucket, ok := x.lineages[root]
	if !ok {
		bucket = newLineageBucket()
		x.lineages[root] = bucket
	}

	msgID := msg.ID()
	if _, ok := x.seen[msgID]; ok {
		// re-delivery of an already indexed message must not duplicate tips
		if equivocator {
			bucket.equivocators[msg.Validator] = struct{}{}
		}
		return nil
	}
	x.seen[msgID] = struct{}{}

	// the new message supersedes every tip it cites; tips the message does
	// not descend from (the conflicting lineages of an equivocator) remain
	justified := make(map[highway.Identifier]struct{}, len(msg.Justifications))
	for _, hash := range msg.JustifiedHashes() {
		justified[hash] = struct{}{}
	}
	var tips []*highway.Message
	for _, tip := range bucket.latest[msg.Validator] {
		if _, cited := justified[tip.ID()]; !cited {
			tips = append(tips, tip)
		}
	}
	bucket.latest[msg.Validator] = append(tips, msg)

	if equivocator {
		bucket.equivocators[msg.Validator] = struct{}{}
	}
	return nil
}

// lineageRoot walks the era's parent chain up to the root key block. Eras
// missing from storage are treated as their own root, so the index degrades
// to per-era bucketing rather than failing.
func (x *index) lineageRoot(eraID highway.Identifier) (highway.Identifier, error) {
	x.mu.RLock()
	root, ok := x.roots[eraID]
	x.mu.RUnlock()
	if ok {
		return root, nil
	}

	current := eraID
	for {
		era, err := x.eras.ByKeyBlock(current)
		if errors.Is(err, storage.ErrNotFound) {
			break
		}
		if err != nil {
			return highway.ZeroID, fmt.Errorf("could not resolve era %x: %w", current, err)
		}
		if era.Parent == highway.ZeroID {
			break
		}
		current = era.Parent
	}

	x.mu.Lock()
	x.roots[eraID] = current
	x.mu.Unlock()
	return current, nil
}

// view is an immutable snapshot of one lineage bucket.
type view struct {
	latest       map[highway.ValidatorID][]*highway.Message
	equivocators map[highway.ValidatorID]struct{}
}

func emptyView() *view {
	return &view{
		latest:       make(map[highway.ValidatorID][]*highway.Message),
		equivocators: make(map[highway.ValidatorID]struct{}),
	}
}

func snapshotOf(bucket *lineageBucket) *view {
	v := &view{
		latest:       make(map[highway.ValidatorID][]*highway.Message, len(bucket.latest)),
		equivocators: make(map[highway.ValidatorID]struct{}, len(bucket.equivocators)),
	}
	for validator, tips := range bucket.latest {
		copied := make([]*highway.Message, len(tips))
		copy(copied, tips)
		v.latest[validator] = copied
	}
	for validator := range bucket.equivocators {
		v.equivocators[validator] = struct{}{}
	}
	return v
}

func (v *view) LatestMessages() map[highway.ValidatorID][]*highway.Message {
	return v.latest
}

func (v *view) LatestMessagesOf(validator highway.ValidatorID) []*highway.Message {
	return v.latest[validator]
}

func (v *view) Equivocators() map[highway.ValidatorID]struct{} {
	return v.equivocators
}
