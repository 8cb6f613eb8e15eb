package module

import (
	"time"
)

// PipelineMetrics collects metrics of the message ingestion pipeline.
type PipelineMetrics interface {

	// MessageProcessed records the terminal outcome of one ValidateAndAdd
	// call, labeled by message kind and outcome status.
	MessageProcessed(kind string, status string)

	// EquivocationDetected records a provable double-sign by a validator.
	EquivocationDetected()

	// MessageProcessingDuration records the time one message spent inside
	// the executor's critical section.
	MessageProcessingDuration(duration time.Duration)

	// DeploysProcessed records how many deploys a committed block contained.
	DeploysProcessed(count int)
}
