package metrics

import (
	"time"

	"github.com/casperlabs/highway/module"
)

// NoopCollector discards all metrics. It is used in tests and in tools that
// embed the pipeline without a metrics endpoint.
type NoopCollector struct{}

var _ module.PipelineMetrics = (*NoopCollector)(nil)

func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

func (nc *NoopCollector) MessageProcessed(kind string, status string)      {}
func (nc *NoopCollector) EquivocationDetected()                            {}
func (nc *NoopCollector) MessageProcessingDuration(duration time.Duration) {}
func (nc *NoopCollector) DeploysProcessed(count int)                       {}
