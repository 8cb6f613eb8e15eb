package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/casperlabs/highway/module"
)

// PipelineCollector exposes the message ingestion pipeline's metrics to
// prometheus.
type PipelineCollector struct {
	messagesProcessed  *prometheus.CounterVec
	equivocations      prometheus.Counter
	processingDuration prometheus.Histogram
	deploysProcessed   prometheus.Counter
}

var _ module.PipelineMetrics = (*PipelineCollector)(nil)

func NewPipelineCollector() *PipelineCollector {
	return &PipelineCollector{
		messagesProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:      "messages_processed_total",
			Namespace: namespaceConsensus,
			Subsystem: subsystemPipeline,
			Help:      "the number of messages processed by the executor, labeled by kind and outcome",
		}, []string{"kind", "status"}),
		equivocations: promauto.NewCounter(prometheus.CounterOpts{
			Name:      "equivocations_detected_total",
			Namespace: namespaceConsensus,
			Subsystem: subsystemPipeline,
			Help:      "the number of provable equivocations detected",
		}),
		processingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:      "message_processing_duration_seconds",
			Namespace: namespaceConsensus,
			Subsystem: subsystemPipeline,
			Help:      "time spent processing one message inside the critical section",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		}),
		deploysProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name:      "deploys_processed_total",
			Namespace: namespaceConsensus,
			Subsystem: subsystemPipeline,
			Help:      "the number of deploys committed as part of added blocks",
		}),
	}
}

func (pc *PipelineCollector) MessageProcessed(kind string, status string) {
	pc.messagesProcessed.WithLabelValues(kind, status).Inc()
}

func (pc *PipelineCollector) EquivocationDetected() {
	pc.equivocations.Inc()
}

func (pc *PipelineCollector) MessageProcessingDuration(duration time.Duration) {
	pc.processingDuration.Observe(duration.Seconds())
}

func (pc *PipelineCollector) DeploysProcessed(count int) {
	pc.deploysProcessed.Add(float64(count))
}
