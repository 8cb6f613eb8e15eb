package metrics

// Prometheus metric namespaces
const (
	namespaceConsensus = "consensus"
)

// Prometheus metric subsystems
const (
	subsystemPipeline = "pipeline"
)
