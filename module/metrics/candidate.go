package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespaceCandidate = "forge"
	subsystemCandidate = "candidate"
)

// CandidateCollector implements module.CandidateMetrics with prometheus
// counters and gauges.
type CandidateCollector struct {
	batchesAdmitted  prometheus.Counter
	batchesRejected  *prometheus.CounterVec
	batchesInjected  prometheus.Counter
	pendingBatches   prometheus.Gauge
	blocksSummarized prometheus.Counter
	summarizedSize   prometheus.Histogram
	blocksAbandoned  prometheus.Counter
	blocksFinalized  prometheus.Counter
}

func NewCandidateCollector(registerer prometheus.Registerer) *CandidateCollector {

	cc := &CandidateCollector{

		batchesAdmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:      "batches_admitted_total",
			Namespace: namespaceCandidate,
			Subsystem: subsystemCandidate,
			Help:      "number of batches admitted into candidate blocks",
		}),

		batchesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:      "batches_rejected_total",
			Namespace: namespaceCandidate,
			Subsystem: subsystemCandidate,
			Help:      "number of batches dropped at admission time, by reason",
		}, []string{"reason"}),

		batchesInjected: prometheus.NewCounter(prometheus.CounterOpts{
			Name:      "batches_injected_total",
			Namespace: namespaceCandidate,
			Subsystem: subsystemCandidate,
			Help:      "number of batches obtained from batch injectors",
		}),

		pendingBatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:      "pending_batches",
			Namespace: namespaceCandidate,
			Subsystem: subsystemCandidate,
			Help:      "number of batches pending in the current candidate",
		}),

		blocksSummarized: prometheus.NewCounter(prometheus.CounterOpts{
			Name:      "blocks_summarized_total",
			Namespace: namespaceCandidate,
			Subsystem: subsystemCandidate,
			Help:      "number of candidate blocks successfully summarized",
		}),

		summarizedSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:      "summarized_block_size",
			Namespace: namespaceCandidate,
			Subsystem: subsystemCandidate,
			Help:      "number of batches surviving into summarized blocks",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 200},
		}),

		blocksAbandoned: prometheus.NewCounter(prometheus.CounterOpts{
			Name:      "blocks_abandoned_total",
			Namespace: namespaceCandidate,
			Subsystem: subsystemCandidate,
			Help:      "number of summarization attempts that produced no block",
		}),

		blocksFinalized: prometheus.NewCounter(prometheus.CounterOpts{
			Name:      "blocks_finalized_total",
			Namespace: namespaceCandidate,
			Subsystem: subsystemCandidate,
			Help:      "number of candidate blocks finalized with a block payload",
		}),
	}

	registerer.MustRegister(
		cc.batchesAdmitted,
		cc.batchesRejected,
		cc.batchesInjected,
		cc.pendingBatches,
		cc.blocksSummarized,
		cc.summarizedSize,
		cc.blocksAbandoned,
		cc.blocksFinalized,
	)

	return cc
}

func (cc *CandidateCollector) BatchAdmitted() {
	cc.batchesAdmitted.Inc()
}

func (cc *CandidateCollector) BatchRejected(reason string) {
	cc.batchesRejected.With(prometheus.Labels{"reason": reason}).Inc()
}

func (cc *CandidateCollector) BatchesInjected(count int) {
	cc.batchesInjected.Add(float64(count))
}

func (cc *CandidateCollector) PendingBatches(count int) {
	cc.pendingBatches.Set(float64(count))
}

func (cc *CandidateCollector) BlockSummarized(batchCount int) {
	cc.blocksSummarized.Inc()
	cc.summarizedSize.Observe(float64(batchCount))
}

func (cc *CandidateCollector) BlockAbandoned() {
	cc.blocksAbandoned.Inc()
}

func (cc *CandidateCollector) BlockFinalized() {
	cc.blocksFinalized.Inc()
}
