package metrics

type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) BatchAdmitted()                 {}
func (nc *NoopCollector) BatchRejected(reason string)    {}
func (nc *NoopCollector) BatchesInjected(count int)      {}
func (nc *NoopCollector) PendingBatches(count int)       {}
func (nc *NoopCollector) BlockSummarized(batchCount int) {}
func (nc *NoopCollector) BlockAbandoned()                {}
func (nc *NoopCollector) BlockFinalized()                {}
