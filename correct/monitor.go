package correct

import "github.com/HeshalD/Cuisinise/core"

// CorrectionMonitor provides hooks to observe the correction pipeline.
// Implement this interface to track intermediate steps and results.
type CorrectionMonitor interface {
	Start(text string)
	AfterCandidateGeneration(corrected string, pool []string)
	AfterContextScoring(count int)
	Finish(candidates []core.Candidate)
}

// noopMonitor is a no-op implementation of CorrectionMonitor
type noopMonitor struct{}

var _ CorrectionMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                {}
func (n *noopMonitor) AfterCandidateGeneration(_ string, _ []string) {}
func (n *noopMonitor) AfterContextScoring(_ int)                     {}
func (n *noopMonitor) Finish(_ []core.Candidate)                     {}
