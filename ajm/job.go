// SPDX-License-Identifier: EPL-2.0

package ajm

// FrameSink receives the number of frames produced by one decode call.
type FrameSink interface {
	AddFrames(n uint64)
}

// MFrameResult is the multiple-frame result record of a job.
type MFrameResult struct {
	NumFrames uint64
}

func (m *MFrameResult) AddFrames(n uint64) {
	m.NumFrames += n
}

// JobOutput is the output record of an audio job. Sections the guest did
// not request are nil and left untouched.
type JobOutput struct {
	MFrame *MFrameResult
}

func (o *JobOutput) AddFrames(n uint64) {
	if o == nil || o.MFrame == nil {
		return
	}
	o.MFrame.AddFrames(n)
}
