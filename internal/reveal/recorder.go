package reveal

// Recorder is an Observer that keeps every sample it sees.
type Recorder struct {
	Samples []Sample
}

func (r *Recorder) OnTick(s Sample) {
	r.Samples = append(r.Samples, s)
}

// Last returns the most recent sample and false if none was recorded.
func (r *Recorder) Last() (Sample, bool) {
	if len(r.Samples) == 0 {
		return Sample{}, false
	}
	return r.Samples[len(r.Samples)-1], true
}

// Targets returns the target length of every sample, in order.
func (r *Recorder) Targets() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = float64(s.Target)
	}
	return out
}
