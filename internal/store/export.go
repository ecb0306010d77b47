package store

import (
	"encoding/json"
	"io"

	"github.com/san-kum/typefx/internal/reveal"
)

type ExportData struct {
	RunMetadata
	Samples []ExportSample `json:"samples"`
}

type ExportSample struct {
	Elapsed  float64 `json:"elapsed_ms"`
	Progress float64 `json:"progress_ms"`
	Target   int     `json:"target"`
	Continue bool    `json:"continue"`
	Visible  string  `json:"visible"`
}

// ExportJSON writes a run and its samples as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}
	return WriteJSON(w, *meta, samples)
}

func WriteJSON(w io.Writer, meta RunMetadata, samples []reveal.Sample) error {
	data := ExportData{
		RunMetadata: meta,
		Samples:     make([]ExportSample, len(samples)),
	}
	for i, smp := range samples {
		data.Samples[i] = ExportSample{
			Elapsed:  smp.Elapsed,
			Progress: smp.Progress,
			Target:   smp.Target,
			Continue: smp.Continue,
			Visible:  smp.Visible,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
