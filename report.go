package seqhash

import (
	gjson "github.com/goccy/go-json"

	"github.com/glycerine/seqhash/hash"
)

// Report is the -json rendition of one benchmark run.
type Report struct {
	Mode          string  `json:"mode"`
	Index         int64   `json:"index"`
	Workers       int     `json:"workers"`
	Fork          bool    `json:"fork,omitempty"`
	Results       []int64 `json:"results"`
	ResultsBlake3 string  `json:"results_blake3"`
	ElapsedMs     int64   `json:"elapsed_ms"`
	Reps          int     `json:"reps"`
	Q50Ms         float64 `json:"q50_ms"`
	Q99Ms         float64 `json:"q99_ms"`
	SlowestMs     float64 `json:"slowest_ms"`
	Host          string  `json:"host"`
	Version       string  `json:"version"`
}

// NewReport fills in the fingerprint and the repetition
// quantiles from s, which may be nil.
func NewReport(mode string, index int64, workers int, results []int64, s *Sampler) *Report {
	r := &Report{
		Mode:          mode,
		Index:         index,
		Workers:       workers,
		Results:       results,
		ResultsBlake3: hash.OfResults(results),
		Host:          HostSummary(),
		Version:       CodeVersion(),
	}
	if s != nil {
		r.Reps = s.Count()
		r.Q50Ms = ms(s.Quantile(0.50))
		r.Q99Ms = ms(s.Quantile(0.99))
		r.SlowestMs = ms(s.Slowest())
	}
	return r
}

// JSON is one line, no trailing newline.
func (r *Report) JSON() []byte {
	by, err := gjson.Marshal(r)
	panicOn(err)
	return by
}

func ReportFromJSON(by []byte) (r *Report, err error) {
	r = &Report{}
	err = gjson.Unmarshal(by, r)
	if err != nil {
		return nil, err
	}
	return
}
