package neurketa

import (
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/neurketa/internal/libs/serializer"
)

// Quantile is a percentile and the sample it selected.
type Quantile struct {
	P     float64 `json:"p"     msgpack:"p"     codec:"p"`
	Value float64 `json:"value" msgpack:"value" codec:"value"`
}

// Summary holds the aggregates of one statistic. Values are converted to float64;
// Mean keeps the truncation of integer sample types.
type Summary struct {
	Name        string     `json:"name"             msgpack:"name"        codec:"name"`
	Count       int        `json:"count"            msgpack:"count"       codec:"count"`
	Min         float64    `json:"min"              msgpack:"min"         codec:"min"`
	Max         float64    `json:"max"              msgpack:"max"         codec:"max"`
	Mean        float64    `json:"mean"             msgpack:"mean"        codec:"mean"`
	StdDev      float64    `json:"stddev"           msgpack:"stddev"      codec:"stddev"`
	Percentiles []Quantile `json:"percentiles"      msgpack:"percentiles" codec:"percentiles"`
	Digest      uint64     `json:"digest"           msgpack:"digest"      codec:"digest"`
}

// Report is a snapshot of every statistic of a collector.
type Report struct {
	Stats []Summary `json:"stats" msgpack:"stats" codec:"stats"`
}

// Encode serializes the report with s.
func (r Report) Encode(s serializer.ISerializer) ([]byte, error) {
	data, err := s.Marshal(r)
	if err != nil {
		return nil, ewrap.Wrap(err, "encode report")
	}

	return data, nil
}

// DecodeReport decodes a report previously produced by Encode with the serializer called format.
func DecodeReport(format string, data []byte) (Report, error) {
	s, err := serializer.New(format)
	if err != nil {
		return Report{}, err
	}

	var report Report

	err = s.Unmarshal(data, &report)
	if err != nil {
		return Report{}, ewrap.Wrap(err, "decode report")
	}

	return report, nil
}
