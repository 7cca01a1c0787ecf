// Package attrs provides reusable OpenTelemetry attribute key constants
// to avoid duplication across middlewares.
package attrs

const (
	// AttrStatName is the name of the statistic an operation targets.
	AttrStatName = "stat.name"
	// AttrSampleValue is the sample recorded by a Record call, as float64.
	AttrSampleValue = "sample.value"
	// AttrSampleCount is the number of samples a summary was computed over.
	AttrSampleCount = "sample.count"
	// AttrStatsCount is the number of statistics returned by a snapshot.
	AttrStatsCount = "stats.count"
)
