// Package metrics exposes Prometheus metrics about collection builds.
//
// Collectors live on a private registry created by New, served by Handler at
// /metrics. A nil *Metrics is accepted everywhere, so commands that do not
// serve HTTP skip metrics by passing nil.
package metrics
