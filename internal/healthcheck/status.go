package healthcheck

import (
	"net/http"
	"time"
)

// Status is the outcome of a health check. Lower values are worse.
type Status int

const (
	Unhealthy Status = iota
	Degraded
	Healthy
)

func (s Status) String() string {
	switch s {
	case Unhealthy:
		return "Unhealthy"
	case Degraded:
		return "Degraded"
	case Healthy:
		return "Healthy"
	default:
		return "Unknown"
	}
}

// HTTPStatus maps a status to the response code of the readiness endpoint.
func (s Status) HTTPStatus() int {
	if s == Healthy || s == Degraded {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

// Result is what a single check reports.
type Result struct {
	Status      Status
	Description string
	Err         error
	Data        map[string]any
}

func HealthyResult(description string) Result {
	return Result{Status: Healthy, Description: description}
}

func DegradedResult(description string, err error) Result {
	return Result{Status: Degraded, Description: description, Err: err}
}

func UnhealthyResult(description string, err error) Result {
	return Result{Status: Unhealthy, Description: description, Err: err}
}

// Entry is the result of one registered check inside a Report.
type Entry struct {
	Status      Status
	Description string
	Duration    time.Duration
	Err         error
	Data        map[string]any
	Tags        []string
}

// Report aggregates the entries of a run. Status is the worst entry status,
// or Healthy when nothing is registered.
type Report struct {
	Status        Status
	TotalDuration time.Duration
	Entries       map[string]Entry
}
