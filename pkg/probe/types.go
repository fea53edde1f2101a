package probe

// State classifies the outcome of a single probe attempt.
type State string

const (
	StateHealthy   State = "healthy"
	StateUnhealthy State = "unhealthy"
	StateError     State = "error"
)

// Result is the transient classification of one probe attempt. StatusCode is
// only meaningful for unhealthy HTTP probes; Message only for errors.
type Result struct {
	State      State  `json:"state"`
	StatusCode int    `json:"statusCode,omitempty"`
	Message    string `json:"message,omitempty"`
}

func (r Result) IsHealthy() bool {
	return r.State == StateHealthy
}

func Healthy() Result {
	return Result{State: StateHealthy}
}

func Unhealthy(statusCode int) Result {
	return Result{State: StateUnhealthy, StatusCode: statusCode}
}

func Error(err error) Result {
	return Result{State: StateError, Message: err.Error()}
}

// Probe performs a single check against one target. Implementations must not
// panic or block beyond their configured timeout; any failure is reported
// through the returned Result.
type Probe interface {
	Check() Result
}
