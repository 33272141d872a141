package events

import "github.com/atomicstack/matui/internal/logging"

type InputTracer struct{}

type BusTracer struct{}

var (
	Input = InputTracer{}
	Bus   = BusTracer{}
)

func (InputTracer) ResizeDiscarded(width, height int) {
	logging.Trace("input.resize.discarded", map[string]interface{}{"width": width, "height": height})
}

func (InputTracer) Stopped(source string) {
	logging.Trace("input.stopped", map[string]interface{}{"source": source})
}

// SendDropped records a value that could not be queued because the receiving
// side has gone away.
func (BusTracer) SendDropped(kind string, err error) {
	payload := map[string]interface{}{"kind": kind}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("bus.send.dropped", payload)
}
