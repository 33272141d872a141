package events

import "github.com/atomicstack/matui/internal/logging"

type ClientTracer struct{}

var Client = ClientTracer{}

func (ClientTracer) Stage(task, stage string) {
	logging.Trace("client.stage", map[string]interface{}{"task": task, "stage": stage})
}

func (ClientTracer) Error(task, stage string, err error) {
	if err == nil {
		return
	}
	logging.Trace("client.error", map[string]interface{}{"task": task, "stage": stage, "error": err.Error()})
}

func (ClientTracer) Synced(task string) {
	logging.Trace("client.synced", map[string]interface{}{"task": task})
}

func (ClientTracer) Command(task, command string) {
	logging.Trace("client.command", map[string]interface{}{"task": task, "command": command})
}
