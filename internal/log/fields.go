package log

// FieldComponent tags every log line with the emitting subsystem.
const FieldComponent = "component"

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentWorker = "worker"
	ComponentCLI    = "cli"
)
