package logging

// LogEntry represents a structured log record for frontier operations.
type LogEntry struct {
	// Standard fields
	Time     int64
	Severity Severity
	Message  string
	File     string
	Line     int
	Function string

	// Engine-specific fields
	Generation int     // Generation counter of the frontier being mutated
	Frontier   int     // Current frontier size
	Volume     float64 // Hypervolume after the operation

	// General structured data
	Fields map[string]interface{}
}
