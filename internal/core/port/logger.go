package port

// Fields carries structured data into a log record.
type Fields map[string]interface{}

// LoggerPort is the contract for the logging system.
type LoggerPort interface {
	Info(msg string, fields Fields)

	Warn(msg string, fields Fields)

	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields returns a new logger instance with the fields attached.
	WithFields(fields Fields) LoggerPort
}
