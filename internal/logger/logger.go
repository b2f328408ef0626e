package logger

import "os"

// Logger is the logging surface used across the application.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// LevelFromEnv determines the log level name from the environment.
func LevelFromEnv() string {
	switch level := os.Getenv("LOG_LEVEL"); level {
	case "debug", "info", "warn", "error":
		return level
	default:
		if os.Getenv("DEBUG") == "1" {
			return "debug"
		}
		return "info"
	}
}
