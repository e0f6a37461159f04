package holidaze

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для метрик обращений к API
type Metrics interface {
	ObserveRemoteCall(operation string, status string, duration time.Duration)
}
