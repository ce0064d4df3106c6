package logger

// LoggerInterface методы логгера, которыми пользуются сессия и middleware
type LoggerInterface interface {
	Infow(string, ...any)
	Errorw(string, ...any)
	Debugw(string, ...any)
}
