package bot

import (
	"context"
	"time"

	"assistant-bot/internal/logger"
)

// Logging логирует выполнение команды: имя, число аргументов, время выполнения и результат
func Logging(log logger.LoggerInterface, name string, next CommandFunc) CommandFunc {
	return func(ctx context.Context, args []string) (string, error) {
		log.Debugw("incoming command", "command", name, "args", len(args))

		start := time.Now()
		reply, err := next(ctx, args)
		duration := time.Since(start)

		switch {
		case err == nil:
			log.Debugw("command completed", "command", name, "duration", duration)
		case handleError(err) == msgInternal:
			log.Errorw("command failed", "command", name, "error", err, "duration", duration)
		default:
			// Ошибки ввода ожидаемы, это не сбой
			log.Infow("command rejected", "command", name, "error", err, "duration", duration)
		}

		return reply, err
	}
}
