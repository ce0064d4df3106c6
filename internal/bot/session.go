package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"assistant-bot/internal/logger"
	"assistant-bot/internal/service/addressbook"
)

const msgInvalidCommand = "Invalid command."

// SessionOptions тексты, которые сессия выводит пользователю
type SessionOptions struct {
	Greeting string
	Prompt   string
	Farewell string
}

// Session цикл чтения команд: строка ввода → команда → ответ
type Session struct {
	commands map[string]CommandFunc
	events   <-chan addressbook.Event
	logger   logger.LoggerInterface
	opts     SessionOptions
}

// NewSession создает сессию. events может быть nil
func NewSession(handler *Handler, log logger.LoggerInterface, opts SessionOptions, events <-chan addressbook.Event) *Session {
	commands := handler.Commands()
	for name, cmd := range commands {
		commands[name] = Logging(log, name, cmd)
	}

	return &Session{
		commands: commands,
		events:   events,
		logger:   log,
		opts:     opts,
	}
}

// Dispatch выполняет одну строку ввода.
// Возвращает ответ для вывода и признак завершения сессии
func (s *Session) Dispatch(ctx context.Context, line string) (string, bool) {
	name, args := ParseInput(line)
	switch name {
	case "":
		return "", false
	case "close", "exit":
		return s.opts.Farewell, true
	}

	cmd, ok := s.commands[name]
	if !ok {
		return msgInvalidCommand, false
	}

	reply, err := cmd(ctx, args)
	if err != nil {
		return handleError(err), false
	}

	return reply, false
}

// Run читает команды из in и пишет ответы в out до команды выхода,
// конца ввода или отмены контекста. Отмена прерывает и ожидание ввода
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if s.opts.Greeting != "" {
		fmt.Fprintln(out, s.opts.Greeting)
	}

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, s.opts.Prompt)

		var line string
		select {
		case <-ctx.Done():
			s.logger.Debugw("session cancelled while waiting for input")
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				s.logger.Debugw("input closed")
				return nil
			}
			line = l
		}

		reply, exit := s.Dispatch(ctx, line)
		if reply != "" {
			fmt.Fprintln(out, reply)
		}
		s.logEvents()

		if exit {
			return nil
		}
	}
}

// readLines читает строки из in в отдельной горутине.
// После закрытия lines в readErr лежит ошибка чтения (или nil)
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (s *Session) logEvents() {
	if s.events == nil {
		return
	}
	for _, event := range addressbook.Drain(s.events) {
		s.logger.Infow("address book changed",
			"event_id", event.ID,
			"kind", string(event.Kind),
			"record_id", event.RecordID,
			"name", event.Name,
		)
	}
}
