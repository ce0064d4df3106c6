package app

import (
	"context"
	"errors"
	"io"
	"time"

	"assistant-bot/internal/bot"
	"assistant-bot/internal/config"
	"assistant-bot/internal/logger"
	"assistant-bot/internal/repository/memory"
	"assistant-bot/internal/service/addressbook"
)

// App представляет приложение: адресную книгу и интерактивную сессию над ней
type App struct {
	Config *config.Config
	Logger *logger.Logger

	// Events публикует изменения адресной книги, сессия пишет их в лог
	Events *addressbook.EventService

	Session *bot.Session

	subscription chan addressbook.Event
	now          func() time.Time
}

// Option настраивает App
type Option func(*App)

// WithClock задает источник текущей даты
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// NewApp создает новый экземпляр приложения
func NewApp(cfg *config.Config, log *logger.Logger, opts ...Option) (*App, error) {
	if cfg == nil || cfg.Bot == nil {
		return nil, errors.New("bot config is missing")
	}
	if log == nil {
		log = logger.NewNop()
	}

	a := &App{
		Config: cfg,
		Logger: log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Initialize инициализирует компоненты (DI): Repository → Service → Handler → Session
func (a *App) Initialize() error {
	recordRepo := memory.NewRepository()
	a.Logger.Debugw("initialized in-memory repository")

	a.Events = addressbook.NewEventService()
	a.subscription = a.Events.Subscribe()

	book := addressbook.NewAddressBook(recordRepo, a.Events)
	a.Logger.Debugw("initialized address book")

	handler := bot.NewHandler(book, a.now)
	a.Session = bot.NewSession(handler, a.Logger, bot.SessionOptions{
		Greeting: a.Config.Bot.Greeting,
		Prompt:   a.Config.Bot.Prompt,
		Farewell: a.Config.Bot.Farewell,
	}, a.subscription)
	a.Logger.Debugw("initialized bot session")

	return nil
}

// Run запускает сессию и блокируется до ее завершения
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if a.Session == nil {
		return errors.New("app is not initialized")
	}

	a.Logger.Infow("session started")
	err := a.Session.Run(ctx, in, out)
	a.Logger.Infow("session finished", "error", err)

	return err
}

// Shutdown отписывается от событий и сбрасывает буферы логгера
func (a *App) Shutdown() {
	if a.Events != nil && a.subscription != nil {
		a.Events.Unsubscribe(a.subscription)
		a.subscription = nil
	}
	a.Logger.SafeSync()
}
