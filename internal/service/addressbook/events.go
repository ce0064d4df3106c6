package addressbook

import (
	"time"

	"assistant-bot/internal/model"

	"github.com/google/uuid"
)

// subscriberBuffer размер буфера канала подписчика
const subscriberBuffer = 10

// EventKind тип события изменения адресной книги
type EventKind string

const (
	EventRecordAdded   EventKind = "record.added"
	EventRecordDeleted EventKind = "record.deleted"
)

// Event событие изменения контакта
type Event struct {
	ID       string
	Kind     EventKind
	RecordID string
	Name     string
	At       time.Time
}

// NewEvent создает событие для записи
func NewEvent(kind EventKind, record model.Record) Event {
	return Event{
		ID:       uuid.New().String(),
		Kind:     kind,
		RecordID: record.ID,
		Name:     record.Name,
		At:       time.Now(),
	}
}

// EventService управляет подписчиками на события адресной книги.
// Используется из одного потока: подписчик вычитывает канал после каждой команды
type EventService struct {
	subscribers map[chan Event]bool
}

// NewEventService создает новый экземпляр EventService
func NewEventService() *EventService {
	return &EventService{
		subscribers: make(map[chan Event]bool),
	}
}

// Subscribe добавляет нового подписчика и возвращает канал для получения событий
func (s *EventService) Subscribe() chan Event {
	ch := make(chan Event, subscriberBuffer)
	s.subscribers[ch] = true
	return ch
}

// Unsubscribe удаляет подписчика и закрывает его канал
func (s *EventService) Unsubscribe(ch chan Event) {
	if _, ok := s.subscribers[ch]; ok {
		close(ch)
		delete(s.subscribers, ch)
	}
}

// Publish отправляет событие всем подписчикам.
// Если канал подписчика переполнен, событие пропускается
func (s *EventService) Publish(event Event) {
	for ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// Drain возвращает все накопленные в канале события без блокировки
func Drain(ch <-chan Event) []Event {
	var events []Event
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return events
			}
			events = append(events, event)
		default:
			return events
		}
	}
}
