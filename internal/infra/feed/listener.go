package feed

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = time.Second
	maxReconnectInterval = time.Minute
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Listener мост между PostgreSQL LISTEN/NOTIFY и локальной раздачей снимков.
// Уведомление на канале означает, что коллекция изменилась (в том числе другим
// процессом) и её снимок нужно перечитать. После переподключения уведомления
// могли быть потеряны, поэтому перечитываются все коллекции.
type Listener struct {
	pqListener *pq.Listener
	onChange   func(channel string)
	log        Logger
	done       chan struct{}
}

// NewListener подключается к PostgreSQL и подписывается на указанные каналы.
// onChange вызывается с именем канала при каждом уведомлении и с пустой
// строкой после переподключения (полная ресинхронизация).
func NewListener(dsn string, channels []string, onChange func(channel string), log Logger) (*Listener, error) {
	l := &Listener{
		onChange: onChange,
		log:      log,
		done:     make(chan struct{}),
	}

	l.pqListener = pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, l.handleEvent)

	for _, channel := range channels {
		if err := l.pqListener.Listen(channel); err != nil {
			l.pqListener.Close()
			return nil, fmt.Errorf("feed: failed to listen on channel %q: %w", channel, err)
		}
	}

	go l.run()

	return l, nil
}

// run обрабатывает уведомления до закрытия listener
func (l *Listener) run() {
	for {
		select {
		case <-l.done:
			return
		case n, ok := <-l.pqListener.Notify:
			if !ok {
				return
			}
			if n == nil {
				// nil приходит после переподключения: уведомления могли
				// потеряться, перечитываем всё
				l.log.Warn("feed: listener reconnected, resyncing all collections")
				l.onChange("")
				continue
			}
			l.onChange(n.Channel)
		}
	}
}

// handleEvent логирует события соединения pq.Listener
func (l *Listener) handleEvent(event pq.ListenerEventType, err error) {
	switch event {
	case pq.ListenerEventConnected:
		l.log.Info("feed: listener connected")
	case pq.ListenerEventReconnected:
		l.log.Info("feed: listener reconnected")
	case pq.ListenerEventDisconnected:
		l.log.Warn("feed: listener disconnected: %v", err)
	case pq.ListenerEventConnectionAttemptFailed:
		l.log.Error("feed: listener connection attempt failed: %v", err)
	}
}

// Close останавливает прослушивание и закрывает соединение
func (l *Listener) Close() error {
	close(l.done)
	return l.pqListener.Close()
}
