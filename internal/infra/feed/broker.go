package feed

import "sync"

// Broker раздает полные снимки коллекции подписчикам.
//
// Семантика "последний выигрывает": у каждого подписчика буфер на один снимок,
// при отставании ожидающий снимок заменяется более новым. Подписчик может
// пропустить промежуточные состояния, но никогда не останется на устаревшем —
// производное состояние всегда пересчитывается от последнего снимка целиком.
type Broker[T any] struct {
	mu      sync.Mutex
	subs    map[int]chan T
	nextID  int
	last    T
	hasLast bool
}

// NewBroker создает новый broker снимков
func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{subs: map[int]chan T{}}
}

// Subscribe оформляет подписку на снимки коллекции.
// Последний опубликованный снимок доставляется сразу. Возвращённую функцию
// освобождения обязательно вызывать при завершении подписчика, иначе
// подписка утечёт.
func (b *Broker[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan T, 1)
	if b.hasLast {
		ch <- b.last
	}
	b.subs[id] = ch

	release := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}

	return ch, release
}

// Publish рассылает снимок всем подписчикам, не блокируясь на медленных
func (b *Broker[T]) Publish(snapshot T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.last = snapshot
	b.hasLast = true

	for _, ch := range b.subs {
		// Вытесняем недоставленный снимок, если подписчик отстал
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

// Subscribers возвращает текущее число подписчиков
func (b *Broker[T]) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
