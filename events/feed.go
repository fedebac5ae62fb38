package events

import (
	"sync"

	"github.com/ethereum/go-ethereum/event"
)

type Callback[T any] func(data T)

type Subscription[T any] struct {
	s event.Subscription
	c chan T
	w *sync.WaitGroup
}

// Wrapper of go-ethereum/event.FeedOf that provides easier Subscribe and
// Unsubscribe calls keyed by subscriber id
type FeedOf[T any] struct {
	feed event.FeedOf[T]

	mu            sync.Mutex
	subscriptions map[string]*Subscription[T]
}

// Send delivers data to all subscribers and returns how many received it.
// It blocks until every subscriber callback has taken the value.
func (e *FeedOf[T]) Send(data T) (sent int) {
	return e.feed.Send(data)
}

func (e *FeedOf[T]) Subscribe(id string, callback Callback[T]) {
	e.Unsubscribe(id)

	sub := &Subscription[T]{c: make(chan T), w: &sync.WaitGroup{}}
	sub.s = e.feed.Subscribe(sub.c)
	sub.w.Add(1)
	go func() {
		defer sub.w.Done()
		for {
			select {
			case t := <-sub.c:
				callback(t)
			case <-sub.s.Err():
				return
			}
		}
	}()

	e.mu.Lock()
	if e.subscriptions == nil {
		e.subscriptions = make(map[string]*Subscription[T])
	}
	e.subscriptions[id] = sub
	e.mu.Unlock()
}

// Unsubscribe removes subscriber id. Wait on the returned group to be sure
// its callback is no longer running.
func (e *FeedOf[T]) Unsubscribe(id string) *sync.WaitGroup {
	e.mu.Lock()
	sub, ok := e.subscriptions[id]
	delete(e.subscriptions, id)
	e.mu.Unlock()

	if ok {
		sub.s.Unsubscribe()
		return sub.w
	}
	return &sync.WaitGroup{}
}

// Len returns the number of subscribers.
func (e *FeedOf[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subscriptions)
}
