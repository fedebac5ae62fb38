package events_test

import (
	"sync"
	"testing"

	"github.com/DOIDFoundation/corerpc/events"
	"github.com/stretchr/testify/assert"
)

func TestFeedSubscribe(t *testing.T) {
	var feed events.FeedOf[int]

	var (
		mu  sync.Mutex
		got []int
	)
	feed.Subscribe("a", func(v int) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})
	assert.Equal(t, 1, feed.Len())

	assert.Equal(t, 1, feed.Send(1))
	assert.Equal(t, 1, feed.Send(2))
	feed.Unsubscribe("a").Wait()

	assert.Equal(t, 0, feed.Len())
	assert.Equal(t, 0, feed.Send(3))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2}, got)
}

func TestFeedResubscribeReplaces(t *testing.T) {
	var feed events.FeedOf[string]

	first := make(chan string, 1)
	second := make(chan string, 1)
	feed.Subscribe("x", func(v string) { first <- v })
	feed.Subscribe("x", func(v string) { second <- v })

	assert.Equal(t, 1, feed.Len())
	assert.Equal(t, 1, feed.Send("hello"))
	assert.Equal(t, "hello", <-second)
	assert.Empty(t, first)
	feed.Unsubscribe("x").Wait()
}

func TestUnsubscribeUnknown(t *testing.T) {
	var feed events.FeedOf[int]
	feed.Unsubscribe("missing").Wait()
	assert.Zero(t, feed.Len())
}
