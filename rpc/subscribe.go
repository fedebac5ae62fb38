package rpc

import (
	"context"

	"github.com/DOIDFoundation/corerpc/events"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
)

// Subscribe notifies the subscriber behind ctx of every value sent on feed,
// until the subscription or its connection is closed.
func Subscribe[T any](ctx context.Context, feed *events.FeedOf[T]) (*ethrpc.Subscription, error) {
	notifier, supported := ethrpc.NotifierFromContext(ctx)
	if !supported {
		return &ethrpc.Subscription{}, ethrpc.ErrNotificationsUnsupported
	}

	rpcSub := notifier.CreateSubscription()

	go func() {
		feed.Subscribe(string(rpcSub.ID), func(data T) {
			notifier.Notify(rpcSub.ID, data)
		})

	Wait:
		for {
			select {
			case <-rpcSub.Err():
				break Wait
			case <-notifier.Closed():
				break Wait
			}
		}
		feed.Unsubscribe(string(rpcSub.ID))
	}()

	return rpcSub, nil
}
