// Package broadcast provides typed publish/subscribe primitives.
//
// Bus is a synchronous, ordered channel keyed by topic: handlers run on the
// emitting goroutine in the order they were registered, and all of them
// run. The validator uses it for its lifecycle events.
//
//	bus := broadcast.NewBus[string]()
//	id := bus.On("validation:start", func(ctx context.Context, s string) {
//		fmt.Println("started", s)
//	})
//	bus.Emit(ctx, "validation:start", "signup")
//	bus.Off("validation:start", id)
//
// MemoryBroadcaster fans messages out to asynchronous subscribers through
// buffered channels. It never blocks the publisher: a subscriber that
// cannot keep up is dropped. Subscribers may restrict themselves to a set
// of topics.
//
//	b := broadcast.NewMemoryBroadcaster[string](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx, "validation:end")
//	go func() {
//		for msg := range sub.Receive(ctx) {
//			log.Println(msg.Topic, msg.Data)
//		}
//	}()
//	_ = b.Broadcast(ctx, broadcast.Message[string]{Topic: "validation:end", Data: "ok"})
//
// Subscriptions end when their context is cancelled, when Close is called
// on the subscriber or the broadcaster, or when the subscriber's buffer
// overflows.
package broadcast
