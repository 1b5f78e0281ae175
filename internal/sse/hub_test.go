package sse_test

import (
	"testing"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/sse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := sse.NewHub()

	ch1, cancel1 := hub.Subscribe()
	defer cancel1()
	ch2, cancel2 := hub.Subscribe()
	defer cancel2()

	hub.Publish("flashsale.updated", map[string]int64{"id": 5})

	for _, ch := range []<-chan sse.Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, "flashsale.updated", ev.Name)
			assert.JSONEq(t, `{"id":5}`, ev.Data)
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}
}

func TestHub_CancelStopsDelivery(t *testing.T) {
	hub := sse.NewHub()

	ch, cancel := hub.Subscribe()
	cancel()

	hub.Publish("flashsale.updated", nil)

	select {
	case _, ok := <-ch:
		require.False(t, ok, "cancelled subscriber must not receive events")
	default:
		//解除済みなので何も届かない
	}
}

// 受信が詰まっている購読者がいても他の配信は止まらない
func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := sse.NewHub()

	slow, cancelSlow := hub.Subscribe()
	defer cancelSlow()
	_ = slow

	//バッファを溢れさせる
	for i := 0; i < 100; i++ {
		hub.Publish("flashsale.updated", map[string]int{"n": i})
	}

	fast, cancelFast := hub.Subscribe()
	defer cancelFast()

	hub.Publish("flashsale.deleted", map[string]int64{"id": 1})

	select {
	case ev := <-fast:
		assert.Equal(t, "flashsale.deleted", ev.Name)
	case <-time.After(time.Second):
		t.Fatal("publish blocked by slow subscriber")
	}
}
