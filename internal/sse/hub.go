package sse

import (
	"encoding/json"
	"sync"
)

// Event は1件のserver-sent event。
type Event struct {
	Name string
	Data string
}

// Hub はプロセス内のイベント配信。
// usecaseがPublishし、/api/eventsの各接続がSubscribeで受け取る。
// 再接続やバックプレッシャ制御は持たない（クライアント任せ）。
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[chan Event]struct{}),
	}
}

// Subscribe は購読チャネルと解除関数を返す。
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish は全購読者へ配る。
// 受信が詰まっている接続へはそのイベントを捨てる（待たない）。
func (h *Hub) Publish(event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	ev := Event{Name: event, Data: string(data)}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
