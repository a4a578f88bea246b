package application

import "github.com/shloksachdev/PaperLens/internal/domain"

// Listener receives session events on the loop. It must not call back into
// the Controller synchronously.
type Listener func(domain.Event)

type subscription struct {
	id       int
	listener Listener
}

type broadcaster struct {
	nextID int
	subs   []subscription
}

func (b *broadcaster) add(listener Listener) int {
	b.nextID++
	b.subs = append(b.subs, subscription{id: b.nextID, listener: listener})
	return b.nextID
}

func (b *broadcaster) remove(id int) {
	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

func (b *broadcaster) publish(event domain.Event) {
	for _, sub := range b.subs {
		sub.listener(event)
	}
}
