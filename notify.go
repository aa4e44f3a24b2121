package labeltool

// notifier keeps a list of change subscribers.
// Subscribers are called synchronously, in subscription order.
type notifier struct {
	subs   map[int]func()
	order  []int
	nextID int
}

// Subscribe registers fn to be called after each change.
// The returned function cancels the subscription.
func (n *notifier) Subscribe(fn func()) func() {
	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	n.order = append(n.order, id)

	return func() {
		delete(n.subs, id)
		for i, o := range n.order {
			if o == id {
				n.order = append(n.order[:i], n.order[i+1:]...)
				break
			}
		}
	}
}

func (n *notifier) emit() {
	// copy, subscribers may unsubscribe while being notified
	ids := make([]int, len(n.order))
	copy(ids, n.order)
	for _, id := range ids {
		if fn, ok := n.subs[id]; ok {
			fn()
		}
	}
}
