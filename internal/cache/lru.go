package cache

// lruNode links one key into the recency ring.
type lruNode[K comparable] struct {
	key        K
	prev, next *lruNode[K]
}

// lruList is a circular list around a sentinel: root.next is the most
// recently used key and root.prev the least. The caller serializes access.
type lruList[K comparable] struct {
	root lruNode[K]
	n    int
}

func newLRUList[K comparable]() *lruList[K] {
	l := &lruList[K]{}
	l.Clear()
	return l
}

// Len returns the number of keys in the list.
func (l *lruList[K]) Len() int {
	return l.n
}

// PushFront links a new node for key as the most recently used.
func (l *lruList[K]) PushFront(key K) *lruNode[K] {
	node := &lruNode[K]{key: key}
	l.insertAfter(node, &l.root)
	l.n++
	return node
}

// MoveToFront marks node as the most recently used.
func (l *lruList[K]) MoveToFront(node *lruNode[K]) {
	if node == nil || l.root.next == node {
		return
	}
	detach(node)
	l.insertAfter(node, &l.root)
}

// Remove unlinks node. Nil nodes are ignored.
func (l *lruList[K]) Remove(node *lruNode[K]) {
	if node == nil || node.next == nil {
		return
	}
	detach(node)
	l.n--
}

// RemoveOldest unlinks the least recently used node and returns its key.
func (l *lruList[K]) RemoveOldest() (K, bool) {
	oldest := l.root.prev
	if oldest == &l.root {
		var zero K
		return zero, false
	}
	l.Remove(oldest)
	return oldest.key, true
}

// Clear empties the list. Nodes still referenced elsewhere are abandoned.
func (l *lruList[K]) Clear() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.n = 0
}

func (l *lruList[K]) insertAfter(node, at *lruNode[K]) {
	node.prev = at
	node.next = at.next
	at.next.prev = node
	at.next = node
}

// detach unlinks node from its neighbours without touching the count.
func detach[K comparable](node *lruNode[K]) {
	node.prev.next = node.next
	node.next.prev = node.prev
	node.prev, node.next = nil, nil
}
