package cache

// lruList tracks eviction order with a doubly linked list plus a key
// index. Front is most recently used.
type lruList struct {
	head  *lruNode
	tail  *lruNode
	nodes map[string]*lruNode
}

type lruNode struct {
	key        string
	prev, next *lruNode
}

func newLRUList() *lruList {
	head := &lruNode{}
	tail := &lruNode{}
	head.next = tail
	tail.prev = head
	return &lruList{head: head, tail: tail, nodes: make(map[string]*lruNode)}
}

func (l *lruList) touch(key string) {
	node, exists := l.nodes[key]
	if !exists {
		node = &lruNode{key: key}
		l.nodes[key] = node
	} else {
		l.unlink(node)
	}
	node.next = l.head.next
	node.prev = l.head
	l.head.next.prev = node
	l.head.next = node
}

func (l *lruList) remove(key string) {
	if node, exists := l.nodes[key]; exists {
		l.unlink(node)
		delete(l.nodes, key)
	}
}

// removeOldest unlinks and returns the least recently used key, or ""
// when the list is empty.
func (l *lruList) removeOldest() string {
	if len(l.nodes) == 0 {
		return ""
	}
	oldest := l.tail.prev
	l.unlink(oldest)
	delete(l.nodes, oldest.key)
	return oldest.key
}

func (l *lruList) len() int {
	return len(l.nodes)
}

func (l *lruList) unlink(node *lruNode) {
	node.prev.next = node.next
	node.next.prev = node.prev
}
