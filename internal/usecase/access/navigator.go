package access

import (
	"errors"
	"slices"
	"sync"
)

var ErrScreenNotMounted = errors.New("screen is not part of the mounted tree")

// Navigator is the back stack of one mounted screen tree.
type Navigator struct {
	mu      sync.Mutex
	mounted []Screen
	stack   []Screen
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

// Mount replaces the tree and leaves only its root on the stack.
func (n *Navigator) Mount(tree []Screen) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.mounted = slices.Clone(tree)
	n.stack = n.stack[:0]
	if len(tree) > 0 {
		n.stack = append(n.stack, tree[0])
	}
}

func (n *Navigator) Push(s Screen) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !slices.Contains(n.mounted, s) {
		return ErrScreenNotMounted
	}
	n.stack = append(n.stack, s)
	return nil
}

// Back pops the top screen. The root stays.
func (n *Navigator) Back() (Screen, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.stack) <= 1 {
		return "", false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return n.stack[len(n.stack)-1], true
}

func (n *Navigator) Current() (Screen, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.stack) == 0 {
		return "", false
	}
	return n.stack[len(n.stack)-1], true
}

func (n *Navigator) Stack() []Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.stack)
}

func (n *Navigator) Mounted() []Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.mounted)
}

func (n *Navigator) Allows(s Screen) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Contains(n.mounted, s)
}
