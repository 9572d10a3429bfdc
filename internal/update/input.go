package update

import (
	"sync"

	"github.com/sandeepkv93/yeardots/internal/slide"
)

// pointerRouter gates terminal mouse motion and release events. They reach
// the slide control only while it holds a subscription for that pointer.
type pointerRouter struct {
	mu   sync.Mutex
	subs map[slide.Pointer]string
}

func newPointerRouter() *pointerRouter {
	return &pointerRouter{subs: make(map[slide.Pointer]string)}
}

func (r *pointerRouter) Subscribe(owner string, p slide.Pointer) slide.Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[p] = owner
	return &routerSub{router: r, owner: owner, pointer: p}
}

func (r *pointerRouter) Listening(p slide.Pointer) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.subs[p]
	return ok
}

func (r *pointerRouter) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

type routerSub struct {
	router  *pointerRouter
	owner   string
	pointer slide.Pointer
	once    sync.Once
}

func (s *routerSub) Release() {
	s.once.Do(func() {
		s.router.mu.Lock()
		defer s.router.mu.Unlock()
		if s.router.subs[s.pointer] == s.owner {
			delete(s.router.subs, s.pointer)
		}
	})
}
