package auth

import (
	"sync"

	"github.com/lvalenti/liftlog/internal/fit"
)

// sessionSubscribers fans session changes out to registered listeners. The
// sync engine and the sharing service both hang off it.
type sessionSubscribers struct {
	mutex  sync.Mutex
	nextID int
	subs   map[int]func(user *fit.UserIdentity)
}

func newSessionSubscribers() *sessionSubscribers {
	return &sessionSubscribers{
		subs: make(map[int]func(user *fit.UserIdentity)),
	}
}

func (s *sessionSubscribers) add(fn func(user *fit.UserIdentity)) (unsubscribe func()) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()
		delete(s.subs, id)
	}
}

func (s *sessionSubscribers) notify(user *fit.UserIdentity) {
	s.mutex.Lock()
	fns := make([]func(user *fit.UserIdentity), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mutex.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}
