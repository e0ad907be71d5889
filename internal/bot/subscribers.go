package bot

import "sync"

// Subscribers is the in-memory registry of chats receiving the
// scheduled screen push. Not persisted; a restart clears it.
type Subscribers struct {
	mu    sync.Mutex
	chats map[int64]struct{}
}

func NewSubscribers() *Subscribers {
	return &Subscribers{chats: make(map[int64]struct{})}
}

// Add reports false when the chat was already subscribed.
func (s *Subscribers) Add(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chats[chatID]; ok {
		return false
	}
	s.chats[chatID] = struct{}{}
	return true
}

// Remove reports false when the chat was not subscribed.
func (s *Subscribers) Remove(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chats[chatID]; !ok {
		return false
	}
	delete(s.chats, chatID)
	return true
}

func (s *Subscribers) List() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, 0, len(s.chats))
	for id := range s.chats {
		out = append(out, id)
	}
	return out
}
