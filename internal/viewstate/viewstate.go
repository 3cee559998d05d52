// Package viewstate tracks per-viewer card interaction state that lives
// only in this process. Liked, following, and saved flags are display
// state for the current session: they are never written to the database
// and never reconciled with other users' activity.
package viewstate

import (
	"sync"

	"plantify/internal/service"
)

// CardState is one viewer's local interaction state for one post.
type CardState struct {
	Liked     bool `json:"liked"`
	Following bool `json:"following"`
	Saved     bool `json:"saved"`

	commentInFlight bool
}

type cardKey struct {
	UserID uint
	PostID uint
}

// Store holds local card state for all viewers of this process.
type Store struct {
	mu    sync.Mutex
	cards map[cardKey]*CardState
}

func NewStore() *Store {
	return &Store{cards: make(map[cardKey]*CardState)}
}

func (s *Store) get(userID, postID uint) *CardState {
	key := cardKey{UserID: userID, PostID: postID}
	state, ok := s.cards[key]
	if !ok {
		state = &CardState{}
		s.cards[key] = state
	}
	return state
}

// ToggleLike flips the viewer's local like flag and returns the new state.
func (s *Store) ToggleLike(userID, postID uint) CardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.get(userID, postID)
	state.Liked = !state.Liked
	return *state
}

// ToggleFollow flips the viewer's local follow flag and returns the new state.
func (s *Store) ToggleFollow(userID, postID uint) CardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.get(userID, postID)
	state.Following = !state.Following
	return *state
}

// ToggleSave flips the viewer's local save flag and returns the new state.
func (s *Store) ToggleSave(userID, postID uint) CardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.get(userID, postID)
	state.Saved = !state.Saved
	return *state
}

// Get returns the viewer's current state for a post without modifying it.
func (s *Store) Get(userID, postID uint) CardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.cards[cardKey{UserID: userID, PostID: postID}]; ok {
		return *state
	}
	return CardState{}
}

// BeginCommentSubmit marks a comment submission in flight for the card.
// It returns false if one is already pending, so double-submits are
// dropped instead of duplicated.
func (s *Store) BeginCommentSubmit(userID, postID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.get(userID, postID)
	if state.commentInFlight {
		return false
	}
	state.commentInFlight = true
	return true
}

// EndCommentSubmit clears the in-flight marker set by BeginCommentSubmit.
func (s *Store) EndCommentSubmit(userID, postID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userID, postID).commentInFlight = false
}

// Decorate overlays the viewer's local state onto feed items: a local
// like shows as one extra like, and the following flag is surfaced.
// The underlying items keep their stored counts.
func (s *Store) Decorate(items []service.FeedItem, userID uint) []service.FeedItem {
	if userID == 0 {
		return items
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	decorated := make([]service.FeedItem, len(items))
	for i, item := range items {
		if state, ok := s.cards[cardKey{UserID: userID, PostID: item.ID}]; ok {
			if state.Liked {
				item.Likes++
			}
			item.IsFollowing = state.Following
		}
		decorated[i] = item
	}
	return decorated
}
