package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learnhub/models"
)

// MemoryUserStore is an in-memory UserRepository used by the engine tests.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *MemoryUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := user
	return &found, nil
}

func (s *MemoryUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) GetByReferralCode(_ context.Context, code string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	code = strings.ToUpper(code)
	for _, user := range s.users {
		if user.ReferralCode == code {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) Save(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryUserStore) TopByXP(_ context.Context, limit int64) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].XP > users[j].XP })
	if int64(len(users)) > limit {
		users = users[:limit]
	}
	return users, nil
}

// MemoryForumStore is an in-memory ForumRepository. Tests seed it with
// topics to drive the post and like badge predicates.
type MemoryForumStore struct {
	mu     sync.RWMutex
	topics []models.ForumTopic
}

func NewMemoryForumStore() *MemoryForumStore {
	return &MemoryForumStore{}
}

// AddTopic records a topic authored by the given user with a like total.
func (s *MemoryForumStore) AddTopic(authorID primitive.ObjectID, likes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = append(s.topics, models.ForumTopic{
		ID:        primitive.NewObjectID(),
		AuthorID:  authorID,
		LikeCount: likes,
	})
}

func (s *MemoryForumStore) CountTopicsByAuthor(_ context.Context, authorID primitive.ObjectID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, topic := range s.topics {
		if topic.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

func (s *MemoryForumStore) TotalLikesForAuthor(_ context.Context, authorID primitive.ObjectID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, topic := range s.topics {
		if topic.AuthorID == authorID {
			total += topic.LikeCount
		}
	}
	return total, nil
}

// MemoryNotificationStore is an in-memory NotificationRepository.
type MemoryNotificationStore struct {
	mu            sync.RWMutex
	notifications []models.Notification
}

func NewMemoryNotificationStore() *MemoryNotificationStore {
	return &MemoryNotificationStore{}
}

func (s *MemoryNotificationStore) Add(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	s.notifications = append(s.notifications, *n)
	return nil
}

func (s *MemoryNotificationStore) ListForUser(_ context.Context, userID primitive.ObjectID, limit int64) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Notification
	for i := len(s.notifications) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if s.notifications[i].UserID == userID {
			out = append(out, s.notifications[i])
		}
	}
	return out, nil
}
