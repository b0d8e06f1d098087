package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// chatLog bitta sessiyaning xabarlari, eski -> yangi
type chatLog struct {
	messages []entity.Message
	lastAt   time.Time
}

type memoryChatRepository struct {
	mu          sync.RWMutex
	logs        map[string]*chatLog
	maxMessages int
}

// NewMemoryChatRepository in-memory chat tarixi; har sessiyada so'nggi maxMessages ta xabar qoladi
func NewMemoryChatRepository(maxMessages int) repository.ChatRepository {
	return &memoryChatRepository{
		logs:        make(map[string]*chatLog),
		maxMessages: maxMessages,
	}
}

func (m *memoryChatRepository) SaveMessage(ctx context.Context, message entity.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	log := m.logs[message.SessionID]
	if log == nil {
		log = &chatLog{}
		m.logs[message.SessionID] = log
	}
	log.messages = keepLast(append(log.messages, message), m.maxMessages)
	if message.Timestamp.After(log.lastAt) {
		log.lastAt = message.Timestamp
	}
	return nil
}

func (m *memoryChatRepository) GetHistory(ctx context.Context, sessionID string, limit int) ([]entity.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	log := m.logs[sessionID]
	if log == nil {
		return []entity.Message{}, nil
	}
	return append([]entity.Message{}, keepLast(log.messages, limit)...), nil
}

// GetAllMessages hamma sessiyalar, yangi -> eski
func (m *memoryChatRepository) GetAllMessages(ctx context.Context, limit int) ([]entity.Message, error) {
	m.mu.RLock()
	all := []entity.Message{}
	for _, log := range m.logs {
		all = append(all, log.messages...)
	}
	m.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool { return all[i].Timestamp.After(all[j].Timestamp) })
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *memoryChatRepository) ClearHistory(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.logs, sessionID)
	m.mu.Unlock()
	return nil
}

func (m *memoryChatRepository) ClearAll(ctx context.Context) error {
	m.mu.Lock()
	clear(m.logs)
	m.mu.Unlock()
	return nil
}

// PurgeBefore oxirgi xabari before dan oldin bo'lgan sessiyalarni o'chiradi
func (m *memoryChatRepository) PurgeBefore(ctx context.Context, before time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	purged := 0
	for id, log := range m.logs {
		if log.lastAt.Before(before) {
			delete(m.logs, id)
			purged++
		}
	}
	return purged, nil
}

// keepLast oxirgi n ta element; n <= 0 bo'lsa hammasi
func keepLast(msgs []entity.Message, n int) []entity.Message {
	if n <= 0 || len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}
