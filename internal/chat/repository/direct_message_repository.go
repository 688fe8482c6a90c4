package repository

import (
	"sync"

	"chat_room_service/internal/chat/domain"
	"chat_room_service/pkg/storage"
)

// DirectMessageRepository definition per-conversation ordered message history
type DirectMessageRepository interface {
	// Append 追加一則私訊並落地整份對話文檔
	Append(msg domain.DirectMessage) error
	// Between 返回兩位用戶的完整對話, 文檔不存在時返回空序列
	Between(userA, userB string) ([]domain.DirectMessage, error)
}

// directMessageRepository 對話文檔每次呼叫都重新讀檔, 不做跨請求快取
// 對話檔一人一對一份, 數量多但存取稀疏, 全部常駐記憶體並不划算
type directMessageRepository struct {
	store storage.Store
	mu    sync.Mutex
}

// NewDirectMessageRepository create a DirectMessageRepository
func NewDirectMessageRepository(store storage.Store) DirectMessageRepository {
	return &directMessageRepository{store: store}
}

func conversationDoc(userA, userB string) string {
	return "dm_" + domain.ConversationID(userA, userB)
}

func (r *directMessageRepository) Append(msg domain.DirectMessage) error {
	// read-modify-write 全段加鎖, 兩個並發 Append 不會互相覆蓋
	r.mu.Lock()
	defer r.mu.Unlock()

	name := conversationDoc(msg.From, msg.To)

	msgs := []domain.DirectMessage{}
	if err := r.store.Load(name, &msgs); err != nil {
		return err
	}

	msgs = append(msgs, msg)
	return r.store.Save(name, msgs)
}

func (r *directMessageRepository) Between(userA, userB string) ([]domain.DirectMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs := []domain.DirectMessage{}
	if err := r.store.Load(conversationDoc(userA, userB), &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
