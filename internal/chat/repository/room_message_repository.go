package repository

import (
	"sync"

	"chat_room_service/internal/chat/domain"
	"chat_room_service/pkg/storage"
)

// RoomMessageRepository definition per-room ordered message history
type RoomMessageRepository interface {
	// Append 追加一則訊息並同步落地整份房間文檔。未知房間即時建立空日誌
	Append(roomID string, msg domain.ChatMessage) error
	// Messages 返回房間的完整訊息序列, 沒有訊息時返回空序列而非錯誤
	Messages(roomID string) ([]domain.ChatMessage, error)
}

// roomMessageRepository 房間日誌常駐記憶體, 首次存取時從磁碟載入
// store 本身不加鎖, load→mutate→save 整段由這裡的互斥鎖串行化
type roomMessageRepository struct {
	store storage.Store
	mu    sync.Mutex
	logs  map[string]*domain.RoomLog
}

// NewRoomMessageRepository create a RoomMessageRepository
func NewRoomMessageRepository(store storage.Store) RoomMessageRepository {
	return &roomMessageRepository{
		store: store,
		logs:  make(map[string]*domain.RoomLog),
	}
}

func docName(roomID string) string {
	return "room_" + roomID
}

// loadLocked 取得房間日誌, 未載入時先從磁碟讀。呼叫端必須持有鎖
func (r *roomMessageRepository) loadLocked(roomID string) (*domain.RoomLog, error) {
	if log, ok := r.logs[roomID]; ok {
		return log, nil
	}

	log := &domain.RoomLog{Messages: []domain.ChatMessage{}}
	if err := r.store.Load(docName(roomID), log); err != nil {
		return nil, err
	}
	r.logs[roomID] = log
	return log, nil
}

func (r *roomMessageRepository) Append(roomID string, msg domain.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log, err := r.loadLocked(roomID)
	if err != nil {
		return err
	}

	// 先改記憶體再落地; 落地失敗時記憶體仍保留這筆訊息
	log.Messages = append(log.Messages, msg)
	return r.store.Save(docName(roomID), log)
}

func (r *roomMessageRepository) Messages(roomID string) ([]domain.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log, err := r.loadLocked(roomID)
	if err != nil {
		return nil, err
	}

	// 複製一份, 避免呼叫端在鎖外讀到被並發 Append 改動的切片
	out := make([]domain.ChatMessage, len(log.Messages))
	copy(out, log.Messages)
	return out, nil
}
