package app

import (
	"strings"
	"time"

	"chat_room_service/internal/chat/domain"
	"chat_room_service/internal/chat/repository"
	"chat_room_service/pkg/logger"

	"go.uber.org/zap"
)

// MessageUseCase 處理聊天室訊息
type MessageUseCase interface {
	// Send 驗證輸入後追加一則訊息到房間日誌
	Send(roomID, user, text string) error
	// Messages 返回房間的完整訊息序列 (輪詢端點用)
	Messages(roomID string) ([]domain.ChatMessage, error)
	// Rooms 返回靜態配置的房間清單
	Rooms() []domain.Room
}

type messageUseCase struct {
	msgRepo repository.RoomMessageRepository
	rooms   []domain.Room
	now     func() time.Time
}

// NewMessageUseCase create a MessageUseCase, now 可注入方便測試
func NewMessageUseCase(msgRepo repository.RoomMessageRepository, rooms []domain.Room, now func() time.Time) MessageUseCase {
	if now == nil {
		now = time.Now
	}
	return &messageUseCase{
		msgRepo: msgRepo,
		rooms:   rooms,
		now:     now,
	}
}

// Send send message to room
func (uc *messageUseCase) Send(roomID, user, text string) error {
	// 1. 輸入驗證, 任何變更前先拒絕
	roomID = strings.TrimSpace(roomID)
	user = strings.TrimSpace(user)
	if roomID == "" {
		return domain.ErrEmptyRoom
	}
	if user == "" {
		return domain.ErrEmptyUser
	}
	if strings.TrimSpace(text) == "" {
		return domain.ErrEmptyMessage
	}

	// 2. 建立訊息並追加 (未知房間由 repository 即時建立)
	msg := domain.ChatMessage{
		User:      user,
		Message:   text,
		Timestamp: uc.now().Format(domain.TimeLayout),
	}

	if err := uc.msgRepo.Append(roomID, msg); err != nil {
		logger.Log.Error("append room message failed",
			zap.String("room", roomID), zap.String("user", user), zap.Error(err))
		return err
	}
	return nil
}

// Messages list all room message
func (uc *messageUseCase) Messages(roomID string) ([]domain.ChatMessage, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return nil, domain.ErrEmptyRoom
	}
	return uc.msgRepo.Messages(roomID)
}

// Rooms list configured rooms
func (uc *messageUseCase) Rooms() []domain.Room {
	out := make([]domain.Room, len(uc.rooms))
	copy(out, uc.rooms)
	return out
}
