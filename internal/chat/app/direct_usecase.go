package app

import (
	"strings"
	"time"

	"chat_room_service/internal/chat/domain"
	"chat_room_service/internal/chat/repository"
	"chat_room_service/pkg/logger"

	"go.uber.org/zap"
)

// DirectUseCase 處理兩人私訊
type DirectUseCase interface {
	// Send 驗證輸入後追加一則私訊 (對話識別碼對稱, 誰發起都落到同一份文檔)
	Send(from, to, text string) error
	// Between 返回兩位用戶的完整對話
	Between(currentUser, otherUser string) ([]domain.DirectMessage, error)
}

type directUseCase struct {
	dmRepo repository.DirectMessageRepository
	now    func() time.Time
}

// NewDirectUseCase create a DirectUseCase, now 可注入方便測試
func NewDirectUseCase(dmRepo repository.DirectMessageRepository, now func() time.Time) DirectUseCase {
	if now == nil {
		now = time.Now
	}
	return &directUseCase{
		dmRepo: dmRepo,
		now:    now,
	}
}

// Send send a private message
func (uc *directUseCase) Send(from, to, text string) error {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" {
		return domain.ErrEmptyUser
	}
	if to == "" {
		return domain.ErrEmptyTarget
	}
	if strings.TrimSpace(text) == "" {
		return domain.ErrEmptyMessage
	}

	now := uc.now()
	msg := domain.DirectMessage{
		From:      from,
		To:        to,
		Message:   text,
		Timestamp: now.Format(domain.TimeLayout),
		Date:      now.Format(domain.DateLayout),
	}

	if err := uc.dmRepo.Append(msg); err != nil {
		logger.Log.Error("append direct message failed",
			zap.String("from", from), zap.String("to", to), zap.Error(err))
		return err
	}
	return nil
}

// Between list the conversation between two users
func (uc *directUseCase) Between(currentUser, otherUser string) ([]domain.DirectMessage, error) {
	currentUser = strings.TrimSpace(currentUser)
	otherUser = strings.TrimSpace(otherUser)
	if currentUser == "" {
		return nil, domain.ErrEmptyUser
	}
	if otherUser == "" {
		return nil, domain.ErrEmptyTarget
	}
	return uc.dmRepo.Between(currentUser, otherUser)
}
