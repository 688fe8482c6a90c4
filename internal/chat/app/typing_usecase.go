package app

import (
	"strings"

	"chat_room_service/internal/chat/domain"
	"chat_room_service/internal/chat/repository"
)

// TypingUseCase 處理房間的輸入中指示
type TypingUseCase interface {
	// Signal 標記或取消用戶在房間的輸入狀態
	Signal(roomID, user string, isTyping bool) error
	// ActiveTypers 返回時間窗內仍在輸入的其他用戶
	ActiveTypers(roomID, requestingUser string) ([]string, error)
}

type typingUseCase struct {
	typingRepo repository.TypingRepository
}

// NewTypingUseCase create a TypingUseCase
func NewTypingUseCase(typingRepo repository.TypingRepository) TypingUseCase {
	return &typingUseCase{typingRepo: typingRepo}
}

// Signal mark typing state
func (uc *typingUseCase) Signal(roomID, user string, isTyping bool) error {
	roomID = strings.TrimSpace(roomID)
	user = strings.TrimSpace(user)
	if roomID == "" {
		return domain.ErrEmptyRoom
	}
	if user == "" {
		return domain.ErrEmptyUser
	}

	uc.typingRepo.Signal(roomID, user, isTyping)
	return nil
}

// ActiveTypers list other users typing in the room
func (uc *typingUseCase) ActiveTypers(roomID, requestingUser string) ([]string, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return nil, domain.ErrEmptyRoom
	}

	return uc.typingRepo.ActiveTypers(roomID, strings.TrimSpace(requestingUser), domain.TypingWindow), nil
}
