package app

import (
	"testing"
	"time"

	"chat_room_service/internal/chat/domain"
	"chat_room_service/pkg/logger"
	"chat_room_service/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRoomMessageRepo Mock RoomMessageRepository
type MockRoomMessageRepo struct {
	mock.Mock
}

func (m *MockRoomMessageRepo) Append(roomID string, msg domain.ChatMessage) error {
	args := m.Called(roomID, msg)
	return args.Error(0)
}

func (m *MockRoomMessageRepo) Messages(roomID string) ([]domain.ChatMessage, error) {
	args := m.Called(roomID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.ChatMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 1, 14, 30, 5, 0, time.UTC)
}

func TestMessageUseCase_Send(t *testing.T) {
	logger.SetNewNop() // 停用測試時的 log 輸出

	rooms := []domain.Room{{ID: "general", DisplayName: "General"}}

	t.Run("成功送出訊息", func(t *testing.T) {
		mockRepo := new(MockRoomMessageRepo)
		expected := domain.ChatMessage{User: "alice", Message: "hi", Timestamp: "14:30:05"}
		mockRepo.On("Append", "general", expected).Return(nil).Once()

		uc := NewMessageUseCase(mockRepo, rooms, fixedNow)
		err := uc.Send("general", "alice", "hi")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("空訊息被拒絕且不觸碰 repository", func(t *testing.T) {
		mockRepo := new(MockRoomMessageRepo)

		uc := NewMessageUseCase(mockRepo, rooms, fixedNow)
		err := uc.Send("general", "alice", "   ")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("缺用戶或房間被拒絕", func(t *testing.T) {
		mockRepo := new(MockRoomMessageRepo)
		uc := NewMessageUseCase(mockRepo, rooms, fixedNow)

		assert.ErrorIs(t, uc.Send("general", "", "hi"), domain.ErrEmptyUser)
		assert.ErrorIs(t, uc.Send("", "alice", "hi"), domain.ErrEmptyRoom)
	})

	t.Run("儲存失敗原樣上拋", func(t *testing.T) {
		mockRepo := new(MockRoomMessageRepo)
		mockRepo.On("Append", "general", mock.Anything).Return(storage.ErrIO).Once()

		uc := NewMessageUseCase(mockRepo, rooms, fixedNow)
		err := uc.Send("general", "alice", "hi")

		assert.ErrorIs(t, err, storage.ErrIO)
		mockRepo.AssertExpectations(t)
	})
}

func TestMessageUseCase_Messages(t *testing.T) {
	logger.SetNewNop()

	t.Run("返回房間訊息", func(t *testing.T) {
		mockRepo := new(MockRoomMessageRepo)
		msgs := []domain.ChatMessage{{User: "alice", Message: "hi", Timestamp: "14:30:05"}}
		mockRepo.On("Messages", "general").Return(msgs, nil).Once()

		uc := NewMessageUseCase(mockRepo, nil, fixedNow)
		got, err := uc.Messages("general")

		assert.NoError(t, err)
		assert.Equal(t, msgs, got)
	})

	t.Run("缺房間 id 被拒絕", func(t *testing.T) {
		mockRepo := new(MockRoomMessageRepo)
		uc := NewMessageUseCase(mockRepo, nil, fixedNow)

		_, err := uc.Messages("")
		assert.ErrorIs(t, err, domain.ErrEmptyRoom)
	})
}

func TestMessageUseCase_Rooms(t *testing.T) {
	logger.SetNewNop()

	rooms := []domain.Room{
		{ID: "general", DisplayName: "General"},
		{ID: "random", DisplayName: "Random"},
	}
	uc := NewMessageUseCase(new(MockRoomMessageRepo), rooms, fixedNow)

	got := uc.Rooms()
	assert.Equal(t, rooms, got)

	// 返回的是副本, 呼叫端改動不影響配置
	got[0].ID = "hacked"
	assert.Equal(t, "general", uc.Rooms()[0].ID)
}
