package app

import (
	"testing"

	"chat_room_service/internal/chat/domain"
	"chat_room_service/pkg/logger"
	"chat_room_service/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDirectMessageRepo Mock DirectMessageRepository
type MockDirectMessageRepo struct {
	mock.Mock
}

func (m *MockDirectMessageRepo) Append(msg domain.DirectMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockDirectMessageRepo) Between(userA, userB string) ([]domain.DirectMessage, error) {
	args := m.Called(userA, userB)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.DirectMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestDirectUseCase_Send(t *testing.T) {
	logger.SetNewNop()

	t.Run("成功送出私訊, 帶時間與日期", func(t *testing.T) {
		mockRepo := new(MockDirectMessageRepo)
		expected := domain.DirectMessage{
			From:      "alice",
			To:        "bob",
			Message:   "hi",
			Timestamp: "14:30:05",
			Date:      "2025-03-01",
		}
		mockRepo.On("Append", expected).Return(nil).Once()

		uc := NewDirectUseCase(mockRepo, fixedNow)
		err := uc.Send("alice", "bob", "hi")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("缺欄位被拒絕", func(t *testing.T) {
		mockRepo := new(MockDirectMessageRepo)
		uc := NewDirectUseCase(mockRepo, fixedNow)

		assert.ErrorIs(t, uc.Send("", "bob", "hi"), domain.ErrEmptyUser)
		assert.ErrorIs(t, uc.Send("alice", "", "hi"), domain.ErrEmptyTarget)
		assert.ErrorIs(t, uc.Send("alice", "bob", ""), domain.ErrEmptyMessage)
		mockRepo.AssertNotCalled(t, "Append", mock.Anything)
	})

	t.Run("儲存失敗原樣上拋", func(t *testing.T) {
		mockRepo := new(MockDirectMessageRepo)
		mockRepo.On("Append", mock.Anything).Return(storage.ErrIO).Once()

		uc := NewDirectUseCase(mockRepo, fixedNow)
		assert.ErrorIs(t, uc.Send("alice", "bob", "hi"), storage.ErrIO)
	})
}

func TestDirectUseCase_Between(t *testing.T) {
	logger.SetNewNop()

	t.Run("返回對話內容", func(t *testing.T) {
		mockRepo := new(MockDirectMessageRepo)
		msgs := []domain.DirectMessage{{From: "alice", To: "bob", Message: "hi"}}
		mockRepo.On("Between", "bob", "alice").Return(msgs, nil).Once()

		uc := NewDirectUseCase(mockRepo, fixedNow)
		got, err := uc.Between("bob", "alice")

		assert.NoError(t, err)
		assert.Equal(t, msgs, got)
	})

	t.Run("缺對象被拒絕", func(t *testing.T) {
		uc := NewDirectUseCase(new(MockDirectMessageRepo), fixedNow)
		_, err := uc.Between("alice", "")
		assert.ErrorIs(t, err, domain.ErrEmptyTarget)
	})
}
