package domain

import (
	"errors"
	"fmt"

	"chat_room_service/pkg/encrypt"
)

// CreatedAtLayout 帳號建立時間的存檔格式
const CreatedAtLayout = "2006-01-02 15:04:05"

// ErrInvalidInput definition malformed account input
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrEmptyUsername = fmt.Errorf("%w: username is required", ErrInvalidInput)
	ErrEmptyPassword = fmt.Errorf("%w: password is required", ErrInvalidInput)
)

// Member 用來表示使用者 (存檔在 users.json)
type Member struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"` // bcrypt hash
	CreatedAt string `json:"created_at"`
}

// MemberFile users.json 文檔結構
type MemberFile struct {
	Users  []Member `json:"users"`
	NextID int      `json:"next_id"`
}

// IsPasswordMatch 密碼驗證
func (m *Member) IsPasswordMatch(inputPwd string) error {
	return encrypt.CheckPassword(m.Password, inputPwd)
}
