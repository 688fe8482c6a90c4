package app

import (
	"errors"
	"strings"
	"time"

	"chat_room_service/internal/member/domain"
	"chat_room_service/internal/member/repository"
	"chat_room_service/pkg/logger"
	token "chat_room_service/pkg/token"

	"go.uber.org/zap"
)

// ErrLoginFailed 帳號不存在與密碼錯誤統一回報, 不洩漏哪個錯
var ErrLoginFailed = errors.New("invalid username or password")

// MemberUseCase 這裡封裝了對外提供的帳號服務
type MemberUseCase interface {
	Register(username, password string) error
	// Login 驗證密碼後簽發 session JWT
	Login(username, password string) (string, error)
}

type memberUseCase struct {
	memberRepo   repository.MemberRepository
	sessionTTL   time.Duration
	hashPassword func(string) (string, error)
}

// NewMemberUseCase 建立一個新的 MemberUseCase, hash 函式可注入方便測試
func NewMemberUseCase(memberRepo repository.MemberRepository,
	sessionTTL time.Duration,
	hashPassword func(string) (string, error),
) MemberUseCase {
	return &memberUseCase{
		memberRepo:   memberRepo,
		sessionTTL:   sessionTTL,
		hashPassword: hashPassword,
	}
}

// Register create a new account
func (m *memberUseCase) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.ErrEmptyUsername
	}
	if password == "" {
		return domain.ErrEmptyPassword
	}

	pw, err := m.hashPassword(password)
	if err != nil {
		logger.Log.Error("password hash failed", zap.String("username", username), zap.Error(err))
		return err
	}

	if _, err := m.memberRepo.Create(username, pw); err != nil {
		return err
	}

	logger.Log.Info("member registered", zap.String("username", username))
	return nil
}

// Login check password and issue a session token
func (m *memberUseCase) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", domain.ErrEmptyUsername
	}
	if password == "" {
		return "", domain.ErrEmptyPassword
	}

	member, err := m.memberRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return "", ErrLoginFailed
		}
		return "", err
	}

	if err := member.IsPasswordMatch(password); err != nil {
		logger.Log.Debug("password mismatch", zap.String("username", username))
		return "", ErrLoginFailed
	}

	return token.GenerateJWT(member.Username, "chat_service", m.sessionTTL)
}
