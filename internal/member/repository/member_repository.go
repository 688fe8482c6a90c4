package repository

import (
	"errors"
	"strings"
	"sync"
	"time"

	"chat_room_service/internal/member/domain"
	"chat_room_service/pkg/storage"
)

const usersDoc = "users"

var (
	// ErrMemberNotFound no member matches the query
	ErrMemberNotFound = errors.New("no member found with given criteria")
	// ErrUsernameTaken username already registered
	ErrUsernameTaken = errors.New("username already exists")
)

// MemberRepository definition get Member info
type MemberRepository interface {
	// Create 指派 next_id 後寫入新帳號, 用戶名重複時拒絕
	Create(username, hashedPassword string) (*domain.Member, error)
	// FindByUsername 大小寫不敏感查詢
	FindByUsername(username string) (*domain.Member, error)
}

type memberRepository struct {
	store storage.Store
	mu    sync.Mutex
	now   func() time.Time
}

// NewMemberRepository create a MemberRepository
func NewMemberRepository(store storage.Store, now func() time.Time) MemberRepository {
	if now == nil {
		now = time.Now
	}
	return &memberRepository{store: store, now: now}
}

// loadFile 讀整份 users.json, 不存在時返回空預設 {users: [], next_id: 1}
func (r *memberRepository) loadFile() (*domain.MemberFile, error) {
	file := &domain.MemberFile{Users: []domain.Member{}, NextID: 1}
	if err := r.store.Load(usersDoc, file); err != nil {
		return nil, err
	}
	return file, nil
}

func (r *memberRepository) Create(username, hashedPassword string) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.loadFile()
	if err != nil {
		return nil, err
	}

	for _, u := range file.Users {
		if strings.EqualFold(u.Username, username) {
			return nil, ErrUsernameTaken
		}
	}

	member := domain.Member{
		ID:        file.NextID,
		Username:  username,
		Password:  hashedPassword,
		CreatedAt: r.now().Format(domain.CreatedAtLayout),
	}
	file.Users = append(file.Users, member)
	file.NextID++

	if err := r.store.Save(usersDoc, file); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByUsername(username string) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.loadFile()
	if err != nil {
		return nil, err
	}

	for i := range file.Users {
		if strings.EqualFold(file.Users[i].Username, username) {
			member := file.Users[i]
			return &member, nil
		}
	}
	return nil, ErrMemberNotFound
}
