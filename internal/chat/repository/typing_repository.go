package repository

import (
	"sort"
	"sync"
	"time"
)

// TypingRepository definition ephemeral "who is typing" state per room
// 純記憶體狀態, 進程結束即消失, 不經過 storage
type TypingRepository interface {
	// Signal isTyping=true 時記錄 user→now, false 時移除; 兩者皆冪等
	Signal(roomID, user string, isTyping bool)
	// ActiveTypers 返回時間窗內仍在輸入的用戶, 排除 excludeUser
	// 過期項目在掃描時順手移除 (查詢帶有副作用)
	ActiveTypers(roomID, excludeUser string, window time.Duration) []string
}

type typingRepository struct {
	mu    sync.Mutex
	rooms map[string]map[string]time.Time
	now   func() time.Time
}

// NewTypingRepository create a TypingRepository, now 可注入方便測試
func NewTypingRepository(now func() time.Time) TypingRepository {
	if now == nil {
		now = time.Now
	}
	return &typingRepository{
		rooms: make(map[string]map[string]time.Time),
		now:   now,
	}
}

func (r *typingRepository) Signal(roomID, user string, isTyping bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		if !isTyping {
			return
		}
		room = make(map[string]time.Time)
		r.rooms[roomID] = room
	}

	if isTyping {
		room[user] = r.now()
	} else {
		delete(room, user)
	}
}

func (r *typingRepository) ActiveTypers(roomID, excludeUser string, window time.Duration) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := []string{}
	room, ok := r.rooms[roomID]
	if !ok {
		return users
	}

	now := r.now()
	for user, last := range room {
		// 惰性過期: 超出時間窗的項目直接清掉
		if now.Sub(last) >= window {
			delete(room, user)
			continue
		}
		// 用戶永遠看不到自己在輸入
		if user == excludeUser {
			continue
		}
		users = append(users, user)
	}

	// map 迭代順序不定, 排序讓顯示穩定
	sort.Strings(users)
	return users
}
