package repository

import (
	"sync"

	"chat_room_service/internal/gallery/domain"
	"chat_room_service/pkg/storage"
)

// 整份圖庫共用一個文檔
const catalogueDoc = "memes"

// MemeRepository definition the tagged media catalogue
type MemeRepository interface {
	// Add 追加一筆條目並落地整份目錄
	Add(m domain.Meme) error
	// All 返回目錄全部條目 (插入順序)
	All() ([]domain.Meme, error)
}

// memeRepository 目錄常駐記憶體, 首次存取時從磁碟載入
// Add 與 All 互斥, 查詢端拿到的是快照副本
type memeRepository struct {
	store  storage.Store
	mu     sync.Mutex
	cat    *domain.Catalogue
	loaded bool
}

// NewMemeRepository create a MemeRepository
func NewMemeRepository(store storage.Store) MemeRepository {
	return &memeRepository{store: store}
}

// loadLocked 呼叫端必須持有鎖
func (r *memeRepository) loadLocked() error {
	if r.loaded {
		return nil
	}
	cat := &domain.Catalogue{Memes: []domain.Meme{}}
	if err := r.store.Load(catalogueDoc, cat); err != nil {
		return err
	}
	r.cat = cat
	r.loaded = true
	return nil
}

func (r *memeRepository) Add(m domain.Meme) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(); err != nil {
		return err
	}

	r.cat.Memes = append(r.cat.Memes, m)
	return r.store.Save(catalogueDoc, r.cat)
}

func (r *memeRepository) All() ([]domain.Meme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadLocked(); err != nil {
		return nil, err
	}

	out := make([]domain.Meme, len(r.cat.Memes))
	copy(out, r.cat.Memes)
	return out, nil
}
