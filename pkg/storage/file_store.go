package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrIO definition disk read/write failure
var ErrIO = errors.New("storage io failure")

// Store definition the flat-file persistence boundary
// 所有持久化狀態都以整份 JSON 文檔讀寫, 不做部分更新
type Store interface {
	// Load 讀取文檔到 out。文件不存在視為正常(out 保持呼叫端給的空預設值)
	Load(name string, out any) error
	// Save 將 v 完整覆寫文檔
	Save(name string, v any) error
}

type fileStore struct {
	dir string
}

// NewFileStore create a Store backed by <dir>/<name>.json documents
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", ErrIO, err)
	}
	return &fileStore{dir: dir}, nil
}

// path 文檔名轉成實際路徑, 檔名不允許跳出資料目錄
func (s *fileStore) path(name string) string {
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	name = strings.ReplaceAll(name, "..", "_")
	return filepath.Join(s.dir, name+".json")
}

func (s *fileStore) Load(name string, out any) error {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		// 文件不存在是全新部署的正常狀態, 不是錯誤
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: read %s: %v", ErrIO, name, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrIO, name, err)
	}
	return nil
}

func (s *fileStore) Save(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrIO, name, err)
	}

	if err := os.WriteFile(s.path(name), raw, 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, name, err)
	}
	return nil
}
