package config

import "time"

// Chat definition chat_service YAML structure
type Chat struct {
	Port       string        `mapstructure:"port"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`

	Storage StorageConfig `mapstructure:"storage"`
	Rooms   []RoomConfig  `mapstructure:"rooms"`
}

// StorageConfig definition flat-file storage setting
type StorageConfig struct {
	DataDir   string `mapstructure:"data_dir"`   // JSON 文檔目錄
	UploadDir string `mapstructure:"upload_dir"` // 上傳圖片目錄
}

// RoomConfig definition a statically configured chat room
type RoomConfig struct {
	ID          string `mapstructure:"id"`
	DisplayName string `mapstructure:"display_name"`
}
