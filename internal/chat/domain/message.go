package domain

import (
	"errors"
	"fmt"
	"strings"
)

// 訊息時間的存檔格式, 與既有前端輪詢相容
const (
	// TimeLayout wall-clock part of a message timestamp
	TimeLayout = "15:04:05"
	// DateLayout calendar part carried by direct messages
	DateLayout = "2006-01-02"
)

// ErrInvalidInput definition malformed request input, rejected before any mutation
var ErrInvalidInput = errors.New("invalid input")

// 具體的輸入錯誤, 都掛在 ErrInvalidInput 之下讓邊界層統一轉 400
var (
	ErrEmptyUser    = fmt.Errorf("%w: user is required", ErrInvalidInput)
	ErrEmptyMessage = fmt.Errorf("%w: message is required", ErrInvalidInput)
	ErrEmptyRoom    = fmt.Errorf("%w: room id is required", ErrInvalidInput)
	ErrEmptyTarget  = fmt.Errorf("%w: target user is required", ErrInvalidInput)
)

// MessageKind definition message content kind
type MessageKind string

const (
	// MessageKindText plain text message
	MessageKindText MessageKind = "text"
	// MessageKindImage message whose body carries an image token
	MessageKindImage MessageKind = "image"
)

// ChatMessage 一則聊天室訊息 (存檔格式 {"messages": [...]})
type ChatMessage struct {
	User      string `json:"user"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// RoomLog 單一聊天室的完整訊息文檔
type RoomLog struct {
	Messages []ChatMessage `json:"messages"`
}

// DirectMessage 一則私訊 (存檔格式為裸列表)
type DirectMessage struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
}

// Room definition a statically configured chat room
type Room struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// 圖片訊息把檔名編在訊息本文中, 讓純文字的渲染端也能顯示
// 格式固定為 [IMAGE:<fileId>], 編解碼只能經過下面這對函式
const (
	imageTokenPrefix = "[IMAGE:"
	imageTokenSuffix = "]"
)

// EncodeImageToken encode a stored file id into a message body
func EncodeImageToken(fileID string) string {
	return imageTokenPrefix + fileID + imageTokenSuffix
}

// DecodeImageToken extract the file id from an image message body
func DecodeImageToken(body string) (string, bool) {
	if !strings.HasPrefix(body, imageTokenPrefix) || !strings.HasSuffix(body, imageTokenSuffix) {
		return "", false
	}
	fileID := body[len(imageTokenPrefix) : len(body)-len(imageTokenSuffix)]
	if fileID == "" {
		return "", false
	}
	return fileID, true
}

// Kind report whether the message body is text or an image token
func (m ChatMessage) Kind() MessageKind {
	if _, ok := DecodeImageToken(m.Message); ok {
		return MessageKindImage
	}
	return MessageKindText
}

// Kind report whether the direct message body is text or an image token
func (m DirectMessage) Kind() MessageKind {
	if _, ok := DecodeImageToken(m.Message); ok {
		return MessageKindImage
	}
	return MessageKindText
}
