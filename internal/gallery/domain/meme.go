package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// UploadedAtLayout 圖庫條目的上傳時間存檔格式
const UploadedAtLayout = "2006-01-02 15:04:05"

// ErrInvalidInput definition malformed gallery input, rejected before any mutation
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrEmptyFilename = fmt.Errorf("%w: filename is required", ErrInvalidInput)
	ErrEmptyUploader = fmt.Errorf("%w: uploader is required", ErrInvalidInput)
	// ErrEmptyScope 條目必須屬於一個房間或一段私訊對話
	ErrEmptyScope = fmt.Errorf("%w: room id or target user is required", ErrInvalidInput)
)

// Meme 圖庫條目 (存檔格式 {"memes": [...]})
// RoomID 與 TargetUser 恰好一個有值, 對應上傳發生在房間還是私訊
type Meme struct {
	Filename   string   `json:"filename"`
	UploadedBy string   `json:"uploaded_by"`
	UploadedAt string   `json:"uploaded_at"`
	Tags       []string `json:"tags"`
	IsPrivate  bool     `json:"is_private"`
	RoomID     string   `json:"room_id,omitempty"`
	TargetUser string   `json:"target_user,omitempty"`
}

// Catalogue 整份圖庫文檔
type Catalogue struct {
	Memes []Meme `json:"memes"`
}

// QueryScope 查詢發生的語境
type QueryScope struct {
	// DirectPartner 非空代表在與該用戶的私訊語境中查詢
	DirectPartner string
}

// NormalizeTags 逗號分隔字串轉成小寫去空白去重的標籤集
func NormalizeTags(csv string) []string {
	tags := lo.Map(strings.Split(csv, ","), func(t string, _ int) string {
		return strings.ToLower(strings.TrimSpace(t))
	})
	tags = lo.Filter(tags, func(t string, _ int) bool { return t != "" })
	return lo.Uniq(tags)
}

// VisibleTo 私密條目只有上傳者本人可見, 或在私訊語境中
// 條目的 target user 是對話的另一方或請求者本人
func (m Meme) VisibleTo(requestingUser string, scope QueryScope) bool {
	if !m.IsPrivate {
		return true
	}
	if m.UploadedBy == requestingUser {
		return true
	}
	if scope.DirectPartner != "" && m.TargetUser != "" {
		return m.TargetUser == scope.DirectPartner || m.TargetUser == requestingUser
	}
	return false
}

// MatchesTags 空過濾器全部放行, 否則至少要有一個共同標籤
func (m Meme) MatchesTags(filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	return len(lo.Intersect(m.Tags, filter)) > 0
}
