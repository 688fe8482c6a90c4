package app

import (
	"strings"
	"time"

	chatapp "chat_room_service/internal/chat/app"
	chatdomain "chat_room_service/internal/chat/domain"
	"chat_room_service/internal/gallery/domain"
	"chat_room_service/internal/gallery/repository"
	"chat_room_service/pkg/logger"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// GalleryUseCase 處理圖庫條目的登錄與查詢
// 上傳是兩段非交易式落地: 先寫圖庫目錄, 再追加聊天訊息
// 第二段失敗只記 warn, 不回滾 (系統留在各自一致的半套狀態)
type GalleryUseCase interface {
	// UploadToRoom 登錄房間上傳, 並在房間日誌追加圖片訊息
	UploadToRoom(uploader, roomID, filename, tagsCSV string, isPrivate bool) error
	// UploadToConversation 登錄私訊上傳, 並在對話追加圖片訊息
	UploadToConversation(uploader, targetUser, filename, tagsCSV string, isPrivate bool) error
	// Query 依私密範圍與標籤過濾返回條目 (目錄插入順序)
	Query(requestingUser, tagFilter string, scope domain.QueryScope) ([]domain.Meme, error)
}

type galleryUseCase struct {
	memeRepo repository.MemeRepository
	chatUC   chatapp.MessageUseCase
	directUC chatapp.DirectUseCase
	now      func() time.Time
}

// NewGalleryUseCase create a GalleryUseCase, now 可注入方便測試
func NewGalleryUseCase(
	memeRepo repository.MemeRepository,
	chatUC chatapp.MessageUseCase,
	directUC chatapp.DirectUseCase,
	now func() time.Time,
) GalleryUseCase {
	if now == nil {
		now = time.Now
	}
	return &galleryUseCase{
		memeRepo: memeRepo,
		chatUC:   chatUC,
		directUC: directUC,
		now:      now,
	}
}

// UploadToRoom record a room upload
func (uc *galleryUseCase) UploadToRoom(uploader, roomID, filename, tagsCSV string, isPrivate bool) error {
	uploader = strings.TrimSpace(uploader)
	roomID = strings.TrimSpace(roomID)
	if err := validateUpload(uploader, filename); err != nil {
		return err
	}
	if roomID == "" {
		return domain.ErrEmptyScope
	}

	// 1. 寫入圖庫目錄
	if err := uc.memeRepo.Add(domain.Meme{
		Filename:   filename,
		UploadedBy: uploader,
		UploadedAt: uc.now().Format(domain.UploadedAtLayout),
		Tags:       domain.NormalizeTags(tagsCSV),
		IsPrivate:  isPrivate,
		RoomID:     roomID,
	}); err != nil {
		return err
	}

	// 2. 追加聊天訊息; 失敗不回滾圖庫條目
	if err := uc.chatUC.Send(roomID, uploader, chatdomain.EncodeImageToken(filename)); err != nil {
		logger.Log.Warn("gallery entry recorded but room message append failed",
			zap.String("room", roomID), zap.String("filename", filename), zap.Error(err))
	}
	return nil
}

// UploadToConversation record a direct-conversation upload
func (uc *galleryUseCase) UploadToConversation(uploader, targetUser, filename, tagsCSV string, isPrivate bool) error {
	uploader = strings.TrimSpace(uploader)
	targetUser = strings.TrimSpace(targetUser)
	if err := validateUpload(uploader, filename); err != nil {
		return err
	}
	if targetUser == "" {
		return domain.ErrEmptyScope
	}

	if err := uc.memeRepo.Add(domain.Meme{
		Filename:   filename,
		UploadedBy: uploader,
		UploadedAt: uc.now().Format(domain.UploadedAtLayout),
		Tags:       domain.NormalizeTags(tagsCSV),
		IsPrivate:  isPrivate,
		TargetUser: targetUser,
	}); err != nil {
		return err
	}

	if err := uc.directUC.Send(uploader, targetUser, chatdomain.EncodeImageToken(filename)); err != nil {
		logger.Log.Warn("gallery entry recorded but direct message append failed",
			zap.String("target", targetUser), zap.String("filename", filename), zap.Error(err))
	}
	return nil
}

// Query scan the catalogue with privacy then tag filters
func (uc *galleryUseCase) Query(requestingUser, tagFilter string, scope domain.QueryScope) ([]domain.Meme, error) {
	all, err := uc.memeRepo.All()
	if err != nil {
		return nil, err
	}

	filter := domain.NormalizeTags(tagFilter)

	// 全表線性掃描, 先私密過濾再標籤過濾
	return lo.Filter(all, func(m domain.Meme, _ int) bool {
		return m.VisibleTo(requestingUser, scope) && m.MatchesTags(filter)
	}), nil
}

func validateUpload(uploader, filename string) error {
	if uploader == "" {
		return domain.ErrEmptyUploader
	}
	if strings.TrimSpace(filename) == "" {
		return domain.ErrEmptyFilename
	}
	return nil
}
