package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"chat_room_service/internal/gallery/app"
	"chat_room_service/internal/gallery/domain"
	"chat_room_service/pkg"
	"chat_room_service/pkg/logger"
	"chat_room_service/pkg/middlewares"
	"chat_room_service/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GalleryHandler definition meme upload and query endpoints
type GalleryHandler struct {
	Usecase   app.GalleryUseCase
	UploadDir string
}

// NewGalleryHandler 建構 GalleryHandler
func NewGalleryHandler(usecase app.GalleryUseCase, uploadDir string) *GalleryHandler {
	return &GalleryHandler{
		Usecase:   usecase,
		UploadDir: uploadDir,
	}
}

func currentUser(c *fiber.Ctx) string {
	username, _ := c.Locals(middlewares.TokenUsername).(string)
	return username
}

func statusFromErr(err error) int {
	if errors.Is(err, domain.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, storage.ErrIO) {
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// Upload 接收上傳請求: 存檔、登錄圖庫條目、追加聊天訊息
func (h *GalleryHandler) Upload(c *fiber.Ctx) error {
	// 1. 取得上傳檔案
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "no file detected"})
	}

	// 2. 取得表單欄位, 房間與私訊對象恰好擇一
	roomID := c.FormValue("room")
	targetUser := c.FormValue("to")
	if (roomID == "") == (targetUser == "") {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "exactly one of room or to is required"})
	}

	tags := c.FormValue("tags")
	isPrivate := pkg.Contains([]string{"true", "on", "1"}, c.FormValue("private"))

	// 3. 以生成的檔名落地, 避免用戶檔名互相覆蓋
	fileID := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	if err := c.SaveFile(fileHeader, filepath.Join(h.UploadDir, fileID)); err != nil {
		logger.Log.Error("save uploaded file failed", zap.String("filename", fileID), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "save file failed"})
	}

	// 4. 登錄圖庫條目並追加聊天訊息
	uploader := currentUser(c)
	if roomID != "" {
		err = h.Usecase.UploadToRoom(uploader, roomID, fileID, tags, isPrivate)
	} else {
		err = h.Usecase.UploadToConversation(uploader, targetUser, fileID, tags, isPrivate)
	}
	if err != nil {
		return c.Status(statusFromErr(err)).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"filename": fileID,
	})
}

// Query 依標籤與語境過濾圖庫 (with= 代表私訊語境)
func (h *GalleryHandler) Query(c *fiber.Ctx) error {
	scope := domain.QueryScope{DirectPartner: c.Query("with")}

	memes, err := h.Usecase.Query(currentUser(c), c.Query("tags"), scope)
	if err != nil {
		return c.Status(statusFromErr(err)).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(fiber.Map{"memes": memes})
}
