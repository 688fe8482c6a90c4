package handlers

import (
	"errors"
	"net/http"

	"chat_room_service/internal/chat/app"
	"chat_room_service/internal/chat/domain"
	"chat_room_service/pkg/logger"
	"chat_room_service/pkg/middlewares"
	"chat_room_service/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ChatHandler definition chat polling endpoints
type ChatHandler struct {
	Message app.MessageUseCase
	Direct  app.DirectUseCase
	Typing  app.TypingUseCase
}

// NewChatHandler 建構 ChatHandler
func NewChatHandler(message app.MessageUseCase, direct app.DirectUseCase, typing app.TypingUseCase) *ChatHandler {
	return &ChatHandler{
		Message: message,
		Direct:  direct,
		Typing:  typing,
	}
}

// CurrentUser 從 session middleware 取得已認證的用戶名
func CurrentUser(c *fiber.Ctx) string {
	username, _ := c.Locals(middlewares.TokenUsername).(string)
	return username
}

// StatusFromErr 錯誤分類轉 HTTP 狀態碼: 輸入錯誤 400, 儲存失敗 500
func StatusFromErr(err error) int {
	if errors.Is(err, domain.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, storage.ErrIO) {
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

type sendReq struct {
	Room    string `json:"room"`
	Message string `json:"message"`
}

// Send 接收房間訊息
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var req sendReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "invalid request body"})
	}

	if err := h.Message.Send(req.Room, CurrentUser(c), req.Message); err != nil {
		return c.Status(StatusFromErr(err)).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "success"})
}

// Messages 返回房間全部訊息 (輪詢端點)
func (h *ChatHandler) Messages(c *fiber.Ctx) error {
	msgs, err := h.Message.Messages(c.Query("room"))
	if err != nil {
		logger.Log.Error("list room messages failed", zap.String("room", c.Query("room")), zap.Error(err))
		return c.Status(StatusFromErr(err)).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(msgs)
}

// Rooms 返回靜態配置的房間清單
func (h *ChatHandler) Rooms(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"rooms": h.Message.Rooms()})
}

type sendPrivateReq struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// SendPrivate 接收私訊
func (h *ChatHandler) SendPrivate(c *fiber.Ctx) error {
	var req sendPrivateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "invalid request body"})
	}

	if err := h.Direct.Send(CurrentUser(c), req.To, req.Message); err != nil {
		return c.Status(StatusFromErr(err)).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "success"})
}

// PrivateMessages 返回與指定用戶的完整對話 (輪詢端點)
func (h *ChatHandler) PrivateMessages(c *fiber.Ctx) error {
	msgs, err := h.Direct.Between(CurrentUser(c), c.Query("with"))
	if err != nil {
		return c.Status(StatusFromErr(err)).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(msgs)
}

type typingReq struct {
	Room   string `json:"room"`
	Typing bool   `json:"typing"`
}

// SignalTyping 標記或取消輸入中狀態
func (h *ChatHandler) SignalTyping(c *fiber.Ctx) error {
	var req typingReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "invalid request body"})
	}

	if err := h.Typing.Signal(req.Room, CurrentUser(c), req.Typing); err != nil {
		return c.Status(StatusFromErr(err)).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "success"})
}

// ActiveTypers 返回房間內仍在輸入的其他用戶 (輪詢端點)
func (h *ChatHandler) ActiveTypers(c *fiber.Ctx) error {
	typers, err := h.Typing.ActiveTypers(c.Query("room"), CurrentUser(c))
	if err != nil {
		return c.Status(StatusFromErr(err)).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(fiber.Map{"typing": typers})
}

// IndexPage 聊天主頁
func (h *ChatHandler) IndexPage(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{"Username": CurrentUser(c)})
}

// PrivatePage 私訊頁
func (h *ChatHandler) PrivatePage(c *fiber.Ctx) error {
	return c.Render("private", fiber.Map{"Username": CurrentUser(c)})
}
