package router

import (
	"chat_room_service/internal/chat/api/handlers"
	"chat_room_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册聊天相关的路由 (全部需要 session)
func RegisterRoutes(r *fiber.App, h *handlers.ChatHandler) {
	chat := r.Group("/", middlewares.SessionMiddleware())

	// pages
	chat.Get("/", h.IndexPage)
	chat.Get("/private", h.PrivatePage)

	// room chat
	chat.Post("/send", h.Send)
	chat.Get("/messages", h.Messages)
	chat.Get("/rooms", h.Rooms)

	// direct chat
	chat.Post("/send-private", h.SendPrivate)
	chat.Get("/messages-private", h.PrivateMessages)

	// typing indicator
	chat.Post("/typing", h.SignalTyping)
	chat.Get("/typing", h.ActiveTypers)
}
