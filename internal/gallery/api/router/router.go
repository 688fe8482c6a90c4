package router

import (
	"chat_room_service/internal/gallery/api/handlers"
	"chat_room_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册图库相关的路由 (全部需要 session)
func RegisterRoutes(r *fiber.App, h *handlers.GalleryHandler) {
	gallery := r.Group("/gallery", middlewares.SessionMiddleware())

	gallery.Post("/upload", h.Upload)
	gallery.Get("/", h.Query)
}
