package router

import (
	"chat_room_service/internal/member/api/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册帐号相关的路由 (公开, 不经过 session middleware)
// 必须先于受保护的路由注册, 否则会被 session middleware 拦截
func RegisterRoutes(r *fiber.App, h *handlers.MemberHandler) {
	r.Get("/login", h.LoginPage)
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
}
