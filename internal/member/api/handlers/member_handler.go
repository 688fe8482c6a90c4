package handlers

import (
	"errors"
	"net/http"
	"time"

	"chat_room_service/internal/member/app"
	"chat_room_service/internal/member/domain"
	"chat_room_service/internal/member/repository"
	"chat_room_service/pkg/encrypt"
	"chat_room_service/pkg/middlewares"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MemberHandler definition account endpoints and pages
type MemberHandler struct {
	Usecase    app.MemberUseCase
	SessionTTL time.Duration
	validate   *validator.Validate
}

// NewMemberHandler 建構 MemberHandler
func NewMemberHandler(usecase app.MemberUseCase, sessionTTL time.Duration) *MemberHandler {
	return &MemberHandler{
		Usecase:    usecase,
		SessionTTL: sessionTTL,
		validate:   validator.New(),
	}
}

type credentialsReq struct {
	Username string `json:"username" validate:"required,min=2,max=32"`
	Password string `json:"password" validate:"required,min=4"`
}

// Register 註冊新帳號
func (h *MemberHandler) Register(c *fiber.Ctx) error {
	var req credentialsReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	if err := h.Usecase.Register(req.Username, req.Password); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			status = http.StatusConflict
		case errors.Is(err, encrypt.ErrWeakPassword), errors.Is(err, domain.ErrInvalidInput):
			status = http.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "success"})
}

// Login 登入並設置 session cookie
func (h *MemberHandler) Login(c *fiber.Ctx) error {
	var req credentialsReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "invalid request body"})
	}

	token, err := h.Usecase.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, app.ErrLoginFailed) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middlewares.CookieToken,
		Value:    token,
		Expires:  time.Now().Add(h.SessionTTL),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"status": "success"})
}

// Logout 清除 session cookie
func (h *MemberHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middlewares.CookieToken,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"status": "success"})
}

// LoginPage 登入頁
func (h *MemberHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}
