package main

import (
	"fmt"
	"log"
	"os"

	chathandlers "chat_room_service/internal/chat/api/handlers"
	chatrouter "chat_room_service/internal/chat/api/router"
	chatapp "chat_room_service/internal/chat/app"
	"chat_room_service/internal/chat/domain"
	chatrepo "chat_room_service/internal/chat/repository"
	galleryhandlers "chat_room_service/internal/gallery/api/handlers"
	galleryrouter "chat_room_service/internal/gallery/api/router"
	galleryapp "chat_room_service/internal/gallery/app"
	galleryrepo "chat_room_service/internal/gallery/repository"
	memberhandlers "chat_room_service/internal/member/api/handlers"
	memberrouter "chat_room_service/internal/member/api/router"
	memberapp "chat_room_service/internal/member/app"
	memberrepo "chat_room_service/internal/member/repository"
	"chat_room_service/pkg/config"
	"chat_room_service/pkg/encrypt"
	"chat_room_service/pkg/logger"
	"chat_room_service/pkg/storage"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.ChatService, config.EnvConfig.ChatServiceLogPath)
	cfg := config.LoadConfig[config.Chat](config.EnvConfig.ChatService, config.EnvConfig.ChatServiceYAMLPath)

	// 2. 建立 flat-file 儲存 (訊息, 圖庫, 帳號共用同一個資料目錄)
	store, err := storage.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		logger.Log.Fatal("create data dir failed", zap.String("dir", cfg.Storage.DataDir), zap.Error(err))
	}
	if err := os.MkdirAll(cfg.Storage.UploadDir, 0o755); err != nil {
		logger.Log.Fatal("create upload dir failed", zap.String("dir", cfg.Storage.UploadDir), zap.Error(err))
	}

	rooms := lo.Map(cfg.Rooms, func(r config.RoomConfig, _ int) domain.Room {
		return domain.Room{ID: r.ID, DisplayName: r.DisplayName}
	})

	// 3. 初始化 Repository
	roomMsgRepo := chatrepo.NewRoomMessageRepository(store)
	directRepo := chatrepo.NewDirectMessageRepository(store)
	typingRepo := chatrepo.NewTypingRepository(nil)
	memeRepo := galleryrepo.NewMemeRepository(store)
	memberRepo := memberrepo.NewMemberRepository(store, nil)

	// 4. 初始化 UseCases
	messageUC := chatapp.NewMessageUseCase(roomMsgRepo, rooms, nil)
	directUC := chatapp.NewDirectUseCase(directRepo, nil)
	typingUC := chatapp.NewTypingUseCase(typingRepo)
	galleryUC := galleryapp.NewGalleryUseCase(memeRepo, messageUC, directUC, nil)
	memberUC := memberapp.NewMemberUseCase(memberRepo, cfg.SessionTTL, encrypt.HashPassword)

	// 5. 啟動 Fiber
	engine := html.New("./web/templates", ".html")
	r := fiber.New(fiber.Config{Views: engine})

	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.ChatServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file, // 将日志输出到文件
	}))

	r.Static("/uploads", cfg.Storage.UploadDir)

	// 注册路由: 帐号路由公开, 必须先注册; 其余路由在 session middleware 之后
	memberrouter.RegisterRoutes(r, memberhandlers.NewMemberHandler(memberUC, cfg.SessionTTL))
	galleryrouter.RegisterRoutes(r, galleryhandlers.NewGalleryHandler(galleryUC, cfg.Storage.UploadDir))
	chatrouter.RegisterRoutes(r, chathandlers.NewChatHandler(messageUC, directUC, typingUC))

	// Listen
	port := ":" + cfg.Port
	log.Printf("Chat Service listening on %s", port)
	if err := r.Listen(port); err != nil {
		log.Fatalf("Failed to start Fiber: %v", err)
	}
}
