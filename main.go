package main

import (
	api "todo-backend/cmd/api"
	authdomain "todo-backend/internal/auth/domain"
	authRepo "todo-backend/internal/auth/repository"
	authUsecase "todo-backend/internal/auth/usecase"
	tododomain "todo-backend/internal/todo/domain"
	todoRepo "todo-backend/internal/todo/repository"
	todoUsecase "todo-backend/internal/todo/usecase"
	"todo-backend/pkg/config"
	"todo-backend/pkg/database"
	"todo-backend/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatal("Failed to load config: ", err)
	}

	log := logger.New(cfg.LogLevel)

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(&authdomain.User{}, &tododomain.Todo{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	userRepository := authRepo.NewUserRepository(db)
	todoRepository := todoRepo.NewGormTodoRepository(db)

	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	todoUsecaseInstance := todoUsecase.NewTodoUsecase(todoRepository)

	handler := api.NewHandler(authUsecaseInstance, todoUsecaseInstance, cfg, log)

	log.Info("Server starting on port ", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
