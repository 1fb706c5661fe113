package main

import (
    "log"
    "time"

    "github.com/Health-Universe/tool-creatinine-clearance/internal/config"
    "github.com/Health-Universe/tool-creatinine-clearance/internal/handlers"

    "github.com/gofiber/fiber/v2"
    "github.com/gofiber/fiber/v2/middleware/compress"
    "github.com/gofiber/fiber/v2/middleware/cors"
    "github.com/gofiber/fiber/v2/middleware/etag"
    "github.com/gofiber/fiber/v2/middleware/helmet"
    "github.com/gofiber/fiber/v2/middleware/limiter"
    "github.com/gofiber/fiber/v2/middleware/logger"
    "github.com/gofiber/fiber/v2/middleware/recover"
    "github.com/gofiber/template/html/v2"
)

func main() {
    // Загрузка конфигурации
    cfg := config.LoadConfig()

    // Базовый URL для поля type в ответах об ошибках
    handlers.SetProblemBaseURL(cfg.App.ProblemBaseURL)

    // Инициализация шаблонов
    engine := html.New(cfg.Server.TemplatePath, ".html")

    // Создание приложения Fiber
    app := fiber.New(fiber.Config{
        Views:       engine,
        AppName:     cfg.App.Name + " " + cfg.App.Version,
        ViewsLayout: "layouts/base",
    })

    // -------------------------------
    // Middleware: безопасность и логика
    // -------------------------------

    app.Use(recover.New()) // Перехватывает паники, возвращает 500 вместо краша
    app.Use(helmet.New())  // Добавляет HTTP security-заголовки
    app.Use(cors.New(cors.Config{ // Исходный инструмент открыт для любых источников
        AllowOrigins:     cfg.CORS.AllowOrigins,
        AllowCredentials: cfg.CORS.AllowCredentials,
    }))
    app.Use(compress.New()) // Сжимает ответы gzip/br
    app.Use(logger.New())   // Логи запросов
    app.Use(limiter.New(limiter.Config{
        Max:        cfg.Limiter.Max,
        Expiration: time.Duration(cfg.Limiter.ExpirationSeconds) * time.Second,
        LimitReached: func(c *fiber.Ctx) error {
            return c.Status(fiber.StatusTooManyRequests).SendString("Слишком много запросов. Попробуйте позже.")
        },
    }))
    app.Use(etag.New()) // Ускоряет GET-запросы через кэширование по ETag

    // -------------------------------
    // Статика и маршруты
    // -------------------------------
    app.Static("/static", cfg.Server.StaticPath)

    setupRoutes(app)

    log.Printf("🚀 Сервер запущен на http://localhost%s", cfg.Server.Port)
    log.Printf("🧮 Калькулятор: http://localhost%s/", cfg.Server.Port)

    log.Fatal(app.Listen(cfg.Server.Port))
}

// setupRoutes — маршруты приложения
func setupRoutes(app *fiber.App) {
    // страница калькулятора
    app.Get("/", handlers.Index)

    // расчёт клиренса креатинина
    app.Post("/calculate_crcl", handlers.CalculateCrCl)
}
