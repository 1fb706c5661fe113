package handlers

import (
    "github.com/gofiber/fiber/v2"
)

// Страница «Калькулятор» — форма отправляет POST /calculate_crcl
func Index(c *fiber.Ctx) error {
    return c.Render("index", fiber.Map{
        "Title": "Клиренс креатинина (Кокрофт-Голт)",
    })
}
