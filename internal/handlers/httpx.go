package handlers

import (
    "log"
    "strings"

    "github.com/gofiber/fiber/v2"

    "github.com/Health-Universe/tool-creatinine-clearance/internal/models"
)

var problemBaseURL string

// SetProblemBaseURL задаёт базовый URL для поля type Problem Details.
// Пример: https://tool-creatinine-clearance.dev/problem
func SetProblemBaseURL(base string) {
    problemBaseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// jsonError — единый ответ об ошибке в формате RFC 7807 (application/problem+json)
// Для обратной совместимости добавляет поля success=false и error.
func jsonError(c *fiber.Ctx, status int, publicMsg string, err error) error {
    if err != nil {
        log.Printf("handler error: %v", err)
    }
    if publicMsg == "" {
        publicMsg = fiber.ErrInternalServerError.Message
    }
    pType := problemType(publicMsg, status)
    problem := fiber.Map{
        "type":     pType,
        "title":    publicMsg,
        "status":   status,
        "instance": c.OriginalURL(),
    }
    if err != nil {
        problem["detail"] = err.Error()
    }
    // backward-compat fields
    problem["success"] = false
    problem["error"] = publicMsg

    // c.JSON перезаписывает Content-Type, поэтому тип передаётся ему напрямую
    return c.Status(status).JSON(problem, "application/problem+json")
}

// validationError — ответ 422 с пополевым списком нарушений.
// Граничный слой отдаёт полный список, расчёт до него не доходит.
func validationError(c *fiber.Ctx, verr *models.ValidationError) error {
    problem := fiber.Map{
        "type":     problemType("данные пациента не прошли проверку", fiber.StatusUnprocessableEntity),
        "title":    "Данные пациента не прошли проверку",
        "status":   fiber.StatusUnprocessableEntity,
        "instance": c.OriginalURL(),
        "detail":   verr.Error(),
        "errors":   verr.Violations,
    }
    // backward-compat fields
    problem["success"] = false
    problem["error"] = "Данные пациента не прошли проверку"

    return c.Status(fiber.StatusUnprocessableEntity).JSON(problem, "application/problem+json")
}

// problemType возвращает осмысленный URI для поля "type" Problem Details.
// Базовая схема использует URN, чтобы не зависеть от внешнего домена.
func problemType(title string, status int) string {
    t := strings.ToLower(strings.TrimSpace(title))
    code := ""
    // Частные случаи по тексту сообщения → код
    switch {
    case strings.Contains(t, "не прошли проверку"):
        code = "validation-error"
    case strings.Contains(t, "неверные данные формы"):
        code = "invalid-form"
    case strings.Contains(t, "заполните обязательные поля"):
        code = "missing-required-fields"
    }
    if code == "" {
        // Общее соответствие по HTTP-статусу
        switch status {
        case fiber.StatusBadRequest:
            code = "invalid-form"
        case fiber.StatusUnprocessableEntity:
            code = "validation-error"
        case fiber.StatusNotFound:
            code = "not-found"
        case fiber.StatusTooManyRequests:
            code = "rate-limited"
        default:
            code = "internal-error"
        }
    }
    if problemBaseURL != "" && (strings.HasPrefix(problemBaseURL, "http://") || strings.HasPrefix(problemBaseURL, "https://")) {
        return problemBaseURL + "/" + code
    }
    return "urn:tool-creatinine-clearance:problem:" + code
}
