package handlers

import (
    "errors"

    "github.com/gofiber/fiber/v2"

    "github.com/Health-Universe/tool-creatinine-clearance/internal/crcl"
    "github.com/Health-Universe/tool-creatinine-clearance/internal/models"
)

// POST /calculate_crcl
// Принимает форму или JSON с полями PatientMeasurement,
// возвращает три строки результата: original_crcl, modified_crcl, crcl_range.
func CalculateCrCl(c *fiber.Ctx) error {
    var form models.PatientMeasurement
    if err := c.BodyParser(&form); err != nil {
        return jsonError(c, fiber.StatusBadRequest, "Неверные данные формы", err)
    }

    form.ApplyDefaults()
    if err := form.Validate(); err != nil {
        var verr *models.ValidationError
        if errors.As(err, &verr) {
            return validationError(c, verr)
        }
        return jsonError(c, fiber.StatusUnprocessableEntity, "Данные пациента не прошли проверку", err)
    }

    // Расчёт чистый и детерминированный, на проверенном входе не падает.
    result := crcl.Calculate(form)
    return c.JSON(result)
}
