package models

import (
    "fmt"
    "strings"
)

// Система единиц измерения для веса и роста.
// Креатинин всегда в мг/дл, возраст всегда в годах.
type UnitSystem string

const (
    UnitMetric   UnitSystem = "metric"   // кг, см
    UnitImperial UnitSystem = "imperial" // фунты, дюймы
)

type Sex string

const (
    SexMale   Sex = "male"
    SexFemale Sex = "female"
)

// PatientMeasurement — входные данные пациента для расчёта CrCl.
// Принимается формой или JSON, поля совпадают по именам.
type PatientMeasurement struct {
    UnitSystem      UnitSystem `form:"unit_system" json:"unit_system"`
    Weight          float64    `form:"weight" json:"weight"`                     // кг (metric) или фунты (imperial)
    Height          float64    `form:"height" json:"height"`                     // см (metric) или дюймы (imperial)
    Age             int        `form:"age" json:"age"`                           // полных лет, минимум 18
    SerumCreatinine float64    `form:"serum_creatinine" json:"serum_creatinine"` // мг/дл
    Sex             Sex        `form:"sex" json:"sex"`
}

// ClearanceResult — три готовые строки результата.
// Значения формируются расчётом и не хранятся.
type ClearanceResult struct {
    OriginalCrCl string `json:"original_crcl"`
    ModifiedCrCl string `json:"modified_crcl"`
    CrClRange    string `json:"crcl_range"`
}

// FieldViolation — нарушение ограничения конкретного поля.
type FieldViolation struct {
    Field   string `json:"field"`
    Message string `json:"message"`
}

// ValidationError собирает все нарушения за один проход,
// чтобы клиент получил полный список, а не первое попавшееся.
type ValidationError struct {
    Violations []FieldViolation
}

func (e *ValidationError) Error() string {
    parts := make([]string, 0, len(e.Violations))
    for _, v := range e.Violations {
        parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
    }
    return "валидация не пройдена: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
    e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// ApplyDefaults приводит строковые поля к каноническому виду и
// подставляет систему единиц по умолчанию (metric), как в исходном инструменте.
func (p *PatientMeasurement) ApplyDefaults() {
    p.UnitSystem = UnitSystem(strings.ToLower(strings.TrimSpace(string(p.UnitSystem))))
    p.Sex = Sex(strings.ToLower(strings.TrimSpace(string(p.Sex))))
    if p.UnitSystem == "" {
        p.UnitSystem = UnitMetric
    }
}

// Validate проверяет граничные ограничения входных данных.
// Расчёт предполагает уже проверенные значения, поэтому все проверки здесь.
func (p PatientMeasurement) Validate() error {
    verr := &ValidationError{}

    if p.UnitSystem != UnitMetric && p.UnitSystem != UnitImperial {
        verr.add("unit_system", "допустимы только 'metric' или 'imperial'")
    }
    if p.Weight <= 0 {
        verr.add("weight", "вес должен быть строго положительным")
    }
    if p.Height <= 0 {
        verr.add("height", "рост должен быть строго положительным")
    }
    if p.Age < 18 {
        verr.add("age", "возраст должен быть не меньше 18 лет")
    }
    if p.SerumCreatinine <= 0 {
        verr.add("serum_creatinine", "креатинин сыворотки должен быть строго положительным")
    }
    if p.Sex != SexMale && p.Sex != SexFemale {
        verr.add("sex", "допустимы только 'male' или 'female'")
    }

    if len(verr.Violations) > 0 {
        return verr
    }
    return nil
}
