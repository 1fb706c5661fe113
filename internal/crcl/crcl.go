package crcl

import (
    "fmt"
    "math"

    "github.com/Health-Universe/tool-creatinine-clearance/internal/models"
)

// Точные константы пересчёта единиц. Высота всегда делится на 2.54,
// умножение на округлённую обратную величину даёт другой результат.
const (
    KgPerLb  = 0.453592 // фунты → килограммы
    CmPerIn  = 2.54     // сантиметры → дюймы (делитель)
)

// Normalize приводит вес к килограммам и рост к дюймам
// согласно выбранной системе единиц.
func Normalize(m models.PatientMeasurement) (weightKg, heightIn float64) {
    if m.UnitSystem == models.UnitImperial {
        weightKg = m.Weight * KgPerLb
        heightIn = m.Height // рост уже в дюймах
    } else {
        weightKg = m.Weight // вес уже в килограммах
        heightIn = m.Height / CmPerIn
    }
    return weightKg, heightIn
}

// IdealBodyWeight — идеальная масса тела (IBW) по росту и полу.
// Нижней границы нет: при очень малом росте значение уходит в минус,
// исходный инструмент это не ограничивает (см. DESIGN.md).
func IdealBodyWeight(heightIn float64, sex models.Sex) float64 {
    if sex == models.SexMale {
        return 50 + 2.3*(heightIn-60)
    }
    return 45.5 + 2.3*(heightIn-60)
}

// AdjustedBodyWeight — скорректированная масса тела (ABW).
// Для пациентов без избыточного веса используется фактическая масса.
func AdjustedBodyWeight(weightKg, ibw float64) float64 {
    if weightKg > ibw {
        return ibw + 0.4*(weightKg-ibw)
    }
    return weightKg
}

// Calculate выполняет расчёт Кокрофта-Голта в трёх вариантах
// (фактический вес, ABW, IBW) и форматирует результат.
// Вход считается уже проверенным (models.Validate), побочных эффектов нет.
func Calculate(m models.PatientMeasurement) models.ClearanceResult {
    weightKg, heightIn := Normalize(m)

    ibw := IdealBodyWeight(heightIn, m.Sex)
    abw := AdjustedBodyWeight(weightKg, ibw)

    sexFactor := 1.0
    if m.Sex == models.SexFemale {
        sexFactor = 0.85
    }

    // Общий множитель формулы: (140 − возраст) × пол / (72 × креатинин)
    factor := float64(140-m.Age) * sexFactor / (72 * m.SerumCreatinine)

    originalCrCl := roundHalfEven(factor * weightKg)
    modifiedCrCl := roundHalfEven(factor * abw)
    crclUsingIBW := roundHalfEven(factor * ibw)

    rangeLow := min(crclUsingIBW, modifiedCrCl)
    rangeHigh := max(crclUsingIBW, modifiedCrCl)
    // Диапазон всегда с одним знаком после запятой, даже для целых значений.
    crclRange := fmt.Sprintf("%.1f-%.1f mL/min", float64(rangeLow), float64(rangeHigh))

    return models.ClearanceResult{
        OriginalCrCl: fmt.Sprintf("%d mL/min\nCreatinine clearance, original Cockcroft-Gault", originalCrCl),
        ModifiedCrCl: fmt.Sprintf(
            "%d mL/min\nCreatinine clearance modified for overweight patient, using adjusted body weight of %.1f kg (%.1f lbs).",
            modifiedCrCl, roundTo1(abw), roundTo1(abw/KgPerLb)),
        // Суффикс единиц дублируется — так делает исходный инструмент,
        // сохранено для побайтовой совместимости ответов.
        CrClRange: fmt.Sprintf("%s mL/min", crclRange),
    }
}

// roundHalfEven — банковское округление до целого, как round() в исходнике.
func roundHalfEven(x float64) int {
    return int(math.RoundToEven(x))
}

// roundTo1 — банковское округление до одного знака после запятой.
func roundTo1(x float64) float64 {
    return math.RoundToEven(x*10) / 10
}
