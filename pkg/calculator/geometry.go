package calculator

import (
	"fmt"
	"math"
)

func validateNonNegative(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return validationf("%s must be a non-negative number, got %v", name, value)
	}
	return nil
}

// CircleArea returns π·r². It emits a diagnostic but does not record history.
func (c *Calculator) CircleArea(radius float64) (float64, error) {
	if err := validateNonNegative("radius", radius); err != nil {
		return 0, err
	}
	result := math.Pi * radius * radius
	c.notify(LevelInfo, OpCircleArea, result, fmt.Sprintf("circle area: π × %s² = %.4f", formatNumber(radius), result), radius)
	return result, nil
}

// CirclePerimeter returns 2π·r
func (c *Calculator) CirclePerimeter(radius float64) (float64, error) {
	if err := validateNonNegative("radius", radius); err != nil {
		return 0, err
	}
	result := 2 * math.Pi * radius
	c.notify(LevelInfo, OpCirclePerimeter, result, fmt.Sprintf("circle perimeter: 2π × %s = %.4f", formatNumber(radius), result), radius)
	return result, nil
}

// RectanglePerimeter returns 2(w+h). Both dimensions must be positive.
func (c *Calculator) RectanglePerimeter(width, height float64) (float64, error) {
	if err := validateFinite(width, height); err != nil {
		return 0, err
	}
	if width <= 0 || height <= 0 {
		return 0, validationf("dimensions must be positive, got %v x %v", width, height)
	}
	result := 2 * (width + height)
	c.notify(LevelInfo, OpRectanglePerimeter, result,
		fmt.Sprintf("rectangle perimeter: 2 × (%s + %s) = %s", formatNumber(width), formatNumber(height), formatNumber(result)),
		width, height)
	return result, nil
}

// Sin returns the sine of an angle in radians
func (c *Calculator) Sin(angle float64) (float64, error) {
	if err := validateFinite(angle); err != nil {
		return 0, err
	}
	result := math.Sin(angle)
	c.notify(LevelInfo, OpSin, result, fmt.Sprintf("sin(%s) = %.6f", formatNumber(angle), result), angle)
	return result, nil
}

// Cos returns the cosine of an angle in radians
func (c *Calculator) Cos(angle float64) (float64, error) {
	if err := validateFinite(angle); err != nil {
		return 0, err
	}
	result := math.Cos(angle)
	c.notify(LevelInfo, OpCos, result, fmt.Sprintf("cos(%s) = %.6f", formatNumber(angle), result), angle)
	return result, nil
}

// DegreesToRadians converts an angle from degrees to radians
func (c *Calculator) DegreesToRadians(degrees float64) (float64, error) {
	if err := validateFinite(degrees); err != nil {
		return 0, err
	}
	result := degrees * (math.Pi / 180)
	c.notify(LevelInfo, OpDegreesToRadians, result, fmt.Sprintf("%s° → %.6f rad", formatNumber(degrees), result), degrees)
	return result, nil
}
