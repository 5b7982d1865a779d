package tools

import (
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/calculator"
)

// NewCircleAreaTool creates the circle area tool
func NewCircleAreaTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolCircleArea, "Compute the area of a circle (π·r²). Not recorded in history.",
		calculator.OpCircleArea, unary((*calculator.Calculator).CircleArea),
		numberParam{name: "radius", description: "Non-negative radius"},
	)
}

// NewCirclePerimeterTool creates the circle perimeter tool
func NewCirclePerimeterTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolCirclePerimeter, "Compute the perimeter of a circle (2π·r). Not recorded in history.",
		calculator.OpCirclePerimeter, unary((*calculator.Calculator).CirclePerimeter),
		numberParam{name: "radius", description: "Non-negative radius"},
	)
}

// NewRectanglePerimeterTool creates the rectangle perimeter tool
func NewRectanglePerimeterTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolRectanglePerimeter, "Compute the perimeter of a rectangle (2(w+h)). Not recorded in history.",
		calculator.OpRectanglePerimeter, binary((*calculator.Calculator).RectanglePerimeter),
		numberParam{name: "width", description: "Positive width"},
		numberParam{name: "height", description: "Positive height"},
	)
}

// NewSinTool creates the sine tool
func NewSinTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolSin, "Compute the sine of an angle in radians",
		calculator.OpSin, unary((*calculator.Calculator).Sin),
		numberParam{name: "angle", description: "Angle in radians"},
	)
}

// NewCosTool creates the cosine tool
func NewCosTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolCos, "Compute the cosine of an angle in radians",
		calculator.OpCos, unary((*calculator.Calculator).Cos),
		numberParam{name: "angle", description: "Angle in radians"},
	)
}

// NewDegreesToRadiansTool creates the degree conversion tool
func NewDegreesToRadiansTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolDegreesToRadians, "Convert an angle from degrees to radians",
		calculator.OpDegreesToRadians, unary((*calculator.Calculator).DegreesToRadians),
		numberParam{name: "degrees", description: "Angle in degrees"},
	)
}
