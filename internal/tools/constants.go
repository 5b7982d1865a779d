package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "calc."

// Tool names
const (
	ToolAdd                = ToolPrefix + "add"
	ToolSubtract           = ToolPrefix + "subtract"
	ToolMultiply           = ToolPrefix + "multiply"
	ToolDivide             = ToolPrefix + "divide"
	ToolPower              = ToolPrefix + "power"
	ToolFactorial          = ToolPrefix + "factorial"
	ToolSqrt               = ToolPrefix + "sqrt"
	ToolCircleArea         = ToolPrefix + "circle_area"
	ToolCirclePerimeter    = ToolPrefix + "circle_perimeter"
	ToolRectanglePerimeter = ToolPrefix + "rectangle_perimeter"
	ToolSin                = ToolPrefix + "sin"
	ToolCos                = ToolPrefix + "cos"
	ToolDegreesToRadians   = ToolPrefix + "degrees_to_radians"
	ToolMean               = ToolPrefix + "mean"
	ToolMedian             = ToolPrefix + "median"
	ToolMode               = ToolPrefix + "mode"
	ToolPercentage         = ToolPrefix + "percentage"
	ToolCompoundInterest   = ToolPrefix + "compound_interest"
	ToolSimpleInterest     = ToolPrefix + "simple_interest"
	ToolGetHistory         = ToolPrefix + "get_history"
	ToolClearHistory       = ToolPrefix + "clear_history"
	ToolSetPrecision       = ToolPrefix + "set_precision"
)
