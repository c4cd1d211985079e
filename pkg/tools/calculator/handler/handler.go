package handler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// CalculatorHandler handles the basic arithmetic tool requests.
type CalculatorHandler struct{}

// NewCalculatorHandler creates a new CalculatorHandler.
func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// Calculate applies one of the four basic operators to a and b.
// Division by zero is reported as a tool error, never raised.
func Calculate(operation string, a, b float64) (float64, error) {
	switch operation {
	case "add":
		return a + b, nil
	case "subtract":
		return a - b, nil
	case "multiply":
		return a * b, nil
	case "divide":
		if b == 0 {
			return 0, fmt.Errorf("division by zero is not allowed")
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("unsupported operation: %s", operation)
	}
}

// HandleAdd handles the add tool.
func (h *CalculatorHandler) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.handleOperation("add", req)
}

// HandleSubtract handles the subtract tool.
func (h *CalculatorHandler) HandleSubtract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.handleOperation("subtract", req)
}

// HandleMultiply handles the multiply tool.
func (h *CalculatorHandler) HandleMultiply(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.handleOperation("multiply", req)
}

// HandleDivide handles the divide tool.
func (h *CalculatorHandler) HandleDivide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.handleOperation("divide", req)
}

// HandleCalculate handles the combined calculate tool, where the operation is
// itself an argument.
func (h *CalculatorHandler) HandleCalculate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operation, err := req.RequireString("operation")
	if err != nil {
		return nil, err
	}
	return h.handleOperation(operation, req)
}

func (h *CalculatorHandler) handleOperation(operation string, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := req.RequireFloat("a")
	if err != nil {
		return nil, err
	}
	b, err := req.RequireFloat("b")
	if err != nil {
		return nil, err
	}

	result, err := Calculate(operation, a, b)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strconv.FormatFloat(result, 'f', -1, 64)), nil
}
