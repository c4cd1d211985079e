package calculator

import (
	"Runway_MCP/pkg/tools/calculator/handler"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools 把四则运算工具注册到给定的 MCP 服务上。
func RegisterTools(s *server.MCPServer) {
	h := handler.NewCalculatorHandler()

	s.AddTool(mcp.NewTool("add",
		mcp.WithDescription("Add two numbers."),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First operand.")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second operand.")),
	), h.HandleAdd)

	s.AddTool(mcp.NewTool("subtract",
		mcp.WithDescription("Subtract the second number from the first."),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First operand.")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second operand.")),
	), h.HandleSubtract)

	s.AddTool(mcp.NewTool("multiply",
		mcp.WithDescription("Multiply two numbers."),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First operand.")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second operand.")),
	), h.HandleMultiply)

	s.AddTool(mcp.NewTool("divide",
		mcp.WithDescription("Divide the first number by the second. Division by zero returns an error message."),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("Dividend.")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Divisor.")),
	), h.HandleDivide)

	s.AddTool(mcp.NewTool("calculate",
		mcp.WithDescription("Perform a basic arithmetic operation on two numbers."),
		mcp.WithString("operation", mcp.Required(), mcp.Description("Operation to perform."), mcp.Enum("add", "subtract", "multiply", "divide")),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First operand.")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second operand.")),
	), h.HandleCalculate)
}
