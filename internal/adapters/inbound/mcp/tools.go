package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/designcheck/designcheck/internal/adapters/outbound/discovery"
	"github.com/designcheck/designcheck/internal/application"
	"github.com/designcheck/designcheck/internal/domain"
	"github.com/designcheck/designcheck/internal/domain/fix"
)

// registerTools registers all designcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. designcheck_check
	s.AddTool(
		mcplib.NewTool("designcheck_check",
			mcplib.WithDescription("Run every scanner over the project and return all issues as JSON"),
		),
		handleCheck(projectPath),
	)

	// 2. designcheck_check_file
	s.AddTool(
		mcplib.NewTool("designcheck_check_file",
			mcplib.WithDescription("Check a single file and return its issues as JSON"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file to check, relative to the project root"),
			),
		),
		handleCheckFile(projectPath),
	)

	// 3. designcheck_fix
	s.AddTool(
		mcplib.NewTool("designcheck_fix",
			mcplib.WithDescription("Run one fixer over the project, or report planned changes with dry_run"),
			mcplib.WithString("fixer",
				mcplib.Required(),
				mcplib.Description("Fixer name: unit-zero, debug, equality, import-order or property-order"),
			),
			mcplib.WithBoolean("dry_run", mcplib.Description("Report planned changes without writing")),
		),
		handleFix(projectPath),
	)

	// 4. designcheck_rules
	s.AddTool(
		mcplib.NewTool("designcheck_rules",
			mcplib.WithDescription("List every rule id with its enforcing skill"),
		),
		handleRules,
	)
}

func newCheckService() (*application.CheckService, error) {
	registry, err := domain.LoadRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading rule registry: %w", err)
	}
	return application.NewCheckService(discovery.New(), registry), nil
}

func handleCheck(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc, err := newCheckService()
		if err != nil {
			return errorResult(err.Error()), nil
		}
		results, err := svc.Check(projectPath, nil)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		errs, warns := domain.CountSeverities(results)
		return jsonResult(map[string]any{
			"results":  results,
			"errors":   errs,
			"warnings": warns,
		})
	}
}

func handleCheckFile(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		svc, err := newCheckService()
		if err != nil {
			return errorResult(err.Error()), nil
		}
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectPath, file)
		}
		results, err := svc.Check(projectPath, []string{path})
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(results)
	}
}

func handleFix(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("fixer")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		f, ok := fix.ByName(name)
		if !ok {
			return errorResult(fmt.Sprintf("unknown fixer %q", name)), nil
		}
		dryRun, _ := request.GetArguments()["dry_run"].(bool)

		svc := application.NewFixService(discovery.New())
		report, err := svc.Run(f, []string{projectPath}, dryRun)
		if err != nil {
			return errorResult(fmt.Sprintf("fix failed: %v", err)), nil
		}
		return jsonResult(map[string]any{
			"fixer":         f.Name(),
			"dry_run":       dryRun,
			"files":         report.Files,
			"files_changed": report.FilesChanged,
			"fixes_applied": report.FixesApplied,
		})
	}
}

func handleRules(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	registry, err := domain.LoadRegistry()
	if err != nil {
		return errorResult(err.Error()), nil
	}
	rules := make(map[string]string)
	for _, r := range registry.Rules() {
		rules[r] = registry.Skill(r)
	}
	return jsonResult(rules)
}

// jsonResult marshals v as an indented JSON text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
