package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/tubeharvest/shipkit/internal/adapters/outbound/config"
	"github.com/tubeharvest/shipkit/internal/adapters/outbound/gitinfo"
	"github.com/tubeharvest/shipkit/internal/adapters/outbound/project"
	"github.com/tubeharvest/shipkit/internal/application"
)

// registerTools registers all shipkit MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("shipkit_validate",
			mcplib.WithDescription("Run the full pre-release checklist and return the grouped report as JSON"),
		),
		handleValidate(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("shipkit_release_status",
			mcplib.WithDescription("Returns git working-tree state and the built artifacts currently under the dist directory"),
		),
		handleReleaseStatus(projectPath),
	)
}

func newValidateService(projectPath string) (*application.ValidateService, error) {
	cfg, err := configAdapter.New().Load(projectPath)
	if err != nil {
		return nil, err
	}
	return application.NewValidateService(project.New(), cfg), nil
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc, err := newValidateService(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		return jsonResult(svc.Validate(projectPath))
	}
}

// releaseStatus is the shipkit_release_status payload.
type releaseStatus struct {
	GitRepo     bool     `json:"git_repo"`
	WorkingTree string   `json:"working_tree,omitempty"`
	Head        string   `json:"head,omitempty"`
	Wheels      []string `json:"wheels"`
	Sdists      []string `json:"sdists"`
}

func handleReleaseStatus(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := configAdapter.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		status := releaseStatus{Wheels: []string{}, Sdists: []string{}}

		insp := gitinfo.New()
		if insp.IsRepo(projectPath) {
			status.GitRepo = true
			if clean, err := insp.IsClean(projectPath); err == nil {
				status.WorkingTree = "dirty"
				if clean {
					status.WorkingTree = "clean"
				}
			}
			if head, err := insp.Head(projectPath); err == nil {
				status.Head = head
			}
		}

		distDir := filepath.Join(projectPath, cfg.DistDir)
		if wheels, err := filepath.Glob(filepath.Join(distDir, "*.whl")); err == nil {
			for _, w := range wheels {
				status.Wheels = append(status.Wheels, filepath.Base(w))
			}
		}
		if sdists, err := filepath.Glob(filepath.Join(distDir, "*.tar.gz")); err == nil {
			for _, sd := range sdists {
				status.Sdists = append(status.Sdists, filepath.Base(sd))
			}
		}

		return jsonResult(status)
	}
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("marshaling result: %v", err)), nil
	}
	return mcplib.NewToolResultText(string(data)), nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return mcplib.NewToolResultError(msg)
}
