package cluster

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/server"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/tools"
)

// RegisterClusterTools registers the cluster management tools with the MCP server.
func RegisterClusterTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listTool := mcp.NewTool("list_clusters",
		mcp.WithDescription("List all available HPC clusters. Returns cluster IDs, names, scheduler types, and login hosts."),
	)
	s.AddTool(listTool, tools.WrapWithLogging("list_clusters", handleListClusters, sc))

	getTool := mcp.NewTool("get_cluster",
		mcp.WithDescription("Get details about a specific HPC cluster."),
		mcp.WithString("cluster_id",
			mcp.Required(),
			mcp.Description("The cluster ID (e.g., 'owens', 'pitzer')"),
		),
	)
	s.AddTool(getTool, tools.WrapWithLogging("get_cluster", handleGetCluster, sc))

	return nil
}
