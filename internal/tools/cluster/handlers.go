package cluster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/ood"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/server"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/tools"
)

// handleListClusters handles the list_clusters tool.
func handleListClusters(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	result := sc.APIClient().Request(ctx, http.MethodGet, "/api/v1/clusters", nil)
	return mcp.NewToolResultText(renderClusterList(result)), nil
}

// handleGetCluster handles the get_cluster tool.
func handleGetCluster(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	clusterID, ok := tools.RequiredString(args, "cluster_id")
	if !ok {
		return mcp.NewToolResultText("Error: cluster_id is required"), nil
	}

	path := "/api/v1/clusters/" + url.PathEscape(clusterID)
	result := sc.APIClient().Request(ctx, http.MethodGet, path, nil)
	return mcp.NewToolResultText(renderClusterDetails(result)), nil
}

func renderClusterList(result ood.Result) string {
	if !result.OK() {
		return "Error: " + result.ErrorMessage("Unknown error")
	}

	var clusters []ood.Cluster
	if err := json.Unmarshal(result.Data, &clusters); err != nil {
		return "Error: " + err.Error()
	}
	if len(clusters) == 0 {
		return "No clusters available."
	}

	lines := []string{"Available HPC Clusters:", ""}
	for _, c := range clusters {
		lines = append(lines, fmt.Sprintf("- %s: %s", c.ID, tools.OrDefault(c.Title, c.ID)))
		lines = append(lines, "  Scheduler: "+tools.OrDefault(c.Adapter, tools.PlaceholderUnknown))
		if c.LoginHost != "" {
			lines = append(lines, "  Login host: "+c.LoginHost)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderClusterDetails(result ood.Result) string {
	if !result.OK() {
		return "Error: " + result.ErrorMessage("Cluster not found")
	}

	var c ood.Cluster
	if err := json.Unmarshal(result.Data, &c); err != nil {
		return "Error: " + err.Error()
	}

	return fmt.Sprintf(`Cluster: %s
Title: %s
Scheduler: %s
Login Host: %s`,
		c.ID,
		tools.OrDefault(c.Title, c.ID),
		tools.OrDefault(c.Adapter, tools.PlaceholderUnknown),
		tools.OrDefault(c.LoginHost, tools.PlaceholderNA),
	)
}
