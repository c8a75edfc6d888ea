package job

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/server"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/tools"
)

// RegisterJobTools registers the job management tools with the MCP server.
func RegisterJobTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listTool := mcp.NewTool("list_jobs",
		mcp.WithDescription("List all jobs for the current user on a specific cluster."),
		mcp.WithString("cluster_id",
			mcp.Required(),
			mcp.Description("The cluster ID to list jobs from"),
		),
	)
	s.AddTool(listTool, tools.WrapWithLogging("list_jobs", handleListJobs, sc))

	getTool := mcp.NewTool("get_job",
		mcp.WithDescription("Get details about a specific job."),
		mcp.WithString("cluster_id",
			mcp.Required(),
			mcp.Description("The cluster ID where the job is running"),
		),
		mcp.WithString("job_id",
			mcp.Required(),
			mcp.Description("The job ID"),
		),
	)
	s.AddTool(getTool, tools.WrapWithLogging("get_job", handleGetJob, sc))

	submitTool := mcp.NewTool("submit_job",
		mcp.WithDescription("Submit a new job to an HPC cluster."),
		mcp.WithString("cluster_id",
			mcp.Required(),
			mcp.Description("The cluster ID to submit the job to"),
		),
		mcp.WithString("script_content",
			mcp.Required(),
			mcp.Description("The bash script content (should start with #!/bin/bash)"),
		),
		mcp.WithString("job_name",
			mcp.Description("Name for the job (optional)"),
		),
		mcp.WithString("queue_name",
			mcp.Description("Queue/partition to submit to (optional)"),
		),
		mcp.WithNumber("wall_time",
			mcp.Description("Wall time limit in seconds (optional)"),
		),
		mcp.WithString("workdir",
			mcp.Description("Working directory for the job (optional)"),
		),
		mcp.WithString("accounting_id",
			mcp.Description("Account/project ID for billing (optional)"),
		),
	)
	s.AddTool(submitTool, tools.WrapWithLogging("submit_job", handleSubmitJob, sc))

	cancelTool := mcp.NewTool("cancel_job",
		mcp.WithDescription("Cancel a running or queued job."),
		mcp.WithString("cluster_id",
			mcp.Required(),
			mcp.Description("The cluster ID where the job is running"),
		),
		mcp.WithString("job_id",
			mcp.Required(),
			mcp.Description("The job ID to cancel"),
		),
	)
	s.AddTool(cancelTool, tools.WrapWithLogging("cancel_job", handleCancelJob, sc))

	return nil
}
