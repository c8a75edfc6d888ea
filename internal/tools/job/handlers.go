package job

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/logging"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/ood"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/server"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/tools"
)

// handleListJobs handles the list_jobs tool.
func handleListJobs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	clusterID, ok := tools.RequiredString(args, "cluster_id")
	if !ok {
		return mcp.NewToolResultText("Error: cluster_id is required"), nil
	}

	sc.Logger().Debug("listing jobs", logging.Cluster(clusterID))

	query := url.Values{"cluster": {clusterID}}
	result := sc.APIClient().Request(ctx, http.MethodGet, "/api/v1/jobs?"+query.Encode(), nil)
	return mcp.NewToolResultText(renderJobList(result, clusterID)), nil
}

// handleGetJob handles the get_job tool.
func handleGetJob(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	clusterID, ok := tools.RequiredString(args, "cluster_id")
	if !ok {
		return mcp.NewToolResultText("Error: cluster_id is required"), nil
	}
	jobID, ok := tools.RequiredString(args, "job_id")
	if !ok {
		return mcp.NewToolResultText("Error: job_id is required"), nil
	}

	sc.Logger().Debug("fetching job", logging.Cluster(clusterID), logging.JobID(jobID))

	query := url.Values{"cluster": {clusterID}}
	path := "/api/v1/jobs/" + url.PathEscape(jobID) + "?" + query.Encode()
	result := sc.APIClient().Request(ctx, http.MethodGet, path, nil)
	return mcp.NewToolResultText(renderJobDetails(result, clusterID)), nil
}

// handleSubmitJob handles the submit_job tool.
func handleSubmitJob(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	clusterID, ok := tools.RequiredString(args, "cluster_id")
	if !ok {
		return mcp.NewToolResultText("Error: cluster_id is required"), nil
	}
	// Empty script content is sent as-is; its validity is the API's call.
	scriptContent, ok := tools.StringArg(args, "script_content")
	if !ok {
		return mcp.NewToolResultText("Error: script_content is required"), nil
	}

	payload := ood.SubmitJobRequest{
		Cluster: clusterID,
		Script: ood.JobScript{
			Content: scriptContent,
			Workdir: tools.OptionalString(args, "workdir"),
		},
		Options: ood.JobOptions{
			JobName:      tools.OptionalString(args, "job_name"),
			QueueName:    tools.OptionalString(args, "queue_name"),
			WallTime:     tools.OptionalInt(args, "wall_time"),
			AccountingID: tools.OptionalString(args, "accounting_id"),
		},
	}

	sc.Logger().Debug("submitting job", logging.Cluster(clusterID))

	result := sc.APIClient().Request(ctx, http.MethodPost, "/api/v1/jobs", payload)
	return mcp.NewToolResultText(renderSubmitResult(result, clusterID)), nil
}

// handleCancelJob handles the cancel_job tool.
func handleCancelJob(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	clusterID, ok := tools.RequiredString(args, "cluster_id")
	if !ok {
		return mcp.NewToolResultText("Error: cluster_id is required"), nil
	}
	jobID, ok := tools.RequiredString(args, "job_id")
	if !ok {
		return mcp.NewToolResultText("Error: job_id is required"), nil
	}

	sc.Logger().Debug("cancelling job", logging.Cluster(clusterID), logging.JobID(jobID))

	query := url.Values{"cluster": {clusterID}}
	path := "/api/v1/jobs/" + url.PathEscape(jobID) + "?" + query.Encode()
	result := sc.APIClient().Request(ctx, http.MethodDelete, path, nil)

	if result.OK() {
		return mcp.NewToolResultText(fmt.Sprintf("Job %s has been cancelled.", jobID)), nil
	}
	return mcp.NewToolResultText("Error cancelling job: " + result.ErrorMessage("Unknown error")), nil
}

func renderJobList(result ood.Result, clusterID string) string {
	if !result.OK() {
		return "Error: " + result.ErrorMessage("Failed to list jobs")
	}

	var jobs []ood.Job
	if err := json.Unmarshal(result.Data, &jobs); err != nil {
		return "Error: " + err.Error()
	}
	if len(jobs) == 0 {
		return fmt.Sprintf("No jobs found on cluster '%s'.", clusterID)
	}

	lines := []string{fmt.Sprintf("Jobs on %s:", clusterID), ""}
	for _, j := range jobs {
		lines = append(lines, "Job ID: "+j.JobID)
		lines = append(lines, "  Name: "+tools.OrDefault(j.JobName, tools.PlaceholderNA))
		lines = append(lines, "  Status: "+tools.OrDefault(j.Status, tools.PlaceholderUnknown))
		lines = append(lines, "  Queue: "+tools.OrDefault(j.QueueName, tools.PlaceholderNA))
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderJobDetails(result ood.Result, clusterID string) string {
	if !result.OK() {
		return "Error: " + result.ErrorMessage("Job not found")
	}

	var j ood.Job
	if err := json.Unmarshal(result.Data, &j); err != nil {
		return "Error: " + err.Error()
	}

	return fmt.Sprintf(`Job Details:
Job ID: %s
Cluster: %s
Name: %s
Status: %s
Owner: %s
Queue: %s
Account: %s
Submitted: %s
Started: %s
Wall Time: %s / %s seconds`,
		j.JobID,
		tools.OrDefault(j.Cluster, clusterID),
		tools.OrDefault(j.JobName, tools.PlaceholderNA),
		tools.OrDefault(j.Status, tools.PlaceholderUnknown),
		tools.OrDefault(j.JobOwner, tools.PlaceholderNA),
		tools.OrDefault(j.QueueName, tools.PlaceholderNA),
		tools.OrDefault(j.AccountingID, tools.PlaceholderNA),
		tools.OrDefault(j.SubmittedAt, tools.PlaceholderNA),
		tools.OrDefault(j.StartedAt, tools.PlaceholderNA),
		secondsOrNA(j.WallclockTime),
		secondsOrNA(j.WallclockLimit),
	)
}

func renderSubmitResult(result ood.Result, clusterID string) string {
	if !result.OK() {
		return "Error submitting job: " + result.ErrorMessage("Unknown error")
	}

	var j ood.Job
	if err := json.Unmarshal(result.Data, &j); err != nil {
		return "Error: " + err.Error()
	}

	return fmt.Sprintf(`Job submitted successfully!
Job ID: %s
Cluster: %s
Status: %s`,
		j.JobID,
		tools.OrDefault(j.Cluster, clusterID),
		tools.OrDefault(j.Status, "submitted"),
	)
}

func secondsOrNA(v *int64) string {
	if v == nil {
		return tools.PlaceholderNA
	}
	return strconv.FormatInt(*v, 10)
}
