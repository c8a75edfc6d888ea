package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/logging"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/ood"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/server"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/tools"
)

// handleListFiles handles the list_files tool.
func handleListFiles(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	path, ok := tools.RequiredString(args, "path")
	if !ok {
		return mcp.NewToolResultText("Error: path is required"), nil
	}

	query := url.Values{"path": {path}}
	result := sc.APIClient().Request(ctx, http.MethodGet, "/api/v1/files?"+query.Encode(), nil)
	return mcp.NewToolResultText(renderFileList(result, path)), nil
}

// handleReadFile handles the read_file tool over the raw transport, since
// file content may not be valid JSON or valid UTF-8.
func handleReadFile(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	path, ok := tools.RequiredString(args, "path")
	if !ok {
		return mcp.NewToolResultText("Error: path is required"), nil
	}

	sc.Logger().Debug("reading file", logging.Path(path))

	query := url.Values{"path": {path}}
	status, body := sc.APIClient().RequestRaw(ctx, http.MethodGet, "/api/v1/files/content?"+query.Encode(), nil)
	return mcp.NewToolResultText(renderReadResult(status, body, path)), nil
}

// handleWriteFile handles the write_file tool. The content is sent as raw
// bytes so the remote side receives it unmodified.
func handleWriteFile(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	path, ok := tools.RequiredString(args, "path")
	if !ok {
		return mcp.NewToolResultText("Error: path is required"), nil
	}
	// Empty content is a valid write: it truncates the file.
	content, ok := tools.StringArg(args, "content")
	if !ok {
		return mcp.NewToolResultText("Error: content is required"), nil
	}

	sc.Logger().Debug("writing file", logging.Path(path))

	query := url.Values{"path": {path}}
	payload := []byte(content)
	status, body := sc.APIClient().RequestRaw(ctx, http.MethodPut, "/api/v1/files?"+query.Encode(), payload)
	return mcp.NewToolResultText(renderWriteResult(status, body, path, len(payload))), nil
}

// handleDeleteFile handles the delete_file tool.
func handleDeleteFile(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	path, ok := tools.RequiredString(args, "path")
	if !ok {
		return mcp.NewToolResultText("Error: path is required"), nil
	}

	sc.Logger().Debug("deleting file", logging.Path(path))

	query := url.Values{"path": {path}}
	if tools.OptionalBool(args, "recursive") {
		query.Set("recursive", "true")
	}
	result := sc.APIClient().Request(ctx, http.MethodDelete, "/api/v1/files?"+query.Encode(), nil)
	return mcp.NewToolResultText(renderDeleteResult(result, path)), nil
}

// handleCreateDirectory handles the create_directory tool.
func handleCreateDirectory(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	path, ok := tools.RequiredString(args, "path")
	if !ok {
		return mcp.NewToolResultText("Error: path is required"), nil
	}

	query := url.Values{"path": {path}, "type": {"directory"}}
	result := sc.APIClient().Request(ctx, http.MethodPost, "/api/v1/files?"+query.Encode(), nil)

	if result.OK() {
		return mcp.NewToolResultText("Directory created: " + path), nil
	}
	return mcp.NewToolResultText("Error creating directory: " + result.ErrorMessage("Unknown error")), nil
}

// renderFileList renders either a directory listing or, when the API returns
// a single object, one entry's metadata block.
func renderFileList(result ood.Result, path string) string {
	if !result.OK() {
		return "Error: " + result.ErrorMessage("Failed to list files")
	}

	data := bytes.TrimSpace(result.Data)
	if len(data) > 0 && data[0] == '{' {
		var info ood.FileInfo
		if err := json.Unmarshal(data, &info); err != nil {
			return "Error: " + err.Error()
		}
		return renderFileInfo(info, path)
	}

	var entries []ood.FileInfo
	if err := json.Unmarshal(data, &entries); err != nil {
		return "Error: " + err.Error()
	}
	if len(entries) == 0 {
		return fmt.Sprintf("No files found in '%s'.", path)
	}

	lines := []string{fmt.Sprintf("Files in %s:", path), ""}
	for _, e := range entries {
		lines = append(lines, formatEntry(e))
	}
	return strings.Join(lines, "\n")
}

func renderFileInfo(info ood.FileInfo, path string) string {
	kind := "file"
	if info.Directory {
		kind = "directory"
	}
	size := tools.PlaceholderNA
	if info.Size != nil {
		size = fmt.Sprintf("%d bytes", *info.Size)
	}
	return fmt.Sprintf(`Path: %s
Type: %s
Size: %s
Owner: %s
Modified: %s`,
		tools.OrDefault(info.Path, path),
		kind,
		size,
		tools.OrDefault(info.Owner, tools.PlaceholderNA),
		tools.OrDefault(info.ModifiedAt, tools.PlaceholderNA),
	)
}

func formatEntry(e ood.FileInfo) string {
	if e.Directory {
		return "📁 " + e.Name + "/"
	}
	if e.Size != nil {
		return fmt.Sprintf("📄 %s (%d bytes)", e.Name, *e.Size)
	}
	return "📄 " + e.Name
}

func renderReadResult(status int, body []byte, path string) string {
	switch status {
	case 0:
		return "Error reading file: " + string(body)
	case http.StatusOK:
		if utf8.Valid(body) {
			return string(body)
		}
		return fmt.Sprintf("[Binary file, %d bytes]", len(body))
	case http.StatusNotFound:
		return "Error: File not found: " + path
	case http.StatusForbidden:
		return "Error: Permission denied: " + path
	case http.StatusBadRequest:
		if msg := ood.ErrorMessageFromBody(body); msg != "" {
			return "Error: " + msg
		}
		return "Error: Bad request"
	default:
		return fmt.Sprintf("Error reading file (status %d)", status)
	}
}

func renderWriteResult(status int, body []byte, path string, size int) string {
	switch status {
	case 0:
		return "Error writing file: " + string(body)
	case http.StatusOK:
		return fmt.Sprintf("Successfully wrote %d bytes to %s", size, path)
	case http.StatusForbidden:
		return "Error: Permission denied: " + path
	default:
		if msg := ood.ErrorMessageFromBody(body); msg != "" {
			return "Error writing file: " + msg
		}
		return fmt.Sprintf("Error: Failed to write file (status %d)", status)
	}
}

func renderDeleteResult(result ood.Result, path string) string {
	if !result.OK() {
		return "Error deleting file: " + result.ErrorMessage("Unknown error")
	}

	var info ood.DeleteInfo
	if err := json.Unmarshal(result.Data, &info); err != nil {
		return "Error: " + err.Error()
	}
	if !info.Deleted {
		return "Error: Delete failed for " + path
	}
	return "Deleted: " + path
}
