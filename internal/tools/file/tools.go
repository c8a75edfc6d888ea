package file

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/server"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/tools"
)

// RegisterFileTools registers the file management tools with the MCP server.
func RegisterFileTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listFilesTool := mcp.NewTool("list_files",
		mcp.WithDescription("List files and directories at a path on the HPC system, or show metadata for a single file."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Absolute path to list (e.g. /home/username)"),
		),
	)
	s.AddTool(listFilesTool, tools.WrapWithLogging("list_files", handleListFiles, sc))

	readFileTool := mcp.NewTool("read_file",
		mcp.WithDescription("Read the contents of a file on the HPC system. Binary files are reported, not returned."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Absolute path of the file to read"),
		),
	)
	s.AddTool(readFileTool, tools.WrapWithLogging("read_file", handleReadFile, sc))

	writeFileTool := mcp.NewTool("write_file",
		mcp.WithDescription("Write text content to a file on the HPC system, creating or overwriting it."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Absolute path of the file to write"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Content to write (may be empty to truncate the file)"),
		),
	)
	s.AddTool(writeFileTool, tools.WrapWithLogging("write_file", handleWriteFile, sc))

	deleteFileTool := mcp.NewTool("delete_file",
		mcp.WithDescription("Delete a file or directory on the HPC system."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Absolute path of the file or directory to delete"),
		),
		mcp.WithBoolean("recursive",
			mcp.Description("Delete directories recursively (default false)"),
		),
	)
	s.AddTool(deleteFileTool, tools.WrapWithLogging("delete_file", handleDeleteFile, sc))

	createDirectoryTool := mcp.NewTool("create_directory",
		mcp.WithDescription("Create a directory on the HPC system."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Absolute path of the directory to create"),
		),
	)
	s.AddTool(createDirectoryTool, tools.WrapWithLogging("create_directory", handleCreateDirectory, sc))

	return nil
}
