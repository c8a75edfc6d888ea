package file

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/ood"
	"github.com/Sweet-and-Fizzy/mcp-ondemand/internal/server"
)

// fakeClient serves both transports with canned responses.
type fakeClient struct {
	lastMethod string
	lastPath   string
	lastRaw    []byte
	result     ood.Result
	rawStatus  int
	rawBody    []byte
}

func (f *fakeClient) Request(_ context.Context, method, path string, _ any) ood.Result {
	f.lastMethod = method
	f.lastPath = path
	return f.result
}

func (f *fakeClient) RequestRaw(_ context.Context, method, path string, body []byte) (int, []byte) {
	f.lastMethod = method
	f.lastPath = path
	f.lastRaw = body
	return f.rawStatus, f.rawBody
}

func newTestContext(t *testing.T, client ood.Client) *server.ServerContext {
	t.Helper()
	sc, err := server.NewServerContext(context.Background(),
		server.WithAPIClient(client),
		server.WithLogger(slog.New(slog.DiscardHandler)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandleListFiles(t *testing.T) {
	t.Run("renders a directory listing", func(t *testing.T) {
		client := &fakeClient{result: ood.Success(json.RawMessage(
			`[{"name":"data","directory":true},
			  {"name":"run.sh","directory":false,"size":512},
			  {"name":"notes.txt","directory":false}]`))}
		sc := newTestContext(t, client)

		result, err := handleListFiles(context.Background(), callRequest(map[string]interface{}{
			"path": "/home/alice",
		}), sc)
		require.NoError(t, err)

		out := textContent(t, result)
		assert.Equal(t, "/api/v1/files?path=%2Fhome%2Falice", client.lastPath)
		assert.Contains(t, out, "Files in /home/alice:")
		assert.Contains(t, out, "📁 data/")
		assert.Contains(t, out, "📄 run.sh (512 bytes)")
		assert.Contains(t, out, "📄 notes.txt")
		assert.NotContains(t, out, "notes.txt (")
	})

	t.Run("empty directory", func(t *testing.T) {
		client := &fakeClient{result: ood.Success(json.RawMessage(`[]`))}
		sc := newTestContext(t, client)

		result, err := handleListFiles(context.Background(), callRequest(map[string]interface{}{
			"path": "/scratch/empty",
		}), sc)
		require.NoError(t, err)
		assert.Equal(t, "No files found in '/scratch/empty'.", textContent(t, result))
	})

	t.Run("single object renders metadata", func(t *testing.T) {
		client := &fakeClient{result: ood.Success(json.RawMessage(
			`{"path":"/home/alice/run.sh","name":"run.sh","directory":false,"size":512,
			  "owner":"alice","modified_at":"2024-05-01T10:00:00Z"}`))}
		sc := newTestContext(t, client)

		result, err := handleListFiles(context.Background(), callRequest(map[string]interface{}{
			"path": "/home/alice/run.sh",
		}), sc)
		require.NoError(t, err)

		out := textContent(t, result)
		assert.Contains(t, out, "Path: /home/alice/run.sh")
		assert.Contains(t, out, "Type: file")
		assert.Contains(t, out, "Size: 512 bytes")
		assert.Contains(t, out, "Owner: alice")
		assert.Contains(t, out, "Modified: 2024-05-01T10:00:00Z")
	})

	t.Run("single directory object without size", func(t *testing.T) {
		client := &fakeClient{result: ood.Success(json.RawMessage(
			`{"name":"data","directory":true}`))}
		sc := newTestContext(t, client)

		result, err := handleListFiles(context.Background(), callRequest(map[string]interface{}{
			"path": "/home/alice/data",
		}), sc)
		require.NoError(t, err)

		out := textContent(t, result)
		assert.Contains(t, out, "Path: /home/alice/data")
		assert.Contains(t, out, "Type: directory")
		assert.Contains(t, out, "Size: N/A")
	})

	t.Run("api error", func(t *testing.T) {
		client := &fakeClient{result: ood.Failure("not_found", "no such path")}
		sc := newTestContext(t, client)

		result, err := handleListFiles(context.Background(), callRequest(map[string]interface{}{
			"path": "/nope",
		}), sc)
		require.NoError(t, err)
		assert.Equal(t, "Error: no such path", textContent(t, result))
	})
}

func TestHandleReadFile(t *testing.T) {
	call := func(t *testing.T, client *fakeClient) string {
		t.Helper()
		sc := newTestContext(t, client)
		result, err := handleReadFile(context.Background(), callRequest(map[string]interface{}{
			"path": "/home/alice/notes.txt",
		}), sc)
		require.NoError(t, err)
		return textContent(t, result)
	}

	t.Run("utf-8 content is returned verbatim", func(t *testing.T) {
		client := &fakeClient{rawStatus: 200, rawBody: []byte("hello\nworld\n")}
		out := call(t, client)
		assert.Equal(t, "hello\nworld\n", out)
		assert.Equal(t, "/api/v1/files/content?path=%2Fhome%2Falice%2Fnotes.txt", client.lastPath)
	})

	t.Run("binary content is reported, not returned", func(t *testing.T) {
		client := &fakeClient{rawStatus: 200, rawBody: []byte{0xff, 0xfe, 0x00, 0x01}}
		assert.Equal(t, "[Binary file, 4 bytes]", call(t, client))
	})

	t.Run("not found", func(t *testing.T) {
		client := &fakeClient{rawStatus: 404, rawBody: []byte(`{"error":"not_found"}`)}
		out := call(t, client)
		assert.Contains(t, out, "not found")
		assert.Contains(t, out, "/home/alice/notes.txt")
	})

	t.Run("forbidden", func(t *testing.T) {
		client := &fakeClient{rawStatus: 403}
		assert.Contains(t, call(t, client), "Permission denied")
	})

	t.Run("bad request with JSON message", func(t *testing.T) {
		client := &fakeClient{rawStatus: 400, rawBody: []byte(`{"error":"bad_request","message":"path is not a file"}`)}
		assert.Equal(t, "Error: path is not a file", call(t, client))
	})

	t.Run("bad request without JSON body", func(t *testing.T) {
		client := &fakeClient{rawStatus: 400, rawBody: []byte("nope")}
		assert.Equal(t, "Error: Bad request", call(t, client))
	})

	t.Run("unexpected status", func(t *testing.T) {
		client := &fakeClient{rawStatus: 502, rawBody: []byte("bad gateway")}
		assert.Equal(t, "Error reading file (status 502)", call(t, client))
	})

	t.Run("connection failure", func(t *testing.T) {
		client := &fakeClient{rawStatus: 0, rawBody: []byte("dial tcp: connection refused")}
		out := call(t, client)
		assert.Contains(t, out, "Error reading file:")
		assert.Contains(t, out, "connection refused")
	})
}

func TestHandleWriteFile(t *testing.T) {
	t.Run("reports bytes written", func(t *testing.T) {
		client := &fakeClient{rawStatus: 200, rawBody: []byte(`{"data":{}}`)}
		sc := newTestContext(t, client)

		result, err := handleWriteFile(context.Background(), callRequest(map[string]interface{}{
			"path":    "/home/alice/out.txt",
			"content": "hello",
		}), sc)
		require.NoError(t, err)

		assert.Equal(t, "PUT", client.lastMethod)
		assert.Equal(t, "/api/v1/files?path=%2Fhome%2Falice%2Fout.txt", client.lastPath)
		assert.Equal(t, []byte("hello"), client.lastRaw)
		assert.Equal(t, "Successfully wrote 5 bytes to /home/alice/out.txt", textContent(t, result))
	})

	t.Run("empty content truncates", func(t *testing.T) {
		client := &fakeClient{rawStatus: 200}
		sc := newTestContext(t, client)

		result, err := handleWriteFile(context.Background(), callRequest(map[string]interface{}{
			"path":    "/home/alice/out.txt",
			"content": "",
		}), sc)
		require.NoError(t, err)
		assert.Equal(t, "Successfully wrote 0 bytes to /home/alice/out.txt", textContent(t, result))
	})

	t.Run("forbidden", func(t *testing.T) {
		client := &fakeClient{rawStatus: 403}
		sc := newTestContext(t, client)

		result, err := handleWriteFile(context.Background(), callRequest(map[string]interface{}{
			"path":    "/etc/passwd",
			"content": "x",
		}), sc)
		require.NoError(t, err)
		assert.Equal(t, "Error: Permission denied: /etc/passwd", textContent(t, result))
	})

	t.Run("failure with JSON message", func(t *testing.T) {
		client := &fakeClient{rawStatus: 507, rawBody: []byte(`{"error":"quota","message":"quota exceeded"}`)}
		sc := newTestContext(t, client)

		result, err := handleWriteFile(context.Background(), callRequest(map[string]interface{}{
			"path":    "/home/alice/out.txt",
			"content": "x",
		}), sc)
		require.NoError(t, err)
		assert.Equal(t, "Error writing file: quota exceeded", textContent(t, result))
	})

	t.Run("failure without JSON message", func(t *testing.T) {
		client := &fakeClient{rawStatus: 500, rawBody: []byte("boom")}
		sc := newTestContext(t, client)

		result, err := handleWriteFile(context.Background(), callRequest(map[string]interface{}{
			"path":    "/home/alice/out.txt",
			"content": "x",
		}), sc)
		require.NoError(t, err)
		assert.Equal(t, "Error: Failed to write file (status 500)", textContent(t, result))
	})

	t.Run("missing content argument", func(t *testing.T) {
		client := &fakeClient{}
		sc := newTestContext(t, client)

		result, err := handleWriteFile(context.Background(), callRequest(map[string]interface{}{
			"path": "/home/alice/out.txt",
		}), sc)
		require.NoError(t, err)
		assert.Equal(t, "Error: content is required", textContent(t, result))
		assert.Empty(t, client.lastMethod)
	})
}

func TestHandleReadFileLogsPath(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := &fakeClient{rawStatus: 200, rawBody: []byte("hello")}
	sc, err := server.NewServerContext(context.Background(),
		server.WithAPIClient(client),
		server.WithLogger(logger),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })

	_, err = handleReadFile(context.Background(), callRequest(map[string]interface{}{
		"path": "/home/alice/notes.txt",
	}), sc)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "path=/home/alice/notes.txt")
}

func TestHandleDeleteFile(t *testing.T) {
	t.Run("success requires deleted true", func(t *testing.T) {
		client := &fakeClient{result: ood.Success(json.RawMessage(`{"deleted":true,"path":"/tmp/x"}`))}
		sc := newTestContext(t, client)

		result, err := handleDeleteFile(context.Background(), callRequest(map[string]interface{}{
			"path": "/tmp/x",
		}), sc)
		require.NoError(t, err)

		assert.Equal(t, "DELETE", client.lastMethod)
		assert.Equal(t, "/api/v1/files?path=%2Ftmp%2Fx", client.lastPath)
		assert.Equal(t, "Deleted: /tmp/x", textContent(t, result))
	})

	t.Run("deleted false is a failure", func(t *testing.T) {
		client := &fakeClient{result: ood.Success(json.RawMessage(`{"deleted":false}`))}
		sc := newTestContext(t, client)

		result, err := handleDeleteFile(context.Background(), callRequest(map[string]interface{}{
			"path": "/tmp/x",
		}), sc)
		require.NoError(t, err)
		assert.Contains(t, textContent(t, result), "Error")
	})

	t.Run("recursive flag only when true", func(t *testing.T) {
		client := &fakeClient{result: ood.Success(json.RawMessage(`{"deleted":true}`))}
		sc := newTestContext(t, client)

		_, err := handleDeleteFile(context.Background(), callRequest(map[string]interface{}{
			"path":      "/tmp/dir",
			"recursive": true,
		}), sc)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/files?path=%2Ftmp%2Fdir&recursive=true", client.lastPath)

		_, err = handleDeleteFile(context.Background(), callRequest(map[string]interface{}{
			"path":      "/tmp/dir",
			"recursive": false,
		}), sc)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/files?path=%2Ftmp%2Fdir", client.lastPath)
	})

	t.Run("api error", func(t *testing.T) {
		client := &fakeClient{result: ood.Failure("not_found", "no such file")}
		sc := newTestContext(t, client)

		result, err := handleDeleteFile(context.Background(), callRequest(map[string]interface{}{
			"path": "/tmp/x",
		}), sc)
		require.NoError(t, err)
		assert.Equal(t, "Error deleting file: no such file", textContent(t, result))
	})
}

func TestHandleCreateDirectory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := &fakeClient{result: ood.Success(json.RawMessage(`{}`))}
		sc := newTestContext(t, client)

		result, err := handleCreateDirectory(context.Background(), callRequest(map[string]interface{}{
			"path": "/home/alice/new dir",
		}), sc)
		require.NoError(t, err)

		assert.Equal(t, "POST", client.lastMethod)
		assert.Equal(t, "/api/v1/files?path=%2Fhome%2Falice%2Fnew+dir&type=directory", client.lastPath)
		assert.Equal(t, "Directory created: /home/alice/new dir", textContent(t, result))
	})

	t.Run("failure", func(t *testing.T) {
		client := &fakeClient{result: ood.Failure("exists", "directory already exists")}
		sc := newTestContext(t, client)

		result, err := handleCreateDirectory(context.Background(), callRequest(map[string]interface{}{
			"path": "/home/alice/data",
		}), sc)
		require.NoError(t, err)
		assert.Equal(t, "Error creating directory: directory already exists", textContent(t, result))
	})
}
