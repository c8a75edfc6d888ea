package tools

// Argument extraction helpers. MCP arguments arrive as map[string]any with
// JSON numbers decoded as float64; these helpers keep the per-tool type
// assertions in one place.

// RequiredString returns the named argument when it is a non-empty string.
func RequiredString(args map[string]any, name string) (string, bool) {
	v, ok := args[name].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// StringArg returns the named argument when it is a string, empty included.
// Used for arguments where the empty string is meaningful, like file content.
func StringArg(args map[string]any, name string) (string, bool) {
	v, ok := args[name].(string)
	return v, ok
}

// OptionalString returns the named string argument or "".
func OptionalString(args map[string]any, name string) string {
	v, _ := args[name].(string)
	return v
}

// OptionalInt returns the named numeric argument truncated to int64, or 0.
func OptionalInt(args map[string]any, name string) int64 {
	v, _ := args[name].(float64)
	return int64(v)
}

// OptionalBool returns the named boolean argument, or false.
func OptionalBool(args map[string]any, name string) bool {
	v, _ := args[name].(bool)
	return v
}
