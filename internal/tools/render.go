package tools

// Placeholder values shared by the tool renderings.
const (
	PlaceholderNA      = "N/A"
	PlaceholderUnknown = "unknown"
)

// OrDefault returns value, or fallback when value is empty.
func OrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
