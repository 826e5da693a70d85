package preview

import "fmt"

// Zone ID constants for mouse click detection. Uses bubblezone for click
// detection on sidebar entries.
const zoneSnippetPrefix = "preview-snippet:"

// snippetZoneID returns the zone ID for a sidebar entry.
func snippetZoneID(index int) string {
	return fmt.Sprintf("%s%d", zoneSnippetPrefix, index)
}
