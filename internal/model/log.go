// Package model defines the activity-log data types.
package model

import (
	"regexp"
	"strings"
	"time"
)

// DefaultColor is used when a category is created without a colour.
const DefaultColor = "#3b82f6"

// DefaultEntryType labels entries logged without an explicit type.
const DefaultEntryType = "Note"

// Category is a named, coloured grouping. Entries reference it by name.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Entry is a single timestamped log record.
type Entry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Notes     string    `json:"notes"`
	ImagePath string    `json:"imagePath"`
	VideoPath string    `json:"videoPath"`
	Timestamp time.Time `json:"timestamp"`
}

// State is a full snapshot of the log: the registry plus every entry.
// Its JSON form matches the saved state of the browser tracker.
type State struct {
	Categories []Category `json:"categories"`
	Entries    []Entry    `json:"entries"`
}

var colorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidColor reports whether s is a #RRGGBB hex colour.
func ValidColor(s string) bool {
	return colorRegex.MatchString(s)
}

// QuickTypes maps quick-add kinds to the entry type label they produce.
var QuickTypes = map[string]string{
	"note":    "Quick Note",
	"full":    "Quick Full Entry",
	"picture": "Quick Picture",
	"video":   "Quick Video",
}

// QuickTypeLabel returns the entry type for a quick-add kind.
// Unknown kinds fall back to a quick note.
func QuickTypeLabel(kind string) string {
	if label, ok := QuickTypes[strings.ToLower(kind)]; ok {
		return label
	}
	return QuickTypes["note"]
}

var videoExts = []string{".mp4", ".webm", ".mov"}

// SplitMedia routes a single media path to either the image or the video slot.
func SplitMedia(path string) (imagePath, videoPath string) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ""
	}
	lower := strings.ToLower(path)
	for _, ext := range videoExts {
		if strings.HasSuffix(lower, ext) {
			return "", path
		}
	}
	return path, ""
}
