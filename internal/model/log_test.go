package model

import "testing"

func TestValidColor(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"#ff0000", true},
		{"#A1b2C3", true},
		{"ff0000", false},
		{"#fff", false},
		{"#gg0000", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidColor(tt.in); got != tt.ok {
			t.Errorf("ValidColor(%q) = %v, want %v", tt.in, got, tt.ok)
		}
	}
}

func TestQuickTypeLabel(t *testing.T) {
	if got := QuickTypeLabel("picture"); got != "Quick Picture" {
		t.Errorf("expected Quick Picture, got %q", got)
	}
	if got := QuickTypeLabel("VIDEO"); got != "Quick Video" {
		t.Errorf("expected Quick Video, got %q", got)
	}
	if got := QuickTypeLabel("unknown"); got != "Quick Note" {
		t.Errorf("expected fallback Quick Note, got %q", got)
	}
}

func TestSplitMedia(t *testing.T) {
	tests := []struct {
		in, image, video string
	}{
		{"", "", ""},
		{"clip.MP4", "", "clip.MP4"},
		{"run.webm", "", "run.webm"},
		{"holiday.mov", "", "holiday.mov"},
		{"photo.jpg", "photo.jpg", ""},
		{"  https://example.com/a.png  ", "https://example.com/a.png", ""},
	}
	for _, tt := range tests {
		img, vid := SplitMedia(tt.in)
		if img != tt.image || vid != tt.video {
			t.Errorf("SplitMedia(%q) = (%q, %q), want (%q, %q)", tt.in, img, vid, tt.image, tt.video)
		}
	}
}
