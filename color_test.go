package main

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"Green", "#10b981", color.RGBA{16, 185, 129, 255}, false},
		{"Blue", "#3b82f6", color.RGBA{59, 130, 246, 255}, false},
		{"Red", "#ef4444", color.RGBA{239, 68, 68, 255}, false},
		{"Amber", "#f59e0b", color.RGBA{245, 158, 11, 255}, false},
		{"No Hash", "ffffff", color.RGBA{255, 255, 255, 255}, false},
		{"Upper Case", "#ABCDEF", color.RGBA{171, 205, 239, 255}, false},
		{"Too Short", "#fff", color.RGBA{}, true},
		{"Not Hex", "#zzzzzz", color.RGBA{}, true},
		{"Empty", "", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
