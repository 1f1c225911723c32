package content

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Softmaple, A Paper Typesetting Editor.", "softmaple-a-paper-typesetting-editor"},
		{"Velokit, A Modern Fullstack Starter Kit.", "velokit-a-modern-fullstack-starter-kit"},
		{"  Café Crème  ", "cafe-creme"},
		{"C++ / Go", "c-go"},
		{"---", ""},
	}

	for _, tt := range tests {
		if got := Slug(tt.title); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
