package validate

import (
	"strings"
	"testing"

	"github.com/sendrec/resources/internal/catalog"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid", "My Video", ""},
		{"empty", "", "title is empty"},
		{"at limit", strings.Repeat("a", MaxTitleLength), ""},
		{"over limit", strings.Repeat("a", MaxTitleLength+1), "title must be 200 characters or fewer"},
	}
	for _, tt := range tests {
		if got := Title(tt.input); got != tt.want {
			t.Errorf("Title(%s [len=%d]) = %q, want %q", tt.name, len(tt.input), got, tt.want)
		}
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid", "Tips", ""},
		{"empty", "", "category is empty"},
		{"over limit", strings.Repeat("c", MaxCategoryLength+1), "category must be 50 characters or fewer"},
	}
	for _, tt := range tests {
		if got := Category(tt.input); got != tt.want {
			t.Errorf("Category(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestURLs(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) string
		input string
		ok    bool
	}{
		{"thumbnail absolute", ThumbnailURL, "https://img.youtube.com/vi/x/hqdefault.jpg", true},
		{"thumbnail relative", ThumbnailURL, "thumbs/x.jpg", false},
		{"thumbnail empty", ThumbnailURL, "", false},
		{"embed absolute", EmbedURL, "https://www.youtube.com/embed/x", true},
		{"embed malformed", EmbedURL, "not a url", false},
		{"embed empty", EmbedURL, "", false},
	}
	for _, tt := range tests {
		got := tt.check(tt.input)
		if (got == "") != tt.ok {
			t.Errorf("%s: got %q, want ok=%v", tt.name, got, tt.ok)
		}
	}
}

func TestCatalog_SampleIsClean(t *testing.T) {
	if issues := Catalog(catalog.SampleEntries()); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestCatalog_ReportsIssuesInOrder(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "a", Title: "A", Category: "Tips", ThumbnailURL: "https://x/a.jpg", EmbedURL: "https://x/embed/a"},
		{ID: "a", Title: "", Category: "Tips", ThumbnailURL: "https://x/b.jpg"},
	}

	issues := Catalog(entries)
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %v", len(issues), issues)
	}
	fields := []string{issues[0].Field, issues[1].Field, issues[2].Field}
	if strings.Join(fields, ",") != "id,title,embedUrl" {
		t.Errorf("unexpected fields %v", fields)
	}
	if issues[0].Message != "duplicates entry 0" || issues[0].Index != 1 {
		t.Errorf("unexpected duplicate issue %+v", issues[0])
	}
	if !strings.Contains(issues[2].String(), `entry 1 ("a"): embedUrl:`) {
		t.Errorf("unexpected issue string %q", issues[2].String())
	}
}
