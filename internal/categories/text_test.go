package categories

import (
	"reflect"
	"testing"

	"github.com/ytget/yt-batch/internal/model"
)

func TestParseURLList(t *testing.T) {
	data := []byte("# comment\nhttps://a/1\n\nhttps://a/2\n")
	urls, err := ParseURLList(data)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	expected := []string{"https://a/1", "https://a/2"}
	if !reflect.DeepEqual(urls, expected) {
		t.Errorf("Expected %v, got %v", expected, urls)
	}
}

func TestParseURLList_TrimsWhitespace(t *testing.T) {
	urls, _ := ParseURLList([]byte("  https://a/1  \r\n\t# indented comment\n"))
	if !reflect.DeepEqual(urls, []string{"https://a/1"}) {
		t.Errorf("Expected trimmed url, got %v", urls)
	}
}

func TestParseText(t *testing.T) {
	data := []byte(`https://loose/1
# [Music] output_path=/media/music
https://m/1
# a plain comment
https://m/2

# [News]
https://n/1
# [Music]
https://m/3
`)
	list, err := newTestLoader().ParseText(data)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := list.Names(); !reflect.DeepEqual(got, []string{model.DefaultCategoryName, "Music", "News"}) {
		t.Fatalf("Unexpected categories %v", got)
	}

	def, _ := list.Get(model.DefaultCategoryName)
	if def.OutputPath != "./downloads" {
		t.Errorf("Expected Default output ./downloads, got %q", def.OutputPath)
	}
	if !reflect.DeepEqual(def.URLs, []string{"https://loose/1"}) {
		t.Errorf("Unexpected Default urls %v", def.URLs)
	}

	music, _ := list.Get("Music")
	if music.OutputPath != "/media/music" {
		t.Errorf("Expected inline output path, got %q", music.OutputPath)
	}
	if !reflect.DeepEqual(music.URLs, []string{"https://m/1", "https://m/2", "https://m/3"}) {
		t.Errorf("Unexpected Music urls %v", music.URLs)
	}

	news, _ := list.Get("News")
	if news.OutputPath != "./downloads/News" {
		t.Errorf("Expected derived output path, got %q", news.OutputPath)
	}
}

func TestParseText_NoHeaders(t *testing.T) {
	list, err := newTestLoader().ParseText([]byte("# comment\nhttps://a/1\n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(list) != 1 || list[0].Name != model.DefaultCategoryName {
		t.Fatalf("Expected single Default category, got %v", list.Names())
	}
	if list[0].OutputPath != "./downloads" {
		t.Errorf("Expected ./downloads, got %q", list[0].OutputPath)
	}
}

func TestParseText_Empty(t *testing.T) {
	list, err := newTestLoader().ParseText([]byte("# only a comment\n\n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Expected no categories, got %v", list.Names())
	}
}

func TestHasHeaders(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected bool
	}{
		{"header", "# [News]\nx\n", true},
		{"header with path", "#[News] output_path=./n\n", true},
		{"comments only", "# News\nx\n", false},
		{"empty brackets", "# []\n", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasHeaders([]byte(tt.data)); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
