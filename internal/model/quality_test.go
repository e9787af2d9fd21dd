package model

import "testing"

func TestQualityFormatSelectorIsExhaustive(t *testing.T) {
	for _, q := range Qualities() {
		if _, ok := q.FormatSelector(); !ok {
			t.Errorf("Quality %s has no format selector", q)
		}
	}
	if _, ok := Quality("ultra").FormatSelector(); ok {
		t.Error("Expected unknown quality to have no selector")
	}
}

func TestQualityList(t *testing.T) {
	if got := QualityList(); got != "low, medium, high, best" {
		t.Errorf("Expected 'low, medium, high, best', got '%s'", got)
	}
}

func TestQualityFormatSelectorTable(t *testing.T) {
	tests := []struct {
		quality  Quality
		expected string
	}{
		{QualityLow, "worst[height>=480]/worst"},
		{QualityMedium, "bestvideo[height>=720]+bestaudio/best"},
		{QualityHigh, "bestvideo[height>=1080]+bestaudio/best"},
		{QualityBest, ""},
	}

	for _, tt := range tests {
		got, _ := tt.quality.FormatSelector()
		if got != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.quality, tt.expected, got)
		}
	}
}

func TestParseQuality(t *testing.T) {
	tests := []struct {
		input   string
		want    Quality
		wantErr bool
	}{
		{"low", QualityLow, false},
		{" Medium ", QualityMedium, false},
		{"HIGH", QualityHigh, false},
		{"best", QualityBest, false},
		{"720p", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseQuality(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQuality(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseQuality(%q) = %s, expected %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestQualityFragment(t *testing.T) {
	if !QualityBest.Fragment().IsEmpty() {
		t.Error("Expected best quality to leave the format untouched")
	}

	f := QualityHigh.Fragment()
	if f.Format == nil || *f.Format != FormatHigh {
		t.Errorf("Expected format %q, got %v", FormatHigh, f.Format)
	}
}
