package model

import (
	"strings"
	"testing"
)

func TestRunResultRecords(t *testing.T) {
	r := NewRunResult()
	r.RecordSuccess("News", "u1")
	r.RecordFailure("Music", "u2")
	r.RecordSuccess("News", "u3")
	r.RecordFile("News", DownloadedFile{URL: "u1", FilePath: "/tmp/a.mp4", Title: "A"})

	if r.Total() != 3 {
		t.Errorf("Expected total 3, got %d", r.Total())
	}
	if len(r.CategoryOrder) != 2 || r.CategoryOrder[0] != "News" || r.CategoryOrder[1] != "Music" {
		t.Errorf("Expected category order [News Music], got %v", r.CategoryOrder)
	}

	news := r.PerCategory["News"]
	if strings.Join(news.Successful, ",") != "u1,u3" {
		t.Errorf("Expected News successful [u1 u3], got %v", news.Successful)
	}
	if len(news.DownloadedFiles) != 1 {
		t.Errorf("Expected 1 News file, got %d", len(news.DownloadedFiles))
	}
	if len(r.PerCategory["Music"].Failed) != 1 {
		t.Errorf("Expected 1 Music failure, got %v", r.PerCategory["Music"].Failed)
	}
}

func TestRunResultFlatMode(t *testing.T) {
	r := NewRunResult()
	r.RecordSuccess("", "u1")
	r.RecordFailure("", "u2")

	if r.Categorized() {
		t.Error("Expected flat result to have no categories")
	}
	if len(r.PerCategory) != 0 {
		t.Errorf("Expected empty PerCategory, got %d entries", len(r.PerCategory))
	}
}

func TestVideoInfoDurationString(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "N/A"},
		{30, "0:30"},
		{90, "1:30"},
		{3661, "1:01:01"},
	}
	for _, tt := range tests {
		info := &VideoInfo{Duration: tt.seconds}
		if got := info.DurationString(); got != tt.expected {
			t.Errorf("DurationString(%v) = %s, expected %s", tt.seconds, got, tt.expected)
		}
	}
}

func TestVideoInfoSize(t *testing.T) {
	tests := []struct {
		name     string
		info     VideoInfo
		expected int64
	}{
		{"exact", VideoInfo{Filesize: 100, FilesizeApprox: 90}, 100},
		{"approximate", VideoInfo{FilesizeApprox: 90.6}, 90},
		{"unknown", VideoInfo{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Size(); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}
