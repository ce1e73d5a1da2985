package blogservice

import (
	"strings"
	"testing"

	"github.com/ayumukasuga/bloglist/internal/common"
)

func TestValidateTitle(t *testing.T) {
	testCases := []struct {
		name  string
		title string
		valid bool
	}{
		{name: "empty", title: "", valid: false},
		{name: "single character", title: "T", valid: true},
		{name: "normal title", title: "Go Proverbs", valid: true},
		{name: "punctuation", title: "Don't Panic: errors are values!", valid: true},
		{name: "too long", title: strings.Repeat("a", 501), valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateTitle(v, tc.title)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	testCases := []struct {
		name  string
		url   string
		valid bool
	}{
		{name: "empty", url: "", valid: false},
		{name: "normal url", url: "https://example.com/post", valid: true},
		{name: "too long", url: "https://example.com/" + strings.Repeat("a", 1000), valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateURL(v, tc.url)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
			}
		})
	}
}

func TestValidateLikes(t *testing.T) {
	testCases := []struct {
		name  string
		likes int
		valid bool
	}{
		{name: "zero", likes: 0, valid: true},
		{name: "positive", likes: 42, valid: true},
		{name: "negative", likes: -1, valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateLikes(v, tc.likes)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
			}
		})
	}
}

func TestValidateComment(t *testing.T) {
	testCases := []struct {
		name  string
		text  string
		valid bool
	}{
		{name: "empty", text: "", valid: false},
		{name: "one character", text: "a", valid: false},
		{name: "two characters", text: "ok", valid: true},
		{name: "normal comment", text: "Great post, thanks!", valid: true},
		{name: "too long", text: strings.Repeat("a", 1001), valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateComment(v, tc.text)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
			}
		})
	}
}
