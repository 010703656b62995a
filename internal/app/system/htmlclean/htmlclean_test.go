package htmlclean_test

import (
	"strings"
	"testing"

	"github.com/nontawat/clubhub/internal/app/system/htmlclean"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlclean.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	if got := htmlclean.Sanitize("Chess club meets every Friday."); got != "Chess club meets every Friday." {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_SafeHTML(t *testing.T) {
	input := "<p><strong>Open house</strong> and <em>tryouts</em></p>"
	if got := htmlclean.Sanitize(input); got != input {
		t.Errorf("expected safe HTML preserved, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	input := "<p>Join us</p><script>alert('xss')</script>"
	if got := htmlclean.Sanitize(input); got != "<p>Join us</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesOnclick(t *testing.T) {
	input := `<button onclick="alert('xss')">Sign up</button>`
	if got := htmlclean.Sanitize(input); got == input {
		t.Error("expected onclick attribute to be removed")
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	input := `<a href="javascript:alert('xss')">Sign up</a>`
	if got := htmlclean.Sanitize(input); got == input {
		t.Error("expected javascript: href to be removed")
	}
}

func TestSanitize_AllowsSafeLinks(t *testing.T) {
	input := `<a href="https://club.example.ac.th">Apply</a>`
	got := htmlclean.Sanitize(input)
	// bluemonday adds rel="nofollow"; the href itself must survive
	if got == "" || !strings.Contains(got, "https://club.example.ac.th") {
		t.Errorf("expected safe link preserved, got %q", got)
	}
}

func TestSanitize_AllowsTables(t *testing.T) {
	input := `<table><thead><tr><th>Day</th></tr></thead><tbody><tr><td>Friday</td></tr></tbody></table>`
	if got := htmlclean.Sanitize(input); got != input {
		t.Errorf("expected table preserved, got %q", got)
	}
}
