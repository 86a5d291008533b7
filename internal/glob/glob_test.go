package glob

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompile_PreservesLengthAndOrder(t *testing.T) {
	input := []string{
		"./src/**/*.{rs,html,css}",
		"./assets/src/**/*.{html,css,js}",
		"./assets/dist/**/*.{html}",
	}

	compiled, err := Compile(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw, normalized []string
	for _, p := range compiled {
		raw = append(raw, p.Raw())
		normalized = append(normalized, p.String())
	}
	if diff := cmp.Diff(input, raw); diff != "" {
		t.Errorf("Compile() raw order mismatch (-want +got):\n%s", diff)
	}
	want := []string{
		"src/**/*.{rs,html,css}",
		"assets/src/**/*.{html,css,js}",
		"assets/dist/**/*.{html}",
	}
	if diff := cmp.Diff(want, normalized); diff != "" {
		t.Errorf("Compile() normalized mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_Empty(t *testing.T) {
	compiled, err := Compile(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(compiled) != 0 {
		t.Errorf("expected no patterns, got %d", len(compiled))
	}
}

func TestCompile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		index   int
		pattern string
	}{
		{name: "empty string", input: []string{""}, index: 0, pattern: ""},
		{name: "whitespace only", input: []string{"src/*.html", "   "}, index: 1, pattern: "   "},
		{name: "dot slash only", input: []string{"./"}, index: 0, pattern: "./"},
		{name: "unclosed brace", input: []string{"src/**/*.{rs,html"}, index: 0, pattern: "src/**/*.{rs,html"},
		{name: "stray closing brace", input: []string{"src/*.html}"}, index: 0, pattern: "src/*.html}"},
		{name: "unclosed nested brace", input: []string{"src/{a,{b,c}.html"}, index: 0, pattern: "src/{a,{b,c}.html"},
		{name: "unclosed class", input: []string{"ok/*.css", "src/[a.html"}, index: 1, pattern: "src/[a.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.input)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			var invalid *InvalidPatternError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidPatternError, got %T: %v", err, err)
			}
			if invalid.Index != tt.index {
				t.Errorf("expected Index=%d, got %d", tt.index, invalid.Index)
			}
			if invalid.Pattern != tt.pattern {
				t.Errorf("expected Pattern=%q, got %q", tt.pattern, invalid.Pattern)
			}
		})
	}
}

func TestPattern_Alternatives(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{pattern: "src/*.html", want: []string{"src/*.html"}},
		{pattern: "src/**/*.{html,css}", want: []string{"src/**/*.html", "src/**/*.css"}},
		{pattern: "assets/dist/**/*.{html}", want: []string{"assets/dist/**/*.html"}},
		{pattern: "{a,b}/*.{x,y}", want: []string{"a/*.x", "a/*.y", "b/*.x", "b/*.y"}},
		{pattern: "src/{a,{b,c}d}.rs", want: []string{"src/a.rs", "src/bd.rs", "src/cd.rs"}},
		{pattern: `src/\{x\}.html`, want: []string{`src/\{x\}.html`}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := CompileOne(tt.pattern)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, p.Alternatives()); diff != "" {
				t.Errorf("Alternatives() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPattern_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{name: "single star same segment", pattern: "src/*.html", path: "src/index.html", want: true},
		{name: "single star rejects separator", pattern: "src/*.html", path: "src/pages/index.html", want: false},
		{name: "double star crosses separator", pattern: "src/**/*.html", path: "src/pages/deep/index.html", want: true},
		{name: "double star matches zero dirs", pattern: "src/**/*.html", path: "src/index.html", want: true},
		{name: "brace first alternative", pattern: "./src/**/*.{html,css}", path: "src/a/b.html", want: true},
		{name: "brace second alternative", pattern: "./src/**/*.{html,css}", path: "src/a/b.css", want: true},
		{name: "brace no alternative", pattern: "./src/**/*.{html,css}", path: "src/a/b.js", want: false},
		{name: "outside root", pattern: "./src/**/*.{html,css}", path: "lib/a.html", want: false},
		{name: "candidate with dot slash", pattern: "src/**/*.rs", path: "./src/main.rs", want: true},
		{name: "candidate not cleaned", pattern: "src/**/*.rs", path: "src/x/../main.rs", want: true},
		{name: "escaped brace literal", pattern: `src/\{x\}.html`, path: "src/{x}.html", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := CompileOne(tt.pattern)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := p.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) with %q = %v, want %v", tt.path, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMatchAny_IsUnion(t *testing.T) {
	patterns, err := Compile([]string{"src/*.rs", "assets/**/*.css"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for path, want := range map[string]bool{
		"src/lib.rs":            true,
		"assets/src/main.css":   true,
		"assets/src/deep/x.css": true,
		"src/components/mod.rs": false,
		"assets/src/main.js":    false,
		"tailwind.config.js":    false,
	} {
		if got := MatchAny(patterns, path); got != want {
			t.Errorf("MatchAny(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestCompile_Deterministic(t *testing.T) {
	a, err := CompileOne("src/{a,b}/**/*.{x,y}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := CompileOne("src/{a,b}/**/*.{x,y}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(a.Alternatives(), b.Alternatives()); diff != "" {
		t.Errorf("compiling twice differs (-first +second):\n%s", diff)
	}
}

func TestCompile_TooManyAlternatives(t *testing.T) {
	// 4^6 = 4096 alternatives
	_, err := CompileOne("{a,b,c,d}{a,b,c,d}{a,b,c,d}{a,b,c,d}{a,b,c,d}{a,b,c,d}")
	var invalid *InvalidPatternError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidPatternError, got %v", err)
	}
}
