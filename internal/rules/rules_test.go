package rules

import (
	"testing"

	"github.com/blocklaunch/blocklaunch/internal/models"
)

var (
	windows64 = PlatformInfo{OS: "windows", Arch: "x86_64"}
	linux64   = PlatformInfo{OS: "linux", Arch: "x86_64"}
	osx86     = PlatformInfo{OS: "osx", Arch: "x86"}
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		rules    []models.Rule
		platform PlatformInfo
		want     bool
	}{
		{
			name:     "no rules includes",
			rules:    nil,
			platform: linux64,
			want:     true,
		},
		{
			name:     "empty rules includes",
			rules:    []models.Rule{},
			platform: linux64,
			want:     true,
		},
		{
			name: "allow without os includes",
			rules: []models.Rule{
				{Action: "allow"},
			},
			platform: linux64,
			want:     true,
		},
		{
			name: "allow matching os includes",
			rules: []models.Rule{
				{Action: "allow", OS: &models.RuleOS{Name: "windows"}},
			},
			platform: windows64,
			want:     true,
		},
		{
			name: "allow non-matching os excludes",
			rules: []models.Rule{
				{Action: "allow", OS: &models.RuleOS{Name: "windows"}},
			},
			platform: linux64,
			want:     false,
		},
		{
			name: "allow matching os and arch includes",
			rules: []models.Rule{
				{Action: "allow", OS: &models.RuleOS{Name: "windows", Arch: "x86_64"}},
			},
			platform: windows64,
			want:     true,
		},
		{
			name: "allow matching os wrong arch excludes",
			rules: []models.Rule{
				{Action: "allow", OS: &models.RuleOS{Name: "osx", Arch: "x86_64"}},
			},
			platform: osx86,
			want:     false,
		},
		{
			name: "disallow without os excludes",
			rules: []models.Rule{
				{Action: "allow"},
				{Action: "disallow"},
			},
			platform: linux64,
			want:     false,
		},
		{
			name: "disallow matching os excludes",
			rules: []models.Rule{
				{Action: "allow"},
				{Action: "disallow", OS: &models.RuleOS{Name: "osx"}},
			},
			platform: osx86,
			want:     false,
		},
		{
			name: "disallow non-matching os keeps previous decision",
			rules: []models.Rule{
				{Action: "allow"},
				{Action: "disallow", OS: &models.RuleOS{Name: "osx"}},
			},
			platform: linux64,
			want:     true,
		},
		{
			name: "last matching rule wins",
			rules: []models.Rule{
				{Action: "disallow"},
				{Action: "allow", OS: &models.RuleOS{Name: "linux"}},
			},
			platform: linux64,
			want:     true,
		},
		{
			name: "unknown action leaves decision unchanged",
			rules: []models.Rule{
				{Action: "maybe"},
			},
			platform: linux64,
			want:     true,
		},
		{
			name: "typical lwjgl natives rule pair",
			rules: []models.Rule{
				{Action: "allow"},
				{Action: "disallow", OS: &models.RuleOS{Name: "osx"}},
			},
			platform: windows64,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.rules, tt.platform)
			if got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_Pure(t *testing.T) {
	rs := []models.Rule{
		{Action: "allow", OS: &models.RuleOS{Name: "windows"}},
	}
	first := Evaluate(rs, windows64)
	second := Evaluate(rs, windows64)
	if first != second {
		t.Error("Evaluate is not deterministic")
	}
	if rs[0].OS.Name != "windows" {
		t.Error("Evaluate mutated its input")
	}
}

func TestWordSize(t *testing.T) {
	tests := []struct {
		arch string
		want string
	}{
		{"x86_64", "64"},
		{"arm64", "64"},
		{"x86", "32"},
		{"arm", "32"},
	}
	for _, tt := range tests {
		got := PlatformInfo{Arch: tt.arch}.WordSize()
		if got != tt.want {
			t.Errorf("WordSize(%s) = %s, want %s", tt.arch, got, tt.want)
		}
	}
}

func TestHost(t *testing.T) {
	p := Host()
	if p.OS == "" || p.Arch == "" {
		t.Errorf("Host() returned incomplete platform: %+v", p)
	}
	if p.OS == "darwin" {
		t.Error("Host() should map darwin to osx")
	}
}
