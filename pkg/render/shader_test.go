package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	testVertSrc = "#version 410 core\nvoid main() { gl_Position = vec4(0); }\n"
	testFragSrc = "#version 410 core\nout vec4 c;\nvoid main() { c = vec4(1); }\n"
)

func TestNewProgram(t *testing.T) {
	g := newFakeGL()
	p, err := NewProgram(g, testVertSrc, testFragSrc)
	if err != nil {
		t.Fatalf("NewProgram failed: %v", err)
	}

	if len(g.attached[p.id]) != 2 {
		t.Errorf("Expected 2 shaders attached, got %d", len(g.attached[p.id]))
	}
	if len(g.deletedShaders) != 2 {
		t.Errorf("Expected both shader stages deleted after linking, got %d", len(g.deletedShaders))
	}

	// Sources must reach their stages unmodified
	for handle, stage := range g.shaderTypes {
		src := g.shaderSources[handle]
		switch stage {
		case VertexShader:
			if src != testVertSrc {
				t.Errorf("vertex stage got source %q", src)
			}
		case FragmentShader:
			if src != testFragSrc {
				t.Errorf("fragment stage got source %q", src)
			}
		}
	}
}

func TestNewProgramCompileError(t *testing.T) {
	tests := []struct {
		name  string
		stage uint32
		want  string
	}{
		{"vertex failure", VertexShader, "vertex shader"},
		{"fragment failure", FragmentShader, "fragment shader"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newFakeGL()
			g.failCompile[tt.stage] = "0:3(1): error: syntax error"

			_, err := NewProgram(g, testVertSrc, testFragSrc)
			if err == nil {
				t.Fatal("Expected compile error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should name the failing stage %q", err, tt.want)
			}
			if !strings.Contains(err.Error(), "syntax error") {
				t.Errorf("error %q should carry the driver info log", err)
			}
		})
	}
}

func TestNewProgramLinkError(t *testing.T) {
	g := newFakeGL()
	g.failLink = "error: unresolved varying"

	_, err := NewProgram(g, testVertSrc, testFragSrc)
	if err == nil {
		t.Fatal("Expected link error, got nil")
	}
	if !strings.Contains(err.Error(), "unresolved varying") {
		t.Errorf("error %q should carry the linker info log", err)
	}
}

func TestLoadProgram(t *testing.T) {
	dir := t.TempDir()
	vertPath := filepath.Join(dir, "basic.vert")
	fragPath := filepath.Join(dir, "basic.frag")
	if err := os.WriteFile(vertPath, []byte(testVertSrc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fragPath, []byte(testFragSrc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadProgram(newFakeGL(), vertPath, fragPath); err != nil {
		t.Fatalf("LoadProgram failed: %v", err)
	}

	_, err := LoadProgram(newFakeGL(), filepath.Join(dir, "missing.vert"), fragPath)
	if err == nil {
		t.Fatal("Expected error for missing vertex shader, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read vertex shader") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestProgramActivate(t *testing.T) {
	g := newFakeGL()
	p, err := NewProgram(g, testVertSrc, testFragSrc)
	if err != nil {
		t.Fatal(err)
	}

	p.Activate(g)
	if len(g.usedPrograms) != 1 || g.usedPrograms[0] != p.id {
		t.Errorf("UseProgram calls = %v, want [%d]", g.usedPrograms, p.id)
	}

	p.Deactivate(g)
	if g.usedPrograms[len(g.usedPrograms)-1] != 0 {
		t.Error("Deactivate should clear the current program")
	}
}

func TestProgramSetMat4(t *testing.T) {
	g := newFakeGL()
	p, err := NewProgram(g, testVertSrc, testFragSrc)
	if err != nil {
		t.Fatal(err)
	}

	p.SetMat4(g, "model", mgl32.Translate3D(1, 2, 3))

	m, ok := g.matrix("model")
	if !ok {
		t.Fatal("no matrix uploaded to uniform \"model\"")
	}
	if m[12] != 1 || m[13] != 2 || m[14] != 3 {
		t.Errorf("translation column = (%v, %v, %v), want (1, 2, 3)", m[12], m[13], m[14])
	}
}

func TestProgramCachesUniformLocations(t *testing.T) {
	g := newFakeGL()
	p, err := NewProgram(g, testVertSrc, testFragSrc)
	if err != nil {
		t.Fatal(err)
	}

	for range 5 {
		p.SetMat4(g, "view", mgl32.Ident4())
	}
	p.SetMat4(g, "projection", mgl32.Ident4())

	if got := g.uniformLookups["view"]; got != 1 {
		t.Errorf("location for \"view\" looked up %d times, want 1", got)
	}
	if g.uniformLocations["view"] == g.uniformLocations["projection"] {
		t.Error("distinct uniforms resolved to the same location")
	}
}
