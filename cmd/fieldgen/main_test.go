package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("FIELDGEN_LOGGER_LEVEL", "error")
	root := newRootCmd()
	resetFlags(root)
	root.SetArgs(args)
	return root.Execute()
}

// resetFlags clears values left by earlier runs; the commands and their flag
// variables are package level.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func TestRenderCommandWritesPage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "profile.html")
	if err := runCLI(t, "render", "-f", filepath.Join("testdata", "profile.yaml"), "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	for _, want := range []string{
		"<title>Profile</title>",
		"Name *",
		`aria-invalid="true"`,
		"is required",
		"could not save profile",
		`role="switch"`,
		`<option selected value="pro">Pro</option>`,
		"<strong>markdown</strong>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderCommandWithThemeManifest(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fragment.html")
	err := runCLI(t, "render",
		"-f", filepath.Join("testdata", "profile.yaml"),
		"--theme-manifest", filepath.Join("testdata", "theme.yaml"),
		"--theme", "acme",
		"--variant", "dark",
		"--fragment",
		"-o", out,
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	if strings.Contains(html, "<html") {
		t.Fatalf("fragment must not contain the page shell")
	}
	for _, want := range []string{"<style>", "margin-bottom:8px;", "background:#ff5286;"} {
		if !strings.Contains(html, want) {
			t.Errorf("fragment missing %q", want)
		}
	}
}

func TestOpenAPICommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pet.html")
	err := runCLI(t, "openapi",
		"-f", filepath.Join("..", "..", "pkg", "schema", "testdata", "petstore.yaml"),
		"--schema", "Pet",
		"-o", out,
	)
	if err != nil {
		t.Fatalf("openapi: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "Pet name *") || !strings.Contains(string(data), `type="email"`) {
		t.Fatalf("unexpected output:\n%s", data)
	}
}

func TestRenderCommandRequiresFile(t *testing.T) {
	if err := runCLI(t, "render"); err == nil {
		t.Fatalf("expected missing flag error")
	}
	if err := runCLI(t, "render", "-f", filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Fatalf("expected missing file error")
	}
}

func TestMistypedEnvFileFails(t *testing.T) {
	err := runCLI(t, "--env-file", filepath.Join(t.TempDir(), "typo.env"),
		"render", "-f", filepath.Join("testdata", "profile.yaml"), "-o", filepath.Join(t.TempDir(), "out.html"))
	if err == nil {
		t.Fatalf("expected error for a missing env file")
	}
}
