package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ziadkadry99/cityclock/internal/clock"
	"github.com/ziadkadry99/cityclock/internal/config"
)

const testNavigation = `{"cities":[
	{"section":"cupertino","label":"Cupertino"},
	{"section":"tokyo","label":"Tokyo"},
	{"section":"paris","label":"Paris","timezone":"Europe/Paris"}
]}`

func setupCLI(t *testing.T) string {
	t.Helper()

	orig := clock.Now
	clock.Now = func() time.Time { return time.Date(2024, time.January, 15, 20, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { clock.Now = orig })

	dir := t.TempDir()
	navPath := filepath.Join(dir, "navigation.json")
	if err := os.WriteFile(navPath, []byte(testNavigation), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Navigation.Path = navPath
	cfgPath := filepath.Join(dir, ".cityclock.yml")
	if err := cfg.Save(cfgPath); err != nil {
		t.Fatal(err)
	}
	return cfgPath
}

// resetFlags restores every flag to its default so commands can run more
// than once in the same process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestNowCommand(t *testing.T) {
	cfgPath := setupCLI(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"now"}, "1/15/2024, 12:00:00 PST"},
		{[]string{"now", "Tokyo"}, "1/16/2024, 05:00:00 GMT+9"},
		{[]string{"now", "Paris"}, "1/15/2024, 21:00:00 GMT+1"},
		{[]string{"now", "--zone", "America/New_York"}, "1/15/2024, 15:00:00 EST"},
	}
	for _, tt := range tests {
		out, err := runCLI(t, append([]string{"--config", cfgPath}, tt.args...)...)
		if err != nil {
			t.Errorf("%v: %v", tt.args, err)
			continue
		}
		if got := strings.TrimSpace(out); got != tt.want {
			t.Errorf("%v: got %q, want %q", tt.args, got, tt.want)
		}
	}

	if _, err := runCLI(t, "--config", cfgPath, "now", "Atlantis"); err == nil {
		t.Error("expected error for unknown city")
	}
}

func TestRenderCommand(t *testing.T) {
	cfgPath := setupCLI(t)

	out, err := runCLI(t, "--config", cfgPath, "render", "--active", "1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{`class="nav-item active" data-key="1"`, "1/16/2024, 05:00:00 GMT+9"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	file := filepath.Join(t.TempDir(), "page.html")
	if _, err := runCLI(t, "--config", cfgPath, "render", "-o", file); err != nil {
		t.Fatalf("render -o: %v", err)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `class="nav-item active" data-key="0"`) {
		t.Error("expected first entry active in file output")
	}
}

func TestCitiesCommand(t *testing.T) {
	cfgPath := setupCLI(t)

	out, err := runCLI(t, "--config", cfgPath, "cities")
	if err != nil {
		t.Fatalf("cities: %v", err)
	}
	for _, want := range []string{"Cupertino", "America/Los_Angeles", "Asia/Tokyo", "Europe/Paris", "GMT+9"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "cityclock ") {
		t.Errorf("unexpected version output %q", out)
	}
}
