package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cszach/Network-Inoculator/pkg/influence"
)

func testCLI(t *testing.T) *CLI {
	t.Helper()
	// Keep the test hermetic: no config file pickup from the host.
	t.Setenv("STOPCONTAGION_CONFIG", "")
	t.Chdir(t.TempDir())
	return New(io.Discard, LogInfo)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := testCLI(t).RootCommand()

	want := []string{"inoculate", "rank", "layout", "visualize", "watch", "serve", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestInoculateRejectsBadNodeCount(t *testing.T) {
	c := testCLI(t)

	for _, arg := range []string{"zero", "0"} {
		t.Run(arg, func(t *testing.T) {
			root := c.RootCommand()
			root.SetArgs([]string{"inoculate", arg, "net.txt"})
			root.SetOut(io.Discard)
			root.SetErr(io.Discard)

			err := root.Execute()
			if err == nil || !strings.Contains(err.Error(), "positive integer") {
				t.Errorf("err = %v, want NUM_NODES complaint", err)
			}
		})
	}
}

func TestInoculateCountDrivesRounds(t *testing.T) {
	// Path 1-2-3-4-5: the network's size comes from the file's highest ID, and
	// the positional count caps how many nodes get isolated. Degree scoring
	// removes node 2 first, then node 4, after which every degree is zero.
	c := testCLI(t)
	file := filepath.Join(t.TempDir(), "path.txt")
	if err := os.WriteFile(file, []byte("1 2\n2 3\n3 4\n4 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		count int
		want  string
	}{
		{name: "stops at count", count: 1, want: "2 2\n"},
		{name: "stops early at exhaustion", count: 10, want: "2 2\n4 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := c.runInoculate(t.Context(), tt.count, file, influence.Options{UseDegree: true}, false, &out)
			if err != nil {
				t.Fatalf("runInoculate: %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRankRejectsNonPositiveRadius(t *testing.T) {
	c := testCLI(t)

	for _, radius := range []int{0, -1} {
		err := c.runRank("net.txt", radius, 0)
		if err == nil || !strings.Contains(err.Error(), "must be at least 1") {
			t.Errorf("runRank(radius=%d) err = %v, want radius complaint", radius, err)
		}
	}
}

func TestNewCacheDisabled(t *testing.T) {
	c, err := newCache(true)
	if err != nil {
		t.Fatalf("newCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(t.Context(), "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(t.Context(), "k"); hit {
		t.Error("disabled cache stored data")
	}
}

func TestCacheDirHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)

	got, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if want := filepath.Join(dir, appName); got != want {
		t.Errorf("cacheDir = %q, want %q", got, want)
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != formatSVG {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}
	if got := parseFormats("svg,png"); len(got) != 2 || got[1] != formatPNG {
		t.Errorf("parseFormats(\"svg,png\") = %v", got)
	}
}
