package main

import (
    "bytes"
    "os"
    "path/filepath"
    "strings"
    "testing"

    "editorgrid/internal/prefs"
)

func TestPrintPrefsMarksOrphans(t *testing.T) {
    m := prefs.NewMemory()
    p := prefs.New(m)
    _ = p.SetRows(2)
    _ = p.SetContent(0, "\n  # title\nbody")
    _ = p.SetContent(3, "left behind")

    var buf bytes.Buffer
    if err := printPrefs(&buf, p); err != nil {
        t.Fatalf("printPrefs: %v", err)
    }
    out := buf.String()
    for _, want := range []string{"Layout:   2x1 (2 panes)", "Language: Markdown (markdown)", "# title"} {
        if !strings.Contains(out, want) {
            t.Fatalf("missing %q in:\n%s", want, out)
        }
    }
    var orphan string
    for _, ln := range strings.Split(out, "\n") {
        if strings.Contains(ln, "editor-3") {
            orphan = ln
        }
    }
    if !strings.HasSuffix(orphan, "(orphaned)") {
        t.Fatalf("editor-3 should be orphaned: %q", orphan)
    }
}

func TestPrintPrefsEmpty(t *testing.T) {
    var buf bytes.Buffer
    if err := printPrefs(&buf, prefs.New(prefs.NewMemory())); err != nil {
        t.Fatal(err)
    }
    if !strings.Contains(buf.String(), "Layout:   1x1") || !strings.Contains(buf.String(), "Content:  none") {
        t.Fatalf("unexpected output:\n%s", buf.String())
    }
}

func TestFlagsOverrideConfig(t *testing.T) {
    dir := t.TempDir()
    path := filepath.Join(dir, "config.toml")
    if err := os.WriteFile(path, []byte("dark = true\nstore_path = \"/tmp/a.json\"\n"), 0o644); err != nil {
        t.Fatal(err)
    }
    o, err := parseFlags("run", []string{"--config", path, "--light", "--store", filepath.Join(dir, "b.json")}, true)
    if err != nil {
        t.Fatal(err)
    }
    c, err := o.resolve()
    if err != nil {
        t.Fatal(err)
    }
    if c.Dark || c.StorePath != filepath.Join(dir, "b.json") {
        t.Fatalf("flags should win: %+v", c)
    }
    if _, err := parseFlags("run", []string{"--dark", "--light"}, true); err == nil {
        t.Fatalf("expected --dark/--light conflict")
    }
}

func TestEphemeralStoreWritesNothing(t *testing.T) {
    dir := t.TempDir()
    o := &options{configPath: filepath.Join(dir, "missing.toml"), storePath: filepath.Join(dir, "prefs.json")}
    c, err := o.resolve()
    if err != nil {
        t.Fatal(err)
    }
    p, err := openPrefs(c, true)
    if err != nil {
        t.Fatal(err)
    }
    if err := p.SetContent(0, "x"); err != nil {
        t.Fatal(err)
    }
    if _, err := os.Stat(c.StorePath); !os.IsNotExist(err) {
        t.Fatalf("ephemeral run must not create %s", c.StorePath)
    }
}

func TestUsageListsCommands(t *testing.T) {
    r, w, err := os.Pipe()
    if err != nil {
        t.Fatal(err)
    }
    stdout := os.Stdout
    os.Stdout = w
    usage()
    helpTopic("run")
    os.Stdout = stdout
    w.Close()
    var buf bytes.Buffer
    _, _ = buf.ReadFrom(r)
    for _, want := range []string{"COMMANDS", "  prefs ", "--ephemeral"} {
        if !strings.Contains(buf.String(), want) {
            t.Fatalf("missing %q in help output:\n%s", want, buf.String())
        }
    }
    if strings.HasSuffix(buf.String(), "\n\n") {
        t.Fatalf("help output should end with a single newline")
    }
}
