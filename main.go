// editorgrid: a terminal grid of text editors with persisted layout, language and contents
package main

import (
    "errors"
    "flag"
    "fmt"
    "io"
    "log"
    "os"
    "strings"

    tea "github.com/charmbracelet/bubbletea"

    cfg "editorgrid/internal/config"
    "editorgrid/internal/grid"
    "editorgrid/internal/prefs"
    "editorgrid/internal/tui"
    "editorgrid/internal/tui/util"
)

const Version = "0.1.0"

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        os.Exit(cmdRun(nil))
    }
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "-v", "--version":
        fmt.Println("editorgrid", Version)
    case "run":
        os.Exit(cmdRun(os.Args[2:]))
    case "init":
        os.Exit(cmdInit(os.Args[2:]))
    case "prefs":
        os.Exit(cmdPrefs(os.Args[2:]))
    case "reset":
        os.Exit(cmdReset(os.Args[2:]))
    default:
        if strings.HasPrefix(os.Args[1], "-") {
            os.Exit(cmdRun(os.Args[1:]))
        }
        usage()
        os.Exit(2)
    }
}

func usage() {
    fmt.Print(`editorgrid ` + Version + `
A 1x1 to 2x2 grid of text editors. Layout, language and every pane's contents
are saved as you type and restored on the next start.
USAGE
  editorgrid [command] [options]
COMMANDS
  run          Open the editor grid (default)
  init         Write a default config file if none exists
  prefs        Print stored preferences and content slots
  reset        Forget the layout, language and all stored contents
  help         Show help (try: editorgrid help run)
  version      Print version
NOTES
  • The theme is per session: --dark starts in dark mode, ctrl+t toggles it.
  • Press f1 inside the grid for the full key list.
`)
}

func helpTopic(name string) {
    switch name {
    case "run":
        fmt.Print(`USAGE
  editorgrid run [--config PATH] [--store PATH] [--ephemeral] [--dark | --light]
                 [--log-file PATH] [--no-color]
DESCRIPTION
  Opens the grid with the stored layout (rows x editors per row, each 1 or 2),
  the stored language and each pane's stored contents. Every edit is written
  through to the store immediately.
OPTIONS
  --config PATH    TOML config file (default: $EDITORGRID_CONFIG or the user config dir)
  --store PATH     Preference store file (overrides store_path)
  --ephemeral      Keep preferences in memory only; nothing is saved
  --dark           Start in dark mode (overrides dark)
  --light          Start in light mode (overrides dark)
  --log-file PATH  Append logs to file (overrides log_file)
  --no-color       Render selections with brackets instead of color
`)
    case "prefs", "reset", "init":
        fmt.Print(`USAGE
  editorgrid ` + name + ` [--config PATH] [--store PATH]
`)
    default:
        usage()
    }
}

/* ---------- flags ---------- */

type options struct {
    configPath string
    storePath  string
    logFile    string
    ephemeral  bool
    dark       bool
    light      bool
    noColor    bool
}

func parseFlags(name string, args []string, withRun bool) (*options, error) {
    o := &options{}
    fs := flag.NewFlagSet(name, flag.ContinueOnError)
    fs.StringVar(&o.configPath, "config", cfg.Path(), "config file")
    fs.StringVar(&o.storePath, "store", "", "preference store file")
    if withRun {
        fs.BoolVar(&o.ephemeral, "ephemeral", false, "keep preferences in memory only")
        fs.BoolVar(&o.dark, "dark", false, "start in dark mode")
        fs.BoolVar(&o.light, "light", false, "start in light mode")
        fs.StringVar(&o.logFile, "log-file", "", "append logs to file")
        fs.BoolVar(&o.noColor, "no-color", false, "disable color")
    }
    if err := fs.Parse(args); err != nil {
        return nil, err
    }
    if o.dark && o.light {
        return nil, errors.New("--dark and --light are mutually exclusive")
    }
    return o, nil
}

// resolve merges flags over the config file.
func (o *options) resolve() (*cfg.Config, error) {
    c, err := cfg.Load(o.configPath)
    if err != nil {
        return nil, err
    }
    if o.storePath != "" {
        c.StorePath = o.storePath
    }
    if o.logFile != "" {
        c.LogFile = o.logFile
    }
    switch {
    case o.dark:
        c.Dark = true
    case o.light:
        c.Dark = false
    }
    return c, nil
}

func openPrefs(c *cfg.Config, ephemeral bool) (*prefs.Prefs, error) {
    if ephemeral {
        return prefs.New(prefs.NewMemory()), nil
    }
    f, err := prefs.OpenFile(c.StorePath)
    if err != nil {
        return nil, err
    }
    return prefs.New(f), nil
}

/* ---------- commands ---------- */

func cmdRun(args []string) int {
    o, err := parseFlags("run", args, true)
    if err != nil {
        return 2
    }
    c, err := o.resolve()
    if err != nil {
        fmt.Fprintln(os.Stderr, "config:", err)
        return 1
    }

    if c.LogFile != "" {
        f, err := tea.LogToFile(c.LogFile, "editorgrid")
        if err != nil {
            fmt.Fprintln(os.Stderr, "log file:", err)
            return 1
        }
        defer f.Close()
    } else {
        // the alt screen owns stdout and stderr while the grid is up
        log.SetOutput(io.Discard)
    }

    p, err := openPrefs(c, o.ephemeral)
    if err != nil {
        fmt.Fprintln(os.Stderr, "store:", err)
        return 1
    }
    log.Printf("starting %s store=%s", Version, c.StorePath)
    err = tui.Run(grid.New(p), tui.Options{
        Dark:        c.Dark,
        LineNumbers: c.LineNumbers,
        NoColor:     util.NoColor(o.noColor),
    })
    if err != nil {
        fmt.Fprintln(os.Stderr, "tui:", err)
        return 1
    }
    return 0
}

func cmdInit(args []string) int {
    o, err := parseFlags("init", args, false)
    if err != nil {
        return 2
    }
    if _, err := os.Stat(o.configPath); err == nil {
        fmt.Println(o.configPath, "already exists; not overwriting")
        return 0
    }
    c := cfg.DefaultConfig()
    if o.storePath != "" {
        c.StorePath = o.storePath
    }
    if err := cfg.Save(o.configPath, c); err != nil {
        fmt.Fprintln(os.Stderr, err)
        return 1
    }
    fmt.Println("Wrote", o.configPath)
    return 0
}

func cmdPrefs(args []string) int {
    o, err := parseFlags("prefs", args, false)
    if err != nil {
        return 2
    }
    c, err := o.resolve()
    if err != nil {
        fmt.Fprintln(os.Stderr, "config:", err)
        return 1
    }
    p, err := openPrefs(c, false)
    if err != nil {
        fmt.Fprintln(os.Stderr, "store:", err)
        return 1
    }
    fmt.Println("Store:", c.StorePath)
    if err := printPrefs(os.Stdout, p); err != nil {
        fmt.Fprintln(os.Stderr, err)
        return 1
    }
    return 0
}

func cmdReset(args []string) int {
    o, err := parseFlags("reset", args, false)
    if err != nil {
        return 2
    }
    c, err := o.resolve()
    if err != nil {
        fmt.Fprintln(os.Stderr, "config:", err)
        return 1
    }
    p, err := openPrefs(c, false)
    if err != nil {
        fmt.Fprintln(os.Stderr, "store:", err)
        return 1
    }
    if err := p.Reset(); err != nil {
        fmt.Fprintln(os.Stderr, "reset:", err)
        return 1
    }
    fmt.Println("Cleared", c.StorePath)
    return 0
}

// printPrefs lists the effective layout and language and every stored slot.
// Slots beyond the current layout are kept in storage and marked orphaned.
func printPrefs(w io.Writer, p *prefs.Prefs) error {
    l := p.Layout()
    language := p.Language()
    fmt.Fprintf(w, "Layout:   %dx%d (%d panes)\n", l.Rows, l.Cols, l.Len())
    fmt.Fprintf(w, "Language: %s (%s)\n", language.Label(), language)
    slots, err := p.Slots()
    if err != nil {
        return fmt.Errorf("list slots: %w", err)
    }
    if len(slots) == 0 {
        fmt.Fprintln(w, "Content:  none")
        return nil
    }
    fmt.Fprintln(w, "Content:")
    for _, i := range slots {
        mark := ""
        if i >= l.Len() {
            mark = "  (orphaned)"
        }
        body, err := p.Content(i)
        if err != nil {
            return err
        }
        fmt.Fprintf(w, "  %-10s %4d bytes  %s%s\n", prefs.ContentKey(i), len(body), util.Ellipsize(util.FirstLine(body), 40), mark)
    }
    return nil
}
