package helpoverlay

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/bubbles/key"

    "editorgrid/internal/tui/theme"
)

// Section is a titled group of bindings.
type Section struct {
    Title    string
    Bindings []key.Binding
}

// Choices lists one select control's full option set.
type Choices struct {
    Title   string
    Options []string
    Current string
}

// View returns grouped keys help with each select's options.
func View(sections []Section, choices []Choices, th theme.Theme) string {
    var b strings.Builder
    b.WriteString(th.Title.Render("Help") + "\n")
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.Title)
        for _, k := range sec.Bindings {
            if !k.Enabled() {
                continue
            }
            h := k.Help()
            fmt.Fprintf(&b, "  %-12s %s\n", h.Key, h.Desc)
        }
    }
    for _, c := range choices {
        fmt.Fprintf(&b, "\n%s:\n ", c.Title)
        for _, o := range c.Options {
            if o == c.Current {
                b.WriteString(" " + th.Selected.Render("["+o+"]"))
            } else {
                b.WriteString(" " + o)
            }
        }
        b.WriteString("\n")
    }
    b.WriteString("\n" + th.Hint.Render("f1/esc: close") + "\n")
    return b.String()
}
