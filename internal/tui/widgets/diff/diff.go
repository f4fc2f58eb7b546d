package diff

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "editorgrid/internal/tui/util"
)

// Styles colors the diff; the zero value renders plain text.
type Styles struct {
    Del     lipgloss.Style
    Add     lipgloss.Style
    DelChar lipgloss.Style
    AddChar lipgloss.Style
    Same    lipgloss.Style
    Header  lipgloss.Style
}

// NewStyles derives diff colors from a palette.
func NewStyles(p util.Palette) Styles {
    return Styles{
        Del:     lipgloss.NewStyle().Foreground(p.Danger),
        Add:     lipgloss.NewStyle().Foreground(p.Success),
        DelChar: lipgloss.NewStyle().Foreground(p.Danger).Underline(true),
        AddChar: lipgloss.NewStyle().Foreground(p.Success).Underline(true),
        Same:    lipgloss.NewStyle().Faint(true),
        Header:  lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
    }
}

// Op is one line of a line-level diff.
type Op struct {
    Kind dmp.Operation
    Text string
}

// Lines computes a line-level diff of before and after.
func Lines(before, after string) []Op {
    d := dmp.New()
    a, b, lines := d.DiffLinesToChars(before, after)
    diffs := d.DiffMain(a, b, false)
    diffs = d.DiffCharsToLines(diffs, lines)
    var out []Op
    for _, df := range diffs {
        text := strings.TrimSuffix(df.Text, "\n")
        for _, ln := range strings.Split(text, "\n") {
            out = append(out, Op{Kind: df.Type, Text: ln})
        }
    }
    return out
}

// Unified renders a unified diff between two panes. A deleted line directly
// followed by an inserted one gets char-level highlights.
func Unified(leftName, before, rightName, after string, st Styles) string {
    var sb strings.Builder
    sb.WriteString(st.Header.Render(fmt.Sprintf("%s vs %s", leftName, rightName)) + "\n")
    if before == after {
        sb.WriteString("No changes\n")
        return sb.String()
    }
    ops := Lines(before, after)
    for i := 0; i < len(ops); i++ {
        op := ops[i]
        switch op.Kind {
        case dmp.DiffEqual:
            sb.WriteString("  " + st.Same.Render(op.Text) + "\n")
        case dmp.DiffInsert:
            sb.WriteString(st.Add.Render("+ "+op.Text) + "\n")
        case dmp.DiffDelete:
            if i+1 < len(ops) && ops[i+1].Kind == dmp.DiffInsert {
                del, add := charLevel(op.Text, ops[i+1].Text, st)
                sb.WriteString(st.Del.Render("- ") + del + "\n")
                sb.WriteString(st.Add.Render("+ ") + add + "\n")
                i++
                continue
            }
            sb.WriteString(st.Del.Render("- "+op.Text) + "\n")
        }
    }
    return sb.String()
}

func charLevel(bl, al string, st Styles) (string, string) {
    d := dmp.New()
    diffs := d.DiffMain(bl, al, false)
    diffs = d.DiffCleanupSemantic(diffs)
    var lbuf, rbuf strings.Builder
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            lbuf.WriteString(st.DelChar.Render(df.Text))
        case dmp.DiffInsert:
            rbuf.WriteString(st.AddChar.Render(df.Text))
        case dmp.DiffEqual:
            lbuf.WriteString(st.Del.Render(df.Text))
            rbuf.WriteString(st.Add.Render(df.Text))
        }
    }
    return lbuf.String(), rbuf.String()
}

// SideBySide renders both panes in two columns of width runes each.
func SideBySide(leftName, before, rightName, after string, width int, st Styles) string {
    const sep = " │ "
    if width < 10 {
        width = 10
    }
    left := strings.Split(before, "\n")
    right := strings.Split(after, "\n")
    n := max(len(left), len(right))
    var sb strings.Builder
    sb.WriteString(st.Header.Render(util.Pad(util.Ellipsize(leftName, width), width)) + sep + st.Header.Render(rightName) + "\n")
    for i := 0; i < n; i++ {
        var l, r string
        if i < len(left) {
            l = left[i]
        }
        if i < len(right) {
            r = right[i]
        }
        lc := util.Pad(util.Clip(l, width, 0), width)
        rc := util.Clip(r, width, 0)
        if l == r {
            sb.WriteString(st.Same.Render(lc) + sep + st.Same.Render(rc) + "\n")
            continue
        }
        sb.WriteString(st.Del.Render(lc) + sep + st.Add.Render(rc) + "\n")
    }
    return sb.String()
}
