package selects

import (
    "strconv"

    "editorgrid/internal/lang"
    "editorgrid/internal/layout"
    "editorgrid/internal/tui/widgets/helpoverlay"
    "editorgrid/internal/tui/widgets/toolbar"
)

const (
    RowsLabel     = "# Editor Rows"
    ColsLabel     = "# Editors per Row"
    LanguageLabel = "Language"
)

// CountOptions is the fixed option set of both count selects.
func CountOptions() []string {
    out := make([]string, 0, len(layout.Supported))
    for _, n := range layout.Supported {
        out = append(out, strconv.Itoa(n))
    }
    return out
}

// LanguageOptions is the fixed language option set, as labels.
func LanguageOptions() []string {
    all := lang.All()
    out := make([]string, 0, len(all))
    for _, l := range all {
        out = append(out, l.Label())
    }
    return out
}

// Toolbar returns the three selects for the current grid state.
func Toolbar(cfg layout.Config, l lang.Language) []toolbar.Select {
    return []toolbar.Select{
        {Label: RowsLabel, Options: CountOptions(), Current: strconv.Itoa(cfg.Rows)},
        {Label: ColsLabel, Options: CountOptions(), Current: strconv.Itoa(cfg.Cols)},
        {Label: LanguageLabel, Options: LanguageOptions(), Current: l.Label(), Compact: true},
    }
}

// Help lists every select's options for the help overlay.
func Help(cfg layout.Config, l lang.Language) []helpoverlay.Choices {
    out := make([]helpoverlay.Choices, 0, 3)
    for _, s := range Toolbar(cfg, l) {
        out = append(out, helpoverlay.Choices{Title: s.Label, Options: s.Options, Current: s.Current})
    }
    return out
}

// NextCount cycles a count through layout.Supported.
func NextCount(n int) int {
    for i, v := range layout.Supported {
        if v == n {
            return layout.Supported[(i+1)%len(layout.Supported)]
        }
    }
    return layout.Supported[0]
}
