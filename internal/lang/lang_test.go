package lang

import "testing"

func TestParseOrFallsBack(t *testing.T) {
    if got := ParseOr("rust", Default); got != Rust {
        t.Fatalf("expected rust, got %q", got)
    }
    for _, bad := range []string{"", "Rust", "cobol", " python"} {
        if got := ParseOr(bad, Default); got != Markdown {
            t.Fatalf("ParseOr(%q): expected markdown fallback, got %q", bad, got)
        }
    }
}

func TestAllIsFixedAndCopied(t *testing.T) {
    a := All()
    if len(a) != 10 {
        t.Fatalf("expected 10 languages, got %d", len(a))
    }
    if a[0] != Markdown || a[len(a)-1] != HTML {
        t.Fatalf("unexpected order: %v", a)
    }
    a[0] = "mutated"
    if All()[0] != Markdown {
        t.Fatalf("All must return a copy")
    }
}

func TestCycleWraps(t *testing.T) {
    if HTML.Next() != Markdown {
        t.Fatalf("expected wrap to markdown")
    }
    if Markdown.Prev() != HTML {
        t.Fatalf("expected wrap to html")
    }
    l := Markdown
    for range All() {
        l = l.Next()
    }
    if l != Markdown {
        t.Fatalf("full cycle should return to start, got %q", l)
    }
}

func TestLabels(t *testing.T) {
    if CSharp.Label() != "C#" || Cpp.Label() != "C++" {
        t.Fatalf("unexpected labels %q %q", CSharp.Label(), Cpp.Label())
    }
    if Language("x").Label() != "x" {
        t.Fatalf("unknown language should label as itself")
    }
}
