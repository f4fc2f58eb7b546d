package diff

import (
    "strings"
    "testing"

    dmp "github.com/sergi/go-diff/diffmatchpatch"
)

func TestLines(t *testing.T) {
    ops := Lines("a\nb\nc\n", "a\nx\nc\n")
    var kinds []dmp.Operation
    for _, op := range ops {
        kinds = append(kinds, op.Kind)
    }
    want := []dmp.Operation{dmp.DiffEqual, dmp.DiffDelete, dmp.DiffInsert, dmp.DiffEqual}
    if len(kinds) != len(want) {
        t.Fatalf("unexpected ops %+v", ops)
    }
    for i := range want {
        if kinds[i] != want[i] {
            t.Fatalf("op %d: got %v want %v (%+v)", i, kinds[i], want[i], ops)
        }
    }
}

func TestUnifiedSnapshot(t *testing.T) {
    out := Unified("editor-0", "a\nb", "editor-1", "a\nc", Styles{})
    if !strings.HasPrefix(out, "editor-0 vs editor-1\n") {
        t.Fatalf("missing header:\n%s", out)
    }
    if !strings.Contains(out, "- b") || !strings.Contains(out, "+ c") || !strings.Contains(out, "  a") {
        t.Fatalf("expected +/- lines in unified output:\n%s", out)
    }
}

func TestUnifiedNoChanges(t *testing.T) {
    out := Unified("editor-0", "same", "editor-1", "same", Styles{})
    if !strings.Contains(out, "No changes") {
        t.Fatalf("expected no-changes notice:\n%s", out)
    }
}

func TestSideBySideSnapshot(t *testing.T) {
    out := SideBySide("editor-0", "left", "editor-1", "right", 20, Styles{})
    if !strings.Contains(out, " │ ") {
        t.Fatalf("missing separator:\n%s", out)
    }
    if !strings.Contains(out, "left") || !strings.Contains(out, "right") {
        t.Fatalf("missing content:\n%s", out)
    }
}
