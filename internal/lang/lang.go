package lang

// Language identifies the highlighting mode shared by every pane in the grid.
type Language string

const (
    Markdown   Language = "markdown"
    JavaScript Language = "javascript"
    TypeScript Language = "typescript"
    CSharp     Language = "csharp"
    Java       Language = "java"
    Cpp        Language = "cpp"
    Rust       Language = "rust"
    Python     Language = "python"
    Ruby       Language = "ruby"
    HTML       Language = "html"
)

// Default is used when nothing (or garbage) is stored.
const Default = Markdown

var all = []Language{Markdown, JavaScript, TypeScript, CSharp, Java, Cpp, Rust, Python, Ruby, HTML}

var labels = map[Language]string{
    Markdown:   "Markdown",
    JavaScript: "JavaScript",
    TypeScript: "TypeScript",
    CSharp:     "C#",
    Java:       "Java",
    Cpp:        "C++",
    Rust:       "Rust",
    Python:     "Python",
    Ruby:       "Ruby",
    HTML:       "HTML",
}

// All returns the fixed option set in display order.
func All() []Language {
    return append([]Language(nil), all...)
}

// Parse reports whether s names a supported language.
func Parse(s string) (Language, bool) {
    l := Language(s)
    if l.Valid() {
        return l, true
    }
    return "", false
}

// ParseOr is Parse with a fallback for absent or corrupted values.
func ParseOr(s string, def Language) Language {
    if l, ok := Parse(s); ok {
        return l
    }
    return def
}

func (l Language) Valid() bool {
    _, ok := labels[l]
    return ok
}

// Label returns the name shown in the toolbar.
func (l Language) Label() string {
    if s, ok := labels[l]; ok {
        return s
    }
    return string(l)
}

func (l Language) String() string { return string(l) }

// Next returns the following option, wrapping at the end.
func (l Language) Next() Language {
    return all[(l.index()+1)%len(all)]
}

// Prev returns the preceding option, wrapping at the start.
func (l Language) Prev() Language {
    i := l.index() - 1
    if i < 0 {
        i = len(all) - 1
    }
    return all[i]
}

// index of l in all; unknown values count as Default.
func (l Language) index() int {
    for i, v := range all {
        if v == l {
            return i
        }
    }
    return 0
}
