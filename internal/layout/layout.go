package layout

// Supported lists the allowed magnitudes for both rows and columns.
var Supported = []int{1, 2}

// Config is the grid shape. Both counts are always one of Supported.
type Config struct {
    Rows int
    Cols int
}

func DefaultConfig() Config { return Config{Rows: 1, Cols: 1} }

// ValidCount reports whether n is an allowed row or column count.
func ValidCount(n int) bool {
    for _, s := range Supported {
        if n == s {
            return true
        }
    }
    return false
}

func (c Config) Valid() bool { return ValidCount(c.Rows) && ValidCount(c.Cols) }

// Len is the number of panes the config produces.
func (c Config) Len() int { return c.Rows * c.Cols }

// Pane is one grid position and the storage slot it addresses.
type Pane struct {
    Row   int
    Col   int
    Index int
}

// FlatIndex linearizes a position row-major against the current column count.
func FlatIndex(row, col, cols int) int { return row*cols + col }

// Compute returns the panes for a rows x cols grid in row-major order.
// Unsupported dimensions yield nil.
func Compute(rows, cols int) []Pane {
    if !ValidCount(rows) || !ValidCount(cols) {
        return nil
    }
    out := make([]Pane, 0, rows*cols)
    for r := 0; r < rows; r++ {
        for c := 0; c < cols; c++ {
            out = append(out, Pane{Row: r, Col: c, Index: FlatIndex(r, c, cols)})
        }
    }
    return out
}

// Panes is Compute for a Config.
func (c Config) Panes() []Pane { return Compute(c.Rows, c.Cols) }

// Split divides total cells into parts extents. Each extent is total/parts;
// the remainder goes to the last one so the extents always sum to total.
func Split(total, parts int) []int {
    if parts <= 0 {
        return nil
    }
    if total < 0 {
        total = 0
    }
    out := make([]int, parts)
    each := total / parts
    for i := range out {
        out[i] = each
    }
    out[parts-1] += total - each*parts
    return out
}
