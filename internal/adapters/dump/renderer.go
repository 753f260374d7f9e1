// Package dump renders flattened scenes and change notifications as stable,
// indented text.
package dump

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/core/scene"
)

const indent = "  "

// Renderer implements ports.SceneRenderer. Field names are written in lexical
// order so the output does not depend on the order a container reports them in.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ ports.SceneRenderer = (*Renderer)(nil)

// RenderPrims writes one block per prim: the path and type, then its fields.
func (r *Renderer) RenderPrims(w io.Writer, prims []scene.PrimSpec) error {
	bw := bufio.NewWriter(w)
	for _, p := range prims {
		fmt.Fprintf(bw, "%s [%s]\n", p.Path, p.Prim.Type)
		if p.Prim.Source != nil {
			writeContainer(bw, p.Prim.Source, 1)
		}
	}
	return bw.Flush()
}

// RenderNotices writes one line per notice: batch, kind, path and detail.
func (r *Renderer) RenderNotices(w io.Writer, notices []scene.Notice) error {
	bw := bufio.NewWriter(w)
	for _, n := range notices {
		fmt.Fprintf(bw, "#%d %-7s %s", n.Batch, n.Kind, n.Path)
		switch n.Kind {
		case scene.NoticeAdded:
			fmt.Fprintf(bw, " [%s]", n.Type)
		case scene.NoticeDirtied:
			fmt.Fprintf(bw, " %s", n.Locators)
		case scene.NoticeRemoved:
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Digest hashes the rendered form of prims with xxhash.
func (r *Renderer) Digest(prims []scene.PrimSpec) (uint64, error) {
	h := xxhash.New()
	if err := r.RenderPrims(h, prims); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

func writeContainer(w *bufio.Writer, c datasource.Container, depth int) {
	names := slices.Clone(c.Names())
	slices.SortFunc(names, func(a, b domain.Token) int {
		return strings.Compare(a.String(), b.String())
	})
	names = slices.Compact(names)

	prefix := strings.Repeat(indent, depth)
	for _, name := range names {
		label := name.String()
		if label == "" {
			label = "<all>"
		}

		ds := c.Get(name)
		if child, ok := datasource.AsContainer(ds); ok {
			fmt.Fprintf(w, "%s%s\n", prefix, label)
			writeContainer(w, child, depth+1)
			continue
		}
		fmt.Fprintf(w, "%s%s = %s\n", prefix, label, FormatValue(ds))
	}
}

// FormatValue renders a leaf data source. Matrices are written row by row.
func FormatValue(ds datasource.DataSource) string {
	v, ok := ds.(datasource.Value)
	if !ok {
		return "<none>"
	}

	switch x := v.Value().(type) {
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatFloat(x)
	case string:
		return strconv.Quote(x)
	case domain.Token:
		return x.String()
	case domain.Path:
		return x.String()
	case mgl64.Vec3:
		return formatFloats(x[:])
	case mgl64.Mat4:
		rows := make([]string, 4)
		for i := range rows {
			row := x.Row(i)
			rows[i] = formatFloats(row[:])
		}
		return "[" + strings.Join(rows, " ") + "]"
	case []float64:
		return formatFloats(x)
	case []string:
		quoted := make([]string, len(x))
		for i, s := range x {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case []domain.Token:
		parts := make([]string, len(x))
		for i, t := range x {
			parts[i] = t.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", x)
	}
}

func formatFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, f := range values {
		parts[i] = formatFloat(f)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// formatFloat prints f in its shortest form, folding negative zero.
func formatFloat(f float64) string {
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
