package composer

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"

	"github.com/labela/labela-control/internal/model"
)

// SearchProducts yields catalog products whose name contains term, ignoring
// case, skipping products already in the draft. The exclusion set is taken
// when SearchProducts is called. An empty term yields nothing.
func (c *Composer) SearchProducts(catalog []model.Product, term string) iter.Seq[model.Product] {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))

	c.mu.Lock()
	excluded := make(map[int64]struct{}, len(c.lines))
	for _, l := range c.lines {
		excluded[l.ProductID] = struct{}{}
	}
	c.mu.Unlock()

	return func(yield func(model.Product) bool) {
		if needle == "" {
			return
		}
		for _, p := range catalog {
			if _, ok := excluded[p.ID]; ok {
				continue
			}
			if !strings.Contains(fold.String(p.Name), needle) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Take collects at most n values from seq.
func Take[T any](seq iter.Seq[T], n int) []T {
	out := make([]T, 0, max(n, 0))
	if n <= 0 {
		return out
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
