package grammar

import (
	"sort"
	"strconv"
	"strings"
)

// item is an LR(0) item, a production with a dot somewhere in its RHS. Items are compared by
// value, so the same production and dot always make the same map key.
//
//	E → E + T
//
//	dot 0: E →・E + T
//	dot 1: E → E・+ T
//	dot 2: E → E +・T
//	dot 3: E → E + T・
type item struct {
	prod *production
	dot  int
}

// dotted returns the symbol right after the dot, or symbolNil when the item is complete.
func (it item) dotted() symbol {
	if it.complete() {
		return symbolNil
	}
	return it.prod.rhs[it.dot]
}

func (it item) complete() bool {
	return it.dot == len(it.prod.rhs)
}

func (it item) advance() item {
	return item{
		prod: it.prod,
		dot:  it.dot + 1,
	}
}

// kernel is a set of items that determines a state. Its items are kept sorted by production
// number and then by dot.
type kernel []item

func newKernel(items []item) kernel {
	seen := map[item]struct{}{}
	k := make(kernel, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		k = append(k, it)
	}
	sort.Slice(k, func(i, j int) bool {
		if k[i].prod.num != k[j].prod.num {
			return k[i].prod.num < k[j].prod.num
		}
		return k[i].dot < k[j].dot
	})
	return k
}

// key returns a text identifying the kernel, such as `3.1 4.0`.
func (k kernel) key() string {
	var b strings.Builder
	for i, it := range k {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(it.prod.num))
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(it.dot))
	}
	return b.String()
}

// closure returns the items of k followed by the items at the head of every production that can
// begin at one of their dots.
func (k kernel) closure(prods *productionSet) []item {
	items := append([]item{}, k...)
	seen := map[item]struct{}{}
	for _, it := range items {
		seen[it] = struct{}{}
	}
	for i := 0; i < len(items); i++ {
		for _, prod := range prods.alternatives(items[i].dotted()) {
			head := item{prod: prod}
			if _, ok := seen[head]; ok {
				continue
			}
			seen[head] = struct{}{}
			items = append(items, head)
		}
	}
	return items
}
