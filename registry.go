// FILE: lixenwraith/flexop/registry.go
package flexop

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// registryChunk is the number of descriptors the table grows by when full.
const registryChunk = 8

// registry is the insertion-ordered descriptor table plus a lazily built
// sort index. index is nil whenever it is stale.
type registry struct {
	options []*option
	index   []int
}

// add appends o, rejecting a duplicate non-title name, and invalidates the
// sort index.
func (r *registry) add(o *option) error {
	if o.kind() != KindTitle {
		for _, e := range r.options {
			if e.kind() != KindTitle && e.name == o.name {
				return fmt.Errorf("%w: \"-%s\" is already registered", ErrDuplicateOption, o.name)
			}
		}
	}

	if len(r.options) == cap(r.options) {
		grown := make([]*option, len(r.options), cap(r.options)+registryChunk)
		copy(grown, r.options)
		r.options = grown
	}

	o.pos = len(r.options)
	r.options = append(r.options, o)
	r.index = nil
	return nil
}

// compare orders every non-title before every title, titles by insertion
// position, and everything else by case-sensitive name.
func compare(a, b *option) int {
	at, bt := a.kind() == KindTitle, b.kind() == KindTitle
	switch {
	case at && bt:
		return cmp.Compare(a.pos, b.pos)
	case at:
		return 1
	case bt:
		return -1
	}
	return strings.Compare(a.name, b.name)
}

// sort builds the index if it is stale. It is a no-op otherwise.
func (r *registry) sort() {
	if r.index != nil {
		return
	}

	index := make([]int, len(r.options))
	for i := range index {
		index[i] = i
	}
	slices.SortStableFunc(index, func(i, j int) int {
		return compare(r.options[i], r.options[j])
	})
	r.index = index
}

// lookup finds the non-title descriptor named name.
func (r *registry) lookup(name string) (*option, bool) {
	r.sort()

	probe := &option{name: name, bind: flagBinding{}}
	i, found := slices.BinarySearchFunc(r.index, probe, func(idx int, p *option) int {
		return compare(r.options[idx], p)
	})
	if !found {
		return nil, false
	}
	return r.options[r.index[i]], true
}

// names returns the names of all non-title descriptors in sorted order.
func (r *registry) names() []string {
	r.sort()

	names := make([]string, 0, len(r.index))
	for _, idx := range r.index {
		o := r.options[idx]
		if o.kind() == KindTitle {
			break
		}
		names = append(names, o.name)
	}
	return names
}

// unknown builds the unknown-option error for token, suggesting the closest
// registered name when there is one.
func (r *registry) unknown(token, name string) error {
	if name != "" {
		if matches := fuzzy.Find(name, r.names()); len(matches) > 0 {
			return fmt.Errorf("%w %q (did you mean \"-%s\"?)", ErrUnknownOption, token, matches[0].Str)
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownOption, token)
}

// reset drops every descriptor and the index.
func (r *registry) reset() {
	r.options = nil
	r.index = nil
}
