// Package surface - bounded breadth-first traversal over a descriptor's
// labels, and the involution check built on it.
package surface

import (
	"errors"
	"fmt"
)

// ErrNilDescriptor is returned when a nil Descriptor is passed to Walk or
// CheckInvolution.
var ErrNilDescriptor = errors.New("surface: descriptor is nil")

// VisitFunc is called once per discovered label with its breadth-first
// depth from the base label. Returning an error aborts the walk.
type VisitFunc func(l Label, depth int) error

// queueItem pairs a label with its distance from the base label.
type queueItem struct {
	label Label
	depth int
}

// Walk explores labels breadth-first from d.BaseLabel(), crossing every
// edge of every discovered polygon, visiting each label exactly once.
//
// maxDepth bounds the exploration radius: labels at depth maxDepth are
// visited but not expanded. A negative maxDepth is ErrInvalidParameter —
// the bound is what keeps traversal of an infinite family finite, so
// there is no "unlimited" mode.
func Walk(d Descriptor, maxDepth int, visit VisitFunc) error {
	if d == nil {
		return ErrNilDescriptor
	}
	if maxDepth < 0 {
		return fmt.Errorf("surface: maxDepth %d: %w", maxDepth, ErrInvalidParameter)
	}
	visited := map[Label]bool{d.BaseLabel(): true}
	queue := []queueItem{{label: d.BaseLabel(), depth: 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if err := visit(item.label, item.depth); err != nil {
			return err
		}
		if item.depth == maxDepth {
			continue
		}
		p, err := d.Polygon(item.label)
		if err != nil {
			return err
		}
		for e := 0; e < p.Sides(); e++ {
			q, _, err := d.OppositeEdge(item.label, e)
			if err != nil {
				return err
			}
			if !visited[q] {
				visited[q] = true
				queue = append(queue, queueItem{label: q, depth: item.depth + 1})
			}
		}
	}
	return nil
}

// CheckInvolution walks d out to maxDepth and verifies, for every edge of
// every discovered label, that the gluing is an involution with no fixed
// edges. The first violation is returned wrapping ErrFixedEdge or
// ErrNotInvolution.
func CheckInvolution(d Descriptor, maxDepth int) error {
	return Walk(d, maxDepth, func(l Label, _ int) error {
		p, err := d.Polygon(l)
		if err != nil {
			return err
		}
		for e := 0; e < p.Sides(); e++ {
			q, f, err := d.OppositeEdge(l, e)
			if err != nil {
				return err
			}
			if q == l && f == e {
				return fmt.Errorf("surface: (%s, %d): %w", l, e, ErrFixedEdge)
			}
			l2, e2, err := d.OppositeEdge(q, f)
			if err != nil {
				return err
			}
			if l2 != l || e2 != e {
				return fmt.Errorf("surface: (%s, %d) -> (%s, %d) -> (%s, %d): %w",
					l, e, q, f, l2, e2, ErrNotInvolution)
			}
		}
		return nil
	})
}
