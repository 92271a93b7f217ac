package services

import (
	"cmp"
	"slices"

	"meeting-host-service/internal/domain"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// pathNode is an immutable, parent-linked record of the nodes visited on one
// search branch. Branches share prefixes but never mutate them.
type pathNode struct {
	name   string
	parent *pathNode
}

func (p *pathNode) contains(name string) bool {
	for n := p; n != nil; n = n.parent {
		if n.name == name {
			return true
		}
	}
	return false
}

// label is one partial path waiting in the search frontier.
type label struct {
	cost domain.Cost
	node string
	legs []domain.Leg
	path *pathNode
	seq  uint64
}

// Order labels by cumulative duration, then emissions, then hop count,
// then push order so that pops are deterministic.
func compareLabels(a, b interface{}) int {
	x, y := a.(*label), b.(*label)
	if c := cmp.Compare(x.cost.Duration, y.cost.Duration); c != 0 {
		return c
	}
	if c := cmp.Compare(x.cost.CO2, y.cost.CO2); c != 0 {
		return c
	}
	if c := cmp.Compare(len(x.legs), len(y.legs)); c != 0 {
		return c
	}
	return cmp.Compare(x.seq, y.seq)
}

// SearchRoutes enumerates Pareto-optimal simple paths from origin to destination.
//
// The frontier is expanded best-first by (duration, co2). Each node keeps its own
// ParetoFront for the lifetime of the call; a cost reaching a node is kept only if
// no entry there is at least as good in both objectives. Labels whose cost was later
// evicted from their node's front are dropped when popped, so the returned routes
// never dominate one another.
//
// At most limits.MaxRoutes routes of at most limits.MaxHops legs are returned, in
// the order they were found. An empty result means destination is unreachable
// within the limits; origin == destination also yields no routes.
func SearchRoutes(g *domain.Graph, origin, destination string, limits domain.SearchLimits) []domain.Route {
	routes := []domain.Route{}
	if g == nil || limits.MaxHops <= 0 || limits.MaxRoutes <= 0 {
		return routes
	}

	fronts := map[string]*domain.ParetoFront{}
	frontAt := func(node string) *domain.ParetoFront {
		f, ok := fronts[node]
		if !ok {
			f = &domain.ParetoFront{}
			fronts[node] = f
		}
		return f
	}

	frontAt(origin).Add(domain.Cost{})

	frontier := binaryheap.NewWith(compareLabels)
	var seq uint64
	frontier.Push(&label{node: origin, path: &pathNode{name: origin}})

	for !frontier.Empty() && len(routes) < limits.MaxRoutes {
		v, _ := frontier.Pop()
		cur := v.(*label)

		if !fronts[cur.node].Contains(cur.cost) {
			continue
		}

		if cur.node == destination && len(cur.legs) > 0 {
			routes = append(routes, domain.NewRoute(cur.legs))
			continue
		}

		if len(cur.legs) >= limits.MaxHops {
			continue
		}

		for _, leg := range g.Neighbors(cur.node) {
			if cur.path.contains(leg.Destination) {
				continue
			}

			next := domain.Cost{
				Duration: cur.cost.Duration + leg.DurationHours,
				CO2:      cur.cost.CO2 + leg.CO2Kg,
			}
			if !frontAt(leg.Destination).Add(next) {
				continue
			}

			seq++
			frontier.Push(&label{
				cost: next,
				node: leg.Destination,
				legs: append(slices.Clip(cur.legs), leg),
				path: &pathNode{name: leg.Destination, parent: cur.path},
				seq:  seq,
			})
		}
	}

	return routes
}
