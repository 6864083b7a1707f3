// This file contains a thin wrapper around the graph module for the
// pair restriction relation of a tournament.
package internal

import (
	"errors"

	"github.com/dominikbraun/graph"
)

// A RestrictionGraph is an undirected graph over player IDs. An
// edge between two IDs means the pair may not meet. The relation is
// symmetric and only ever accumulates; there is no edge removal.
type RestrictionGraph[K comparable] struct {
	graph.Graph[K, K]
}

func NewRestrictionGraph[K comparable]() *RestrictionGraph[K] {
	g := graph.New(func(id K) K { return id })
	return &RestrictionGraph[K]{Graph: g}
}

// Restrict adds the pair to the relation. Restricting a pair that
// is already present, in either order, is a no-op.
func (g *RestrictionGraph[K]) Restrict(a, b K) error {
	if err := g.AddVertex(a); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return err
	}
	if err := g.AddVertex(b); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return err
	}
	if err := g.AddEdge(a, b); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return err
	}
	return nil
}

// Pairs returns every restricted pair exactly once, in unspecified
// order.
func (g *RestrictionGraph[K]) Pairs() ([][2]K, error) {
	edges, err := g.Edges()
	if err != nil {
		return nil, err
	}
	pairs := make([][2]K, 0, len(edges))
	for _, e := range edges {
		pairs = append(pairs, [2]K{e.Source, e.Target})
	}
	return pairs, nil
}
