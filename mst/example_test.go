package mst_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/edge"
	"github.com/katalvlaran/spantree/mst"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a 4-vertex graph.
// The MST is {2–3, 0–3, 0–1} with total weight 19; 0–2 is rejected as a cycle.
func ExampleKruskal() {
	edges := []edge.Edge[int]{
		edge.New(0, 1, 10),
		edge.New(0, 2, 6),
		edge.New(0, 3, 5),
		edge.New(1, 3, 15),
		edge.New(2, 3, 4),
	}

	res, err := mst.Kruskal(4, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Status, res.Total)
	fmt.Println(res.Edges)
	// Output:
	// complete 19
	// [2-3(4) 0-3(5) 0-1(10)]
}

// ExamplePrim demonstrates Prim's algorithm on a pentagon.
// Vertices 0..4. Edges: 0–1 (1), 1–2 (2), 2–3 (3), 3–4 (5), 0–4 (12).
func ExamplePrim() {
	edges := []edge.Edge[float64]{
		edge.New(0, 1, 1.0),
		edge.New(0, 4, 12.0),
		edge.New(1, 2, 2.0),
		edge.New(2, 3, 3.0),
		edge.New(3, 4, 5.0),
	}

	res, err := mst.Prim(5, edges, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges: %v\n", res.Total, res.Edges)
	// Output: Total: 11, Edges: [0-1(1) 1-2(2) 2-3(3) 3-4(5)]
}

// ExampleBuilder_Step walks the Kruskal loop one extraction at a time on a
// graph with two components. The last Step reports ErrFinished.
func ExampleBuilder_Step() {
	b, err := mst.NewBuilder(4, []edge.Edge[int]{edge.New(0, 1, 5), edge.New(2, 3, 7)})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for {
		d, err := b.Step()
		if errors.Is(err, mst.ErrFinished) {
			break
		}
		fmt.Println(d.Edge, d.Accepted, b.State())
	}

	res := b.Result()
	fmt.Println(res.Status, len(res.Edges), res.Total, res.Components)
	// Output:
	// 0-1(5) true running
	// 2-3(7) true running
	// disconnected 2 12 2
}

// ExampleCompute selects the algorithm through options and composes a
// fixture with the builder package.
func ExampleCompute() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithConstantWeight(3)},
		builder.Cycle(4), builder.Path(3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, method := range []string{mst.MethodKruskal, mst.MethodPrim} {
		res, err := mst.Compute(g.Vertices, g.Edges, mst.WithMethod(method), mst.WithRoot(5))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(method, res.Status, res.Total, res.Components)
	}

	_, err = mst.Compute(g.Vertices, g.Edges, mst.WithMethod("boruvka"))
	fmt.Println(err)
	// Output:
	// kruskal disconnected 15 2
	// prim disconnected 15 2
	// mst: unknown method: "boruvka"
}
