// Package builder assembles predictive-coding graphs from reusable topology
// constructors, in the functional-options style.
//
// BuildGraph creates a shape-checked graph (see infer.NewGraph), resolves the
// builder configuration from Options and applies Constructors in order:
//
//	g, err := builder.BuildGraph(
//		[]builder.Option{builder.WithSeed(7), builder.WithActivation(activation.ReLU)},
//		builder.Observe(5, 5, 5, 5),     // node 0, fixed
//		builder.Chain(3, 3),             // nodes 1, 2, edge 1→2
//		builder.Connect(0, 1),           // edge 0→1
//	)
//
// Components:
//
//   - Constructors: Chain, FanIn, Observe, Latent, Connect.
//   - Options: WithSeed/WithSource (weight and node initialization stream),
//     WithIDScheme (node names), WithActivation, WithBias, WithFixedEdges,
//     WithLearningRate, WithStepSize, WithNodeSigma.
//   - Name schemes: DefaultIDFn ("x0", "x1", ...), SymbolNumberIDFn(prefix).
//   - Lookup: find a node index by name.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order produce identical
//     graphs (values, parameters and names).
//   - Node names come from the ID scheme applied to the node's index, so they
//     are unique whatever the mix of constructors.
//   - Edge weights use Kaiming-normal initialization (σ = √(2/in)) and need a
//     random stream: without WithSeed or WithSource, constructors that add
//     edges return ErrNeedRandSource.
//   - Constructors never panic; option constructors panic on nil or
//     meaningless inputs.
package builder
