// Package predcode is an in-memory engine for predictive-coding networks:
// graphs of latent variables connected by learnable prediction functions,
// settled by iterative error minimization and trained by local parameter
// updates.
//
// What is predcode?
//
//	A small, dependency-light library that brings together:
//		• Dense row-vector algebra on float64 (gonum-backed reductions)
//		• Activations: Linear and ReLU with derivatives
//		• Edge functions: ŷ = act(x·W) + b with local error gradients
//		• Variables: named 1×N latents that can be clamped (fixed)
//		• A generic directed multigraph with shape checks at insertion
//		• Inference (Jacobi sweeps) and learning sweeps, plus an EM controller
//		• Topology builders: chains, fan-ins, observations, seeded init
//
// Every edge source→target carries a function f that predicts the target from
// the source. Its prediction error e = t − f(x) defines the energy
// E = ½ Σ ‖e‖². An infer sweep moves every free variable one gradient step
// down E (all steps computed from the same snapshot, then applied); a learn
// sweep moves every non-fixed function's parameters one step down E.
//
// Packages:
//
//	matrix/     - Dense and Vector, shape-checked kernels, seeded random factories
//	activation/ - Kind {Linear, ReLU}: Eval, Deriv, Forward, Backward
//	transform/  - affine-plus-activation edge function, Backward, BackwardParams
//	variable/   - latent node value, fixed flag, accumulating Update
//	graph/      - generic append-only multigraph Graph[N, E] with iterators
//	infer/      - Infer, Learn, Forward, Errors, Energy, Run, RunEM
//	builder/    - BuildGraph with Chain, FanIn, Observe, Latent, Connect
//
// Quick ASCII example:
//
//	prior ──f₀──► mu ──f₁──► data
//	(fixed)      (free)     (fixed)
//
// With identity functions and prior = 5, data = 10, inference settles mu at
// the balance point 7.5.
//
//	go get github.com/katalvlaran/predcode
package predcode
