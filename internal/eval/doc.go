// Package eval computes the displayable value of cells.
//
// Evaluation is a depth-first traversal over the implicit reference graph
// formed by formulas. Nothing derived is stored in the sheet: every call
// reads current content, so a store write invalidates everything implicitly.
//
// # Cycle Guard
//
// Each top-level evaluation carries a set of coordinates currently being
// evaluated (the "temporary" set of a classic DFS cycle check). A reference
// to a coordinate already in that set closes a cycle. Depending on the
// CyclePolicy the cycle either turns the formula into the #CYCLE! error
// value, which then propagates to every formula that reaches it, or
// contributes zero. Either way recursion depth is bounded by the number of
// distinct coordinates visited.
//
// # Frames
//
// A Frame memoizes values for one render pass. It is bound to the store's
// Version and drops its memo as soon as the store changes.
package eval
