// Package tree defines the domain-model contract the binding layer consumes
// and ships two ready-made implementations: Static, an in-memory node with
// replaceable children, and Lazy, a node that fetches its children on demand.
//
// Applications with their own model types implement Node directly; the
// binding layer never caches Children results, so implementations are free
// to compute them per call.
package tree
