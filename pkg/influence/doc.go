// Package influence scores structural node importance and drives the
// iterative isolation ("inoculation") of a contact network.
//
// Two scoring units are supported:
//
//   - degree: the node's current neighbor count
//   - collective influence: (deg(v)-1) * Σ (deg(u)-1) over every node u whose
//     shortest-hop distance from v is exactly the configured radius
//
// Collective influence approximates a node's leverage over its radius
// boundary: removing high-leverage nodes fragments transmission paths more
// effectively than removing merely high-degree nodes.
//
// [Calculator] computes and caches scores; [Engine] repeatedly selects and
// isolates the highest-scoring node, keeping the cache consistent with a
// partial refresh bounded by the scoring radius.
package influence
