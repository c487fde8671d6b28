// Package centrality scores every vertex of a spanning tree with four
// structural measures and assembles them into a Table.
//
// Measures
//
//   - Degree:      deg(v)/(n−1). A single-vertex tree scores 1.
//   - Betweenness: fraction of vertex pairs (s,t), s,t ≠ v, whose unique tree
//     path runs through v, normalized by C(n−1, 2). Zero when n ≤ 2.
//   - Closeness:   (n−1) / Σ hop distances from v. Zero when n == 1.
//   - PageRank:    power iteration on the tree viewed as a directed graph with
//     both arc directions, transitions proportional to the raw distance weight.
//
// Tree shortcuts
//
//	A tree has exactly one path between any two vertices, so neither
//	betweenness nor closeness needs all-pairs shortest paths. One BFS from the
//	first vertex gives a rooted order and subtree sizes. Removing v splits the
//	tree into its child subtrees plus the part above it, and the pairs v
//	separates follow directly from those component sizes. Closeness reroots the
//	hop-distance sum along each edge: moving the root from p to a child c brings
//	size(c) vertices one hop closer and pushes the other n−size(c) one hop away,
//	so S(c) = S(p) + n − 2·size(c).
//
// PageRank details
//
//	α = DefaultAlpha, tolerance DefaultTolerance, at most DefaultMaxIterations
//	rounds from a uniform start. The loop stops once the L1 change between
//	iterates drops below n·tolerance. A vertex whose incident weights sum to 0
//	(every edge of weight 0, as with identical input series) has no outgoing
//	transition and is treated as dangling: its mass is spread uniformly.
//	Failing to converge is not an error; the last iterate is kept and the
//	result carries a *ConvergenceWarning.
//
// Complexity
//
//   - Degree, Betweenness, Closeness: O(n).
//   - PageRank: O(n · iterations).
package centrality
