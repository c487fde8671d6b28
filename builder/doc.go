// Package builder materializes a distance matrix as the complete, labeled,
// weighted graph the MST stage reduces.
//
// Complete(dm) adds one vertex per channel in channel-set order and one edge
// per unordered pair {i,j}, i<j, carrying d(i,j). Because every pair has a
// distance the result is always connected.
package builder
