// Package eegmst reduces multichannel EEG recordings to a minimum spanning
// tree over channel distances and scores every channel on that tree.
//
// Pipeline
//
//	signal.Table ─► distance.Build ─► builder.Complete ─► mst.Compute ─► centrality.Analyze
//	 (CSV rows)     (Pearson r,        (complete graph     (Kruskal or      (degree, betweenness,
//	                 d = √(2(1−r)))     over channels)      Prim, lex ties)  closeness, PageRank)
//
// Packages
//
//	channels/   — ordered channel labels (10–20 montage) and the electrode layout table
//	signal/     — validated multichannel series and CSV ingestion
//	distance/   — correlation and distance matrices on gonum SymDense
//	core/       — thread-safe labeled undirected weighted graph
//	builder/    — complete graph from a distance matrix
//	mst/        — Kruskal and Prim with a strict total edge order; Tree validation
//	bfs/        — hop-count breadth-first search with subtree sizes
//	centrality/ — tree centralities in O(n) plus weighted PageRank
//	pipeline/   — one recording end to end, batches over errgroup
//	report/     — presentation documents; JSON, CSV and XLSX writers
//	config/     — YAML, .env and EEGMST_* settings; slog construction
//	httpapi/    — chi router exposing /v1/analyze
//	cmd/eegmst  — cobra CLI: analyze, batch, serve, channels
//
// Determinism
//
//	Every stage is a pure function of its input. MST ties are broken by the
//	(lo, hi) label pair of each edge, so the same recording always yields the
//	same tree regardless of enumeration order or algorithm.
package eegmst
