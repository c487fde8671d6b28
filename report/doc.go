// Package report turns pipeline results into renderer-ready structures and
// writes them as JSON, CSV or XLSX.
//
// It is the only package that reads electrode layout coordinates: EdgeList
// attaches each endpoint's 2D position so a plotting client can draw the
// spanning tree over a scalp map without knowing the montage.
package report
