// SPDX-License-Identifier: MIT

package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/eegmst/channels"
	"github.com/katalvlaran/eegmst/pipeline"
)

// Condition suffixes used by paired recordings, e.g. Subject00_1 / Subject00_2.
const (
	SuffixBefore = "_1"
	SuffixDuring = "_2"
)

// Recording IDs of the per-condition group trees.
const (
	GroupBefore = "average" + SuffixBefore
	GroupDuring = "average" + SuffixDuring
)

// Pair groups the two conditions recorded for one subject.
// Either side may be empty when only one condition was analyzed.
type Pair struct {
	Subject string `json:"subject"`
	Before  string `json:"before,omitempty"`
	During  string `json:"during,omitempty"`
}

// condition splits a recording ID into subject and condition suffix.
func condition(id string) (subject, suffix string, ok bool) {
	for _, sfx := range []string{SuffixBefore, SuffixDuring} {
		if s := strings.TrimSuffix(id, sfx); s != id && s != "" {
			return s, sfx, true
		}
	}

	return "", "", false
}

// PairConditions groups documents by subject using the _1 / _2 suffix of
// their recording IDs. Documents without a condition suffix are skipped.
// Pairs are sorted by subject.
func PairConditions(docs []Document) []Pair {
	bySubject := make(map[string]*Pair)
	for _, d := range docs {
		subject, suffix, ok := condition(d.RecordingID)
		if !ok {
			continue
		}
		p, ok := bySubject[subject]
		if !ok {
			p = &Pair{Subject: subject}
			bySubject[subject] = p
		}
		if suffix == SuffixBefore {
			p.Before = d.RecordingID
		} else {
			p.During = d.RecordingID
		}
	}

	out := make([]Pair, 0, len(bySubject))
	for _, p := range bySubject {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })

	return out
}

// GroupDocuments builds one group tree per condition from the mean distance
// matrix of that condition's successful recordings in b, run through p.
// The before group comes first; a condition with no recordings is omitted.
func GroupDocuments(ctx context.Context, p *pipeline.Pipeline, b *pipeline.Batch, layout channels.Layout) ([]Document, error) {
	members := make(map[string][]*pipeline.Result, 2)
	for _, o := range b.Outcomes {
		if o.Err != nil || o.Result == nil {
			continue
		}
		if _, suffix, ok := condition(o.RecordingID); ok {
			members[suffix] = append(members[suffix], o.Result)
		}
	}

	var out []Document
	for _, g := range []struct{ id, suffix string }{
		{GroupBefore, SuffixBefore},
		{GroupDuring, SuffixDuring},
	} {
		rs := members[g.suffix]
		if len(rs) == 0 {
			continue
		}
		res, err := p.RunAverage(ctx, g.id, rs...)
		if err != nil {
			return nil, fmt.Errorf("report: group %s: %w", g.id, err)
		}
		doc, err := NewDocument(res, layout)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}

	return out, nil
}
