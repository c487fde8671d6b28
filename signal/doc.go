// Package signal holds the channel-indexed sample table consumed by the
// distance stage, and the tabular reader that loads it from the files the
// ingestion collaborator emits.
//
// A Table owns one float64 series per channel, all of the same length, in
// channels.Set order. NewTable enforces the structural contract up front so
// later stages never see a ragged, mislabelled or non-finite table:
//
//   - channel count and label order match the Set (channels.ErrStructural);
//   - every series has the same number of samples, at least MinSamples;
//   - every sample is finite.
//
// ReadCSV accepts both layouts the collaborator may produce:
//
//	ChannelsAsRows  one row per channel; the leading row is a sample index
//	                (1..m) and is skipped when SkipIndex is set (default).
//	SamplesAsRows   one row per sample under a header of channel labels; an
//	                index/time column is excluded by name or position.
//
// The default delimiter is ';'.
package signal
