// Package wikicorpus turns a wikipedia xml dump into a sentence corpus.
//
// The dumps are available from the wikimedia group here:
//	http://dumps.wikimedia.org/
//
// Processing happens in phases, each reading one stream and writing
// another:
//
//	dump.xml(.bz2) -> ExtractFile  -> one cleaned paragraph per line
//	               -> SegmentFile  -> one sentence per line
//	               -> ValidateFile -> sentences made of known words
//
// The extractor never builds a document model.  It scans raw bytes for
// <text> elements, skips {{templates}} by brace depth, and strips links,
// <ref> footnotes, comments and entities in place before writing.
//
// See tools/wikicorpus for the command line that drives the phases.
package wikicorpus
