// Package pipeline runs the stages of an index build in order.
//
// A run digests every page of the site mirror, resolves redirects, builds
// the people index, extracts the convention timeline and finally writes the
// reports. Each stage is a Step that reads and extends a shared
// *model.Index. Page digestion is the only stage with no cross-page
// dependency, so it alone runs in parallel, bounded with errgroup.
//
// The pipeline can continue past a failed step so that every report that
// can still be produced is produced.
package pipeline
