// Package equity implements the range equity engine: it enumerates the
// opponent hands left in the deck, classifies each one against the hero's
// made hand and aggregates the verdicts both as global totals and as the
// 13x13 starting-hand matrix.
//
// # Modes
//
// Range mode compares the hero against every unordered two-card combination
// of the remaining deck. Heads-up mode compares the hero against a single
// declared villain hand. The matrix is always aggregated against the full
// range so the grid stays informative in both modes.
//
// # Score convention
//
// Hand scores come from a poker.Evaluator where a lower score is a stronger
// hand: the villain wins when its score is lower than the hero's.
//
// Every call to Engine.Compute starts from scratch. Nothing is cached between
// calls and the only inputs are the ones carried by the Snapshot.
package equity
