// Package poker implements the card model shared by the equity engine,
// including card identity and parsing, the known-card set, the remaining deck,
// and the adapter to the hand evaluator.
//
// # Core Types
//
// Card: Represents a playing card with suit and rank. Cards are comparable
// values and carry a fixed total order (rank, then suit).
//
// KnownCards: The set of cards held by the hero, the board, a declared
// villain or a friend. It answers the membership test used to disable cards
// and to block opponent combinations.
//
// # Hand Evaluation
//
// Evaluator maps 5 to 7 cards to a HandScore where a lower score is a
// stronger hand. The default implementation wraps github.com/paulhankin/poker
// and rejects duplicate cards.
package poker
