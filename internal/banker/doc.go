// Package banker implements the settlement engine and hole progression rules
// for the Banker golf wagering game. Every function is a pure computation over
// in-memory models; callers own persistence and must serialize updates to a
// single game.
package banker
