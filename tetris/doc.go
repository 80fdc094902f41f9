// Package tetris implements the falling-block game state: the playfield grid,
// the seven tetromino shapes, collision, gravity, rotation with wall kicks,
// locking and line clearing.
//
// The engine is deterministic for a given random source and has no
// dependency on timing, input or rendering. A driver calls Update once per
// frame with the elapsed seconds, forwards player commands, and reads the
// query methods to draw the result.
package tetris
