// Package conv provides checked integer conversions.
//
// Index ordinals are stored as int32 and batch positions are reported as
// uint32 bitmap members; these helpers reject counts that do not fit.
package conv
