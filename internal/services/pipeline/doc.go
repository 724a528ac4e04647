// Package pipeline runs the read, sum and write stages in order.
//
// Each stage's failure short-circuits the rest: nothing is written when the
// input cannot be read or validated. Errors are returned as *domain.Error;
// a panic raised while summing is recovered and reported as KindUnknown.
package pipeline
