// Package sum validates operands against a closed range and adds them.
//
// Add is pure: no I/O, no shared state. The first operand is checked before
// the second, so when both are out of range the first one is reported.
package sum
