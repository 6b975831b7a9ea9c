// Package accuracy computes measurement error budgets and first-order
// (Taylor) linearization of sensor transfer functions.
package accuracy
