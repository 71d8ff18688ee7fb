// Package domain holds the assignment and submission records plus the
// submission status state machine shared by the lifecycle manager, storage,
// and transport adapters.
package domain
