// Package worker contains the background score refresher: a bounded queue
// and worker pool that recompute a task's cached match score after an
// engagement write, off the request path.
package worker
