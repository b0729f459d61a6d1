// Package feedback turns a day's running total into a short advisory
// message. Generators are constructed once at process start and injected;
// every caller treats them as optional, so a failed or missing message never
// blocks display of totals.
package feedback

import "context"

type Generator interface {
	Feedback(ctx context.Context, todayTotalMl int) (string, error)
}
