// Package anomaly bridges feature rows to anomaly scoring models.
//
// The package does not ship a model. Callers plug in a Scorer (a trained
// isolation forest served elsewhere, or any other ranker) and use Scores to
// handle failed segments uniformly.
package anomaly
