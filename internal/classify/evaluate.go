package classify

import (
	"fmt"
	"sort"

	"segment-iq/pkg/api"
)

// Evaluate computes the confusion matrix (rows true segment, columns
// predicted) and accuracy on held-out labels. Pure function.
func Evaluate(truth, predicted []int) (api.EvaluationResult, error) {
	if len(truth) != len(predicted) {
		return api.EvaluationResult{}, fmt.Errorf(
			"got %d true labels and %d predictions", len(truth), len(predicted))
	}

	seen := make(map[int]bool)
	for _, label := range truth {
		seen[label] = true
	}
	for _, label := range predicted {
		seen[label] = true
	}
	classes := make([]int, 0, len(seen))
	for label := range seen {
		classes = append(classes, label)
	}
	sort.Ints(classes)
	idx := make(map[int]int, len(classes))
	for i, label := range classes {
		idx[label] = i
	}

	matrix := make([][]int, len(classes))
	for i := range matrix {
		matrix[i] = make([]int, len(classes))
	}
	correct := 0
	perClass := make([]int, len(classes))
	for i := range truth {
		ti, pi := idx[truth[i]], idx[predicted[i]]
		matrix[ti][pi]++
		perClass[ti]++
		if ti == pi {
			correct++
		}
	}

	result := api.EvaluationResult{
		Classes:  classes,
		Matrix:   matrix,
		Total:    len(truth),
		Correct:  correct,
		PerClass: perClass,
	}
	if result.Total > 0 {
		result.Accuracy = float64(correct) / float64(result.Total)
	}
	return result, nil
}
