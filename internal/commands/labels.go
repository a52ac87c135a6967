package commands

import (
	"log/slog"
	"slices"
)

// MergeLabels returns the requested labels followed by the existing ones not already requested
func MergeLabels(requested, existing []string) []string {
	merged := make([]string, 0, len(requested)+len(existing))
	for _, label := range append(slices.Clone(requested), existing...) {
		if !slices.Contains(merged, label) {
			merged = append(merged, label)
		}
	}
	return merged
}

// ApplyLabels sets labels on a pull request, keeping its current labels unless replace is set
func (bc *BaseCommand) ApplyLabels(number int, labels []string, replace bool) error {
	if !replace {
		issue, err := bc.Service.GetIssue(bc.Context, number)
		if err != nil {
			return err
		}
		labels = MergeLabels(labels, issue.Labels)
	}

	slog.Info("Setting labels", "pr", number, "labels", labels, "replace", replace)
	return bc.Service.SetLabels(bc.Context, number, labels)
}
