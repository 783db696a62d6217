package analytics

import (
	"sort"
	"strings"

	"settletrack-backend/models"
)

// ComputeReliefBreakdown classifies each case's injunctive relief
// entries against the trigger table and reports per-category case
// frequencies. A case counts at most once per category no matter how
// many of its entries trigger it, but a single entry may hit several
// categories. OtherRelief is the deduplicated union of the literal
// relief strings, in first-seen order, exposed for display only.
func ComputeReliefBreakdown(cases []*models.Case, table ReliefCategoryTable) models.ReliefBreakdown {
	counts := make(map[string]int, len(table.Categories))

	seen := make(map[string]bool)
	other := []string{}

	for _, c := range cases {
		matched := make(map[string]bool)
		for _, entry := range c.InjunctiveRelief {
			lowered := strings.ToLower(entry)
			for _, category := range table.Categories {
				if matched[category.Key] {
					continue
				}
				if anyTrigger(lowered, category.Triggers) {
					matched[category.Key] = true
				}
			}
			if !seen[entry] {
				seen[entry] = true
				other = append(other, entry)
			}
		}
		for key := range matched {
			counts[key]++
		}
	}

	categories := make([]models.CategoryCount, 0, len(table.Categories))
	for _, category := range table.Categories {
		count := counts[category.Key]
		percentage := 0.0
		if len(cases) > 0 {
			percentage = float64(count) / float64(len(cases)) * 100
		}
		categories = append(categories, models.CategoryCount{
			Key:        category.Key,
			Label:      category.Label,
			Count:      count,
			Percentage: percentage,
		})
	}

	return models.ReliefBreakdown{
		TableVersion: table.Version,
		Categories:   categories,
		OtherRelief:  other,
	}
}

func anyTrigger(lowered string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.Contains(lowered, trigger) {
			return true
		}
	}
	return false
}

// ComputeAssessmentTally tallies third-party assessment tags by exact
// literal value, no fuzzy matching. Rows are ordered by descending
// count, ties broken alphabetically, so output is deterministic.
func ComputeAssessmentTally(cases []*models.Case) []models.TagCount {
	counts := make(map[string]int)
	for _, c := range cases {
		for _, tag := range c.ThirdPartyAssessments {
			counts[tag]++
		}
	}

	tally := make([]models.TagCount, 0, len(counts))
	for tag, count := range counts {
		tally = append(tally, models.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(tally, func(i, j int) bool {
		if tally[i].Count != tally[j].Count {
			return tally[i].Count > tally[j].Count
		}
		return tally[i].Tag < tally[j].Tag
	})

	return tally
}
