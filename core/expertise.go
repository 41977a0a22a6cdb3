package core

import (
	"sort"
	"strings"

	"github.com/abdulahadd002/epic-dev-assignment/schema"
)

// File scoring weights for expertise detection.
const (
	extensionWeight  = 2 // file extension in a category's known set
	configFileWeight = 5 // filename matches a known configuration marker
	pathMarkerWeight = 3 // path contains a known directory marker
)

// fullStackShareOfTop is the similarity threshold for the Full Stack
// promotion: categories scoring at least this share of the top score
// count as significant.
const fullStackShareOfTop = 0.5

// maxExpertiseEntries bounds the ranked list for a single-specialty profile.
const maxExpertiseEntries = 4

// maxTechnologies bounds the detected technology token list.
const maxTechnologies = 10

// DetectExpertise infers a ranked specialization profile from touched
// files and the extension frequency histogram. Per file, a category earns
// +2 for a known extension, +5 for a configuration-file marker and +3 for
// a directory marker; extension frequencies are added on top so that
// categories with many small commits are not penalized. Three or more
// categories within 50% of the top score promote the profile to Full
// Stack; zero signal falls back to General Development.
func DetectExpertise(files []schema.FileChange, fileTypes []schema.FileTypeCount) schema.ExpertiseProfile {
	scores := make(map[schema.Category]float64, len(schema.ClassifierCategories))
	techs := make(map[string]struct{})
	var techOrder []string

	addTech := func(token string) {
		if _, seen := techs[token]; seen {
			return
		}
		techs[token] = struct{}{}
		techOrder = append(techOrder, token)
	}

	for _, f := range files {
		ext := schema.FileExtension(f.Filename)
		lower := strings.ToLower(f.Filename)

		for _, cat := range schema.ClassifierCategories {
			markers := schema.Taxonomy[cat]

			if ext != "" && containsString(markers.Extensions, ext) {
				scores[cat] += extensionWeight
				addTech(strings.ToUpper(ext))
			}
			for _, config := range markers.ConfigFiles {
				lc := strings.ToLower(config)
				if strings.Contains(lower, lc) || strings.HasSuffix(lower, lc) {
					scores[cat] += configFileWeight
					addTech(config)
				}
			}
			for _, marker := range markers.PathMarkers {
				if strings.Contains(lower, strings.ToLower(marker)) {
					scores[cat] += pathMarkerWeight
				}
			}
		}
	}

	// Frequency pass: weight each category by how often its extensions
	// appear overall, independent of per-commit file lists.
	for _, ft := range fileTypes {
		ext := strings.ToLower(strings.TrimPrefix(ft.Name, "."))
		for _, cat := range schema.ClassifierCategories {
			if containsString(schema.Taxonomy[cat].Extensions, ext) {
				scores[cat] += float64(ft.Value)
			}
		}
	}

	ranked := rankScores(scores)

	if len(ranked) == 0 {
		return schema.ExpertiseProfile{
			Primary:      schema.CategoryGeneral,
			All:          []schema.ExpertiseScore{{Name: schema.CategoryGeneral, Score: 0}},
			Technologies: []string{},
		}
	}

	topScore := ranked[0].Score
	significant := make([]schema.ExpertiseScore, 0, len(ranked))
	for _, entry := range ranked {
		if entry.Score >= topScore*fullStackShareOfTop {
			significant = append(significant, entry)
		}
	}

	profile := schema.ExpertiseProfile{Technologies: limitStrings(techOrder, maxTechnologies)}
	if len(significant) >= 3 {
		profile.Primary = schema.CategoryFullStack
		profile.All = significant
	} else {
		profile.Primary = ranked[0].Name
		if len(ranked) > maxExpertiseEntries {
			ranked = ranked[:maxExpertiseEntries]
		}
		profile.All = ranked
	}
	return profile
}

// rankScores drops zero-score categories and sorts descending. Ties keep
// taxonomy evaluation order, which the stable sort preserves because the
// map is walked in ClassifierCategories order.
func rankScores(scores map[schema.Category]float64) []schema.ExpertiseScore {
	ranked := make([]schema.ExpertiseScore, 0, len(scores))
	for _, cat := range schema.ClassifierCategories {
		if score := scores[cat]; score > 0 {
			ranked = append(ranked, schema.ExpertiseScore{Name: cat, Score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func limitStrings(values []string, limit int) []string {
	if len(values) > limit {
		return values[:limit]
	}
	return values
}
