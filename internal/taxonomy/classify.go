package taxonomy

import (
	"sort"
	"strings"
)

// GeneralTopic is the fallback label when no keyword family matches.
const GeneralTopic = "General"

// Classify assigns up to maxTopics topic labels to an agenda item. The
// title and at most fulltextBytes of the body are lower-cased and scored by
// counting keyword phrases present as substrings. Topics with a positive
// score are ranked by descending score; equal scores keep declaration
// order. When nothing matches the result is [GeneralTopic].
func (t *Taxonomy) Classify(title, fulltext string, maxTopics, fulltextBytes int) []string {
	if len(fulltext) > fulltextBytes {
		fulltext = fulltext[:fulltextBytes]
	}
	text := strings.ToLower(title + " " + fulltext)

	type scored struct {
		name  string
		score int
		order int
	}
	var hits []scored
	for i, topic := range t.Topics {
		score := 0
		for _, keyword := range topic.Keywords {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{name: topic.Name, score: score, order: i})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].order < hits[j].order
	})

	if len(hits) > maxTopics {
		hits = hits[:maxTopics]
	}
	if len(hits) == 0 {
		return []string{GeneralTopic}
	}
	names := make([]string, len(hits))
	for i, hit := range hits {
		names[i] = hit.name
	}
	return names
}
