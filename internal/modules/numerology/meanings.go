package numerology

// Meaning is a short interpretation of one numerology number
type Meaning struct {
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
}

// meanings covers 1-9 plus the master numbers
var meanings = map[int]Meaning{
	1: {
		Title:    "The Leader",
		Keywords: []string{"Independence", "Leadership", "Ambition", "Innovation", "Courage"},
	},
	2: {
		Title:    "The Peacemaker",
		Keywords: []string{"Harmony", "Cooperation", "Sensitivity", "Balance", "Partnership"},
	},
	3: {
		Title:    "The Creative",
		Keywords: []string{"Creativity", "Expression", "Joy", "Communication", "Optimism"},
	},
	4: {
		Title:    "The Builder",
		Keywords: []string{"Stability", "Hard work", "Practicality", "Organization", "Discipline"},
	},
	5: {
		Title:    "The Freedom Seeker",
		Keywords: []string{"Freedom", "Adventure", "Change", "Versatility", "Experience"},
	},
	6: {
		Title:    "The Nurturer",
		Keywords: []string{"Responsibility", "Love", "Family", "Service", "Compassion"},
	},
	7: {
		Title:    "The Seeker",
		Keywords: []string{"Spirituality", "Analysis", "Wisdom", "Introspection", "Mysticism"},
	},
	8: {
		Title:    "The Powerhouse",
		Keywords: []string{"Success", "Power", "Material wealth", "Achievement", "Authority"},
	},
	9: {
		Title:    "The Humanitarian",
		Keywords: []string{"Compassion", "Completion", "Wisdom", "Universal love", "Selflessness"},
	},
	11: {
		Title:    "The Master Intuitive",
		Keywords: []string{"Intuition", "Spiritual insight", "Enlightenment", "Idealism", "Vision"},
	},
	22: {
		Title:    "The Master Builder",
		Keywords: []string{"Master builder", "Large endeavors", "Leadership", "Transformation", "Vision"},
	},
	33: {
		Title:    "The Master Teacher",
		Keywords: []string{"Master teacher", "Compassion", "Healing", "Spiritual uplifting", "Guidance"},
	},
}

// MeaningFor returns the interpretation for a number, defaulting to 1
// for anything outside the table.
func MeaningFor(number int) Meaning {
	if m, ok := meanings[number]; ok {
		return m
	}
	return meanings[1]
}
