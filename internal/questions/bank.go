package questions

// Used when no LLM is configured or generation fails.
var fallback = map[Format]map[Level][]string{
	Letter: {
		Basic:  {"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"},
		Medium: {"K", "L", "M", "N", "O", "P", "Q", "R", "S", "T"},
		Hard:   {"BZX", "QRM", "WKP", "YVF", "HJN", "DLT", "CGS", "NXZ", "PMQ", "VWY"},
	},
	Word: {
		Basic: {"cat", "dog", "house", "book", "tree", "fish", "bird", "car", "sun", "moon"},
		Medium: {
			"elephant", "computer", "mountain", "library", "ocean",
			"butterfly", "telephone", "umbrella", "calendar", "diamond",
		},
		Hard: {
			"extraordinary", "sophisticated", "phenomenon", "magnificent", "revolutionary",
			"philosophical", "unprecedented", "enthusiastic", "determination", "consciousness",
		},
	},
	Sentence: {
		Basic: {
			"The cat sits on the mat.",
			"I like to read books.",
			"The sun is bright today.",
			"She walks to school.",
			"They play in the park.",
			"He drinks water.",
			"The bird flies high.",
			"We eat breakfast together.",
			"The dog runs fast.",
			"The flowers are beautiful.",
		},
		Medium: {
			"The curious student asked many interesting questions during the lecture.",
			"She carefully examined the ancient artifact in the museum.",
			"The chef prepared a delicious meal using fresh ingredients.",
			"The mountain climbers reached the summit before sunset.",
			"The musician practiced diligently for the upcoming concert.",
			"The scientist conducted experiments in the laboratory.",
			"The artist painted a stunning landscape of the valley.",
			"The detective solved the mysterious case last week.",
			"The gardener planted colorful flowers in the garden.",
			"The writer published her first novel this year.",
		},
		Hard: {
			"Despite the challenging circumstances, she persevered and achieved her goals through dedication and hard work.",
			"The revolutionary technological advancement transformed the way people communicate across the globe.",
			"The professor's comprehensive analysis of the complex phenomenon led to groundbreaking discoveries.",
			"The intricate relationship between environmental factors and economic development requires careful consideration.",
			"The symphony orchestra delivered a magnificent performance that captivated the audience throughout the evening.",
			"The archaeological expedition uncovered remarkable artifacts that shed light on ancient civilizations.",
			"The innovative solution proposed by the team addressed multiple aspects of the persistent problem.",
			"The documentary film explored the profound impact of climate change on indigenous communities.",
			"The philosophical debate about consciousness continues to intrigue scholars across different disciplines.",
			"The unprecedented collaboration between scientists worldwide accelerated the development of crucial research.",
		},
	},
}

// Fallback returns a copy of the built-in items for format and level.
func Fallback(format Format, level Level) []string {
	return append([]string(nil), fallback[format][level]...)
}
