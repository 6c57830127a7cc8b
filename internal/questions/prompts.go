package questions

import "fmt"

var complexity = map[Level]string{
	Basic:  "simple",
	Medium: "intermediate",
	Hard:   "advanced",
}

func prompt(format Format, level Level) string {
	c := complexity[level]
	switch format {
	case Letter:
		if level == Hard {
			return `Generate 10 unique advanced combinations of English letters (e.g., "BZX", "QRM"). Each combination should be on a new line. Do not include any additional text or explanations.`
		}
		return fmt.Sprintf("Generate 10 unique %s English letters. Each letter should be on a new line. Do not include any additional text or explanations.", c)
	case Word:
		return fmt.Sprintf("Generate 10 unique %s English words. Each word should be on a new line. Do not include any additional text or explanations.", c)
	default:
		return fmt.Sprintf("Generate 10 unique %s English sentences. Each sentence should be grammatically correct and on a new line. The sentences should vary in structure and vocabulary. Do not include any additional text or explanations.", c)
	}
}
