package services

import "strings"

// answerKeyMarker is the literal marker the generation prompt asks for. The
// split below is deliberately the same fragile marker scan that produced the
// existing saved quiz files; do not replace it with a smarter parser.
const answerKeyMarker = "Answer Key"

// answerKeyHeading is the exact heading line the grader skips past when the
// key file still contains it.
const answerKeyHeading = "### Answer Key"

// splitQuiz separates generated output into a questions section and an
// answer-key section at the first line containing the marker. Without a
// marker the whole output is questions and the key is empty.
func splitQuiz(output string) (questions, answerKey string) {
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		if strings.Contains(line, answerKeyMarker) {
			questions = strings.TrimRight(strings.Join(lines[:i], "\n"), "\n")
			answerKey = strings.Join(lines[i:], "\n")
			return questions, answerKey
		}
	}
	return output, ""
}

// parseAnswerKey scans non-empty lines for the pattern "<letter>)" and keeps
// the text before the first ")" of each matching line, trimmed and
// uppercased, as the key token for the next question in order. Tokens may
// look like "1. B" or "B"; grading compares against their last character.
func parseAnswerKey(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	start := 0
	for i, line := range lines {
		if line == answerKeyHeading {
			start = i + 1
			break
		}
	}

	var keys []string
	for _, line := range lines[start:] {
		if idx := strings.Index(line, ")"); idx >= 0 {
			keys = append(keys, strings.ToUpper(strings.TrimSpace(line[:idx])))
		}
	}
	return keys
}

// gradeResponses scores each response line against the key. A response line
// is "name, ans1, ans2, ...". Scoring zips answers with keys, truncating to
// the shorter sequence, while Total always reports the full key length: a
// short submission is scored against a denominator it did not fully attempt.
// This matches the existing grading behavior exactly.
func gradeResponses(keys []string, responseText string) []StudentResult {
	var results []StudentResult
	for _, line := range strings.Split(responseText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		student := strings.TrimSpace(parts[0])
		var answers []string
		for _, p := range parts[1:] {
			answers = append(answers, strings.ToUpper(strings.TrimSpace(p)))
		}

		n := len(answers)
		if len(keys) < n {
			n = len(keys)
		}

		result := StudentResult{Student: student, Total: len(keys)}
		for i := 0; i < n; i++ {
			expected := lastChar(keys[i])
			correct := answers[i] != "" && answers[i] == expected
			if correct {
				result.Score++
			}
			result.Breakdown = append(result.Breakdown, QuestionResult{
				Number:   i + 1,
				Given:    answers[i],
				Expected: expected,
				Correct:  correct,
			})
		}
		results = append(results, result)
	}
	return results
}

func lastChar(s string) string {
	if s == "" {
		return ""
	}
	return s[len(s)-1:]
}
