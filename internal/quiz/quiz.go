// Package quiz contains the answer-extraction heuristic and scoring rules
// for the quiz flow. The extractor works over unstructured model output,
// not a strict format, so it always produces some letter.
package quiz

import (
	"regexp"
	"strings"
)

const markerLine = "правильный ответ"

var (
	letterRe       = regexp.MustCompile(`[ABCD]`)
	answerPrefixRe = regexp.MustCompile(`ОТВЕТ:\s*([ABCD])`)
)

// ExtractCorrectLetter recovers the correct-choice letter from a generated
// quiz question. Precedence:
//  1. the first line containing the marker phrase is searched for the first
//     standalone letter A-D;
//  2. otherwise the whole text is searched for "ответ: X";
//  3. otherwise "A" is returned.
//
// The fallback favors availability over correctness: grading depends on some
// letter always being produced, so this never fails.
func ExtractCorrectLetter(questionText string) string {
	for _, line := range strings.Split(questionText, "\n") {
		if !strings.Contains(strings.ToLower(line), markerLine) {
			continue
		}
		if m := letterRe.FindString(strings.ToUpper(line)); m != "" {
			return m
		}
	}

	if m := answerPrefixRe.FindStringSubmatch(strings.ToUpper(questionText)); m != nil {
		return m[1]
	}

	return "A"
}

// Evaluate reports whether the user's free-text answer names the correct
// letter. Both sides are trimmed and upper-cased, so "b", " B " and "B" all
// match a stored "B"; anything longer than the bare letter does not.
func Evaluate(answer, correct string) bool {
	return strings.ToUpper(strings.TrimSpace(answer)) == strings.ToUpper(strings.TrimSpace(correct))
}

// Grade converts a finished quiz score into a percentage and a verdict
// band. A quiz with no answered questions gets its own verdict.
func Grade(score, total int) (percent int, verdict string) {
	if total <= 0 {
		return 0, "🤔 Попробуйте еще раз!"
	}

	percent = int(float64(score)/float64(total)*100 + 0.5)
	switch {
	case percent >= 80:
		verdict = "🏆 Отлично!"
	case percent >= 60:
		verdict = "🥈 Хорошо!"
	case percent >= 40:
		verdict = "🥉 Неплохо!"
	default:
		verdict = "📚 Есть куда расти!"
	}
	return percent, verdict
}
