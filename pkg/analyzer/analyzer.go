// Package analyzer scores and condenses resume text. Everything here is
// pure and deterministic: same input, same output, no I/O.
package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// DefaultSummaryChars is the summary budget callers use for prompts.
	DefaultSummaryChars = 600

	maxAchievements   = 8
	maxSummaryLines   = 10
	maxRelevantLines  = 7
	minRelevantLine   = 10
	keywordWeight     = 2
	digitBoost        = 2
	verbBoost         = 3
	summaryFallback   = 5
)

// Analysis is the structured breakdown of one resume.
type Analysis struct {
	Skills       []string `json:"skills"`
	Achievements []string `json:"achievements"`
	Summary      string   `json:"summary"`
	FullText     string   `json:"fullText"`
}

func splitLines(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// Summarize picks the information-dense lines of a resume, in original
// order, until the joined text would exceed maxChars. Lines qualify when
// they carry a year, a number or percentage, are long, or look like bullets.
func Summarize(text string, maxChars int) string {
	if text == "" {
		return ""
	}
	lines := splitLines(text)

	var important []string
	total := 0
	for _, line := range lines {
		if !(yearRe.MatchString(line) || numRe.MatchString(line) || len(line) > 60 ||
			strings.Contains(line, "-") || strings.Contains(line, "•")) {
			continue
		}
		add := len(line)
		if len(important) > 0 {
			add += len(" \n")
		}
		if total+add > maxChars {
			// The crossing line is excluded
			break
		}
		important = append(important, line)
		total += add
	}

	var summary string
	if len(important) > 0 {
		summary = strings.Join(important, " \n")
	} else {
		n := summaryFallback
		if len(lines) < n {
			n = len(lines)
		}
		summary = strings.Join(lines[:n], " \n")
	}

	if len(summary) > maxChars {
		runes := []rune(summary)
		if len(runes) > maxChars {
			runes = runes[:maxChars]
		}
		summary = string(runes) + "..."
	}
	return summary
}

// Analyze extracts skills, achievement lines and a plain summary from the
// full resume text.
func Analyze(text string) Analysis {
	analysis := Analysis{
		Skills:       []string{},
		Achievements: []string{},
		FullText:     text,
	}
	if text == "" {
		return analysis
	}

	// Skills: vocabulary matches over the whole text, case-folded, deduplicated
	seen := make(map[string]bool)
	for _, match := range skillRe.FindAllString(text, -1) {
		s := strings.ToLower(match)
		if !seen[s] {
			seen[s] = true
			analysis.Skills = append(analysis.Skills, s)
		}
	}

	lines := splitLines(text)

	// Achievements: action verb or quantitative signal, long enough, first 8
	for _, line := range lines {
		if len(analysis.Achievements) >= maxAchievements {
			break
		}
		if (actionVerbRe.MatchString(line) || quantRe.MatchString(line)) && len(line) > 15 {
			analysis.Achievements = append(analysis.Achievements, line)
		}
	}

	// Summary: the first non-bullet prose lines
	var summaryLines []string
	for _, line := range lines {
		if len(summaryLines) >= maxSummaryLines {
			break
		}
		if len(line) > 20 && !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "•") {
			summaryLines = append(summaryLines, line)
		}
	}
	analysis.Summary = strings.Join(summaryLines, "\n")

	return analysis
}

// ExtractRelevant ranks resume lines against the job context and returns
// the top ones, newline-joined. Ties keep their original relative order.
func ExtractRelevant(text, jobContext string) string {
	if text == "" || jobContext == "" {
		return ""
	}

	contextLower := strings.ToLower(jobContext)
	seen := make(map[string]bool)
	var keywords []string
	for _, match := range contextRe.FindAllString(contextLower, -1) {
		k := strings.ToLower(match)
		if !seen[k] {
			seen[k] = true
			keywords = append(keywords, k)
		}
	}

	keywordRes := make([]*regexp.Regexp, len(keywords))
	for i, k := range keywords {
		keywordRes[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`)
	}

	type scoredLine struct {
		line  string
		score int
	}
	var scored []scoredLine
	for _, line := range splitLines(text) {
		if len(line) <= minRelevantLine {
			continue
		}
		lineLower := strings.ToLower(line)

		score := 0
		for _, re := range keywordRes {
			score += keywordWeight * len(re.FindAllString(lineLower, -1))
		}
		if digitRe.MatchString(line) {
			score += digitBoost
		}
		if relevanceVerbRe.MatchString(line) {
			score += verbBoost
		}

		if score > 0 {
			scored = append(scored, scoredLine{line: line, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > maxRelevantLines {
		scored = scored[:maxRelevantLines]
	}

	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.line
	}
	return strings.Join(out, "\n")
}
