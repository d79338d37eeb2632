package source

import "strings"

// StringWithArrows renders the source line(s) spanned by [start, end) with a
// caret (^) underline beneath the offending span. Multi-line spans render
// every line they touch, matching the original implementation's
// string_with_arrows helper.
func StringWithArrows(text string, start, end Position) string {
	var result strings.Builder

	idxStart := lastIndexBefore(text, start.Index)
	idxEnd := indexOfOrLen(text, idxStart)

	lineCount := end.Line - start.Line + 1
	for i := 0; i < lineCount; i++ {
		line := text[idxStart:idxEnd]

		colStart := start.Column
		if i > 0 {
			colStart = 0
		}
		colEnd := len(line)
		if i == lineCount-1 {
			colEnd = end.Column
		}
		if colEnd <= colStart {
			colEnd = colStart + 1
		}
		if colEnd > len(line)+1 {
			colEnd = len(line) + 1
		}

		result.WriteString(line)
		result.WriteString("\n")
		result.WriteString(strings.Repeat(" ", colStart))
		result.WriteString(strings.Repeat("^", colEnd-colStart))

		idxStart = idxEnd
		idxEnd = indexOfOrLen(text, idxStart+1)
		if i != lineCount-1 {
			result.WriteString("\n")
		}
	}

	return strings.ReplaceAll(result.String(), "\t", "")
}

func lastIndexBefore(text string, index int) int {
	i := strings.LastIndex(text[:clamp(index, len(text))], "\n")
	return i + 1
}

func indexOfOrLen(text string, from int) int {
	if from > len(text) {
		from = len(text)
	}
	i := strings.Index(text[from:], "\n")
	if i == -1 {
		return len(text)
	}
	return from + i
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
