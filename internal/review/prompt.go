package review

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert Ballerina connector maintainer. Your job is to rewrite source files so they fully conform to the review guidelines provided with each file.

Rules:
1. Apply only changes the guidelines require. Leave conforming code exactly as it is.
2. Preserve the file's observable behavior and its public API surface.
3. Do not invent functionality, dependencies, or configuration that is not already in the file.
4. Keep the original line-ending style and file-level structure.
5. If the file already conforms to every guideline, return it byte-for-byte unchanged.

You MUST respond with ONLY the complete rewritten file content. No markdown fences, no explanation, no preamble. Your entire response replaces the file on disk.`

// SystemPrompt returns the system prompt for the LLM.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt assembles the per-file prompt from the guideline text and
// one file's full content.
func BuildUserPrompt(guideline, path, content string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Rewrite the file %s to conform to the guidelines below.\n", path)

	b.WriteString("\n--- BEGIN GUIDELINES ---\n")
	b.WriteString(guideline)
	b.WriteString("\n--- END GUIDELINES ---\n")

	b.WriteString("\n--- BEGIN FILE ---\n")
	b.WriteString(content)
	b.WriteString("\n--- END FILE ---\n")

	return b.String()
}

// CleanResponse normalizes a provider completion into file content. Models
// occasionally wrap output in markdown fences despite instructions; those
// are stripped. An empty body is an error, never written to disk.
func CleanResponse(content string) (string, error) {
	cleaned := strings.TrimSpace(content)

	if strings.HasPrefix(cleaned, "```") {
		lines := strings.Split(cleaned, "\n")
		if len(lines) >= 2 {
			// Remove first line (```ballerina) and last line (```)
			start := 1
			end := len(lines)
			if strings.TrimSpace(lines[end-1]) == "```" {
				end = end - 1
			}
			cleaned = strings.Join(lines[start:end], "\n")
		}
	}

	if strings.TrimSpace(cleaned) == "" {
		return "", fmt.Errorf("empty rewrite response")
	}

	if !strings.HasSuffix(cleaned, "\n") {
		cleaned += "\n"
	}
	return cleaned, nil
}
