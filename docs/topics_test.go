package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// topicsInReadme extracts the topic list from readme.md.
func topicsInReadme(t *testing.T) []string {
	t.Helper()

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		line := scanner.Text()
		matches := topicRegex.FindStringSubmatch(line)
		if len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the code:
	// every topic listed in readme.md loads, and every .md file (except
	// readme.md itself) is listed in readme.md.
	listed := topicsInReadme(t)

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		found := false
		for _, topic := range listed {
			if topic == base {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}
}

// knownCommands are the konto subcommands documentation examples may invoke.
var knownCommands = map[string]bool{
	"trades":  true,
	"export":  true,
	"summary": true,
	"check":   true,
	"topic":   true,
}

func TestShellExamplesUseKnownCommands(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			mdParser := goldmark.DefaultParser()
			root := mdParser.Parse(text.NewReader(content))

			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				fcb, ok := n.(*ast.FencedCodeBlock)
				if !ok || fcb.Info == nil {
					return ast.WalkContinue, nil
				}
				if lang := string(fcb.Info.Segment.Value(content)); lang != "sh" {
					return ast.WalkContinue, nil
				}

				for i := 0; i < fcb.Lines().Len(); i++ {
					seg := fcb.Lines().At(i)
					line := strings.TrimSpace(string(seg.Value(content)))
					if !strings.HasPrefix(line, "konto ") {
						continue
					}
					fields := strings.Fields(line)
					if len(fields) < 2 || !knownCommands[fields[1]] {
						t.Errorf("%s: shell example invokes unknown subcommand: %q", file, line)
					}
				}
				return ast.WalkContinue, nil
			})
		})
	}
}
