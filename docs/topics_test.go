package docs

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Every topic must be valid markdown opening with a single level-1 heading,
// so the `topic` command renders a consistent page.
func TestTopicsStructure(t *testing.T) {
	topics, err := AllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) == 0 {
		t.Fatal("no documentation topics embedded")
	}

	mdParser := goldmark.DefaultParser()
	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			doc := mdParser.Parse(text.NewReader(source))

			var h1 int
			var first *ast.Heading
			ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
					h1++
					if first == nil {
						first = h
					}
				}
				return ast.WalkContinue, nil
			})

			if h1 != 1 {
				t.Errorf("topic should carry exactly one level-1 heading, got %d", h1)
			}
			if first == nil || doc.FirstChild() != ast.Node(first) {
				t.Error("the level-1 heading should open the topic")
			}
		})
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("unknown topic should return an error")
	}
}

func TestGetTopics_Concatenates(t *testing.T) {
	all, err := AllTopics()
	if err != nil {
		t.Fatal(err)
	}
	joined, err := GetTopics(all...)
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		single, _ := GetTopic(topic)
		if len(joined) < len(single) {
			t.Errorf("concatenation shorter than topic %q alone", topic)
		}
	}
}
