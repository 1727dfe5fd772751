package suggest

import (
	"testing"

	"github.com/softkey/typeassist/pkg/model"
)

func TestComplete(t *testing.T) {
	m := model.Build([]string{
		"the theme park",
		"the theory holds",
		"the thesis is done",
		"theme and theory",
	})
	c := NewCompleter(m)

	got := c.Complete("the", 10)

	// Exact match of the prefix is excluded; the rest rank by unigram count.
	if len(got) != 3 {
		t.Fatalf("Complete(\"the\") returned %d suggestions, want 3", len(got))
	}
	for _, s := range got {
		if s.Word == "the" {
			t.Errorf("exact prefix match %q should be excluded", s.Word)
		}
	}
	if got[0].Word != "theme" && got[0].Word != "theory" {
		t.Errorf("top suggestion = %q, want one of the count-2 words", got[0].Word)
	}
	if got[0].Frequency < got[1].Frequency || got[1].Frequency < got[2].Frequency {
		t.Errorf("suggestions not in descending frequency order: %v", got)
	}
}

func TestCompleteLimit(t *testing.T) {
	c := NewCompleter(newTestModel())

	if got := c.Complete("l", 1); len(got) > 1 {
		t.Errorf("Complete with limit 1 returned %d suggestions", len(got))
	}
}

func TestCompleteNoMatches(t *testing.T) {
	c := NewCompleter(newTestModel())

	if got := c.Complete("zzz", 5); len(got) != 0 {
		t.Errorf("Complete on unmatched prefix returned %v", got)
	}
	if got := c.Complete("", 5); len(got) != 0 {
		t.Errorf("Complete on empty prefix returned %v", got)
	}
}

func TestCompleteIsCaseInsensitive(t *testing.T) {
	c := NewCompleter(newTestModel())

	got := c.Complete("PY", 5)
	if len(got) != 1 || got[0].Word != "python" {
		t.Errorf("Complete(\"PY\") = %v, want [python]", got)
	}
}
