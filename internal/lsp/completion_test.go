package lsp

import "testing"

func TestCompletionMembersAfterDot(t *testing.T) {
	da := analyzeDoc(t, "TextWindow.Wr")
	list := buildCompletion(da, position{Line: 0, Character: 13})
	if len(list.Items) == 0 {
		t.Fatal("expected member completions")
	}
	if list.Items[0].Label != "Write" {
		t.Fatalf("expected 'Write' ranked first, got %q", list.Items[0].Label)
	}
	item := findCompletion(list.Items, "WriteLine")
	if item == nil {
		t.Fatal("missing 'WriteLine' completion")
	}
	if item.Kind != completionItemKindMethod {
		t.Fatalf("unexpected kind: %d", item.Kind)
	}
	if item.Detail != "WriteLine(data)" {
		t.Fatalf("unexpected detail: %q", item.Detail)
	}
	if findCompletion(list.Items, "Clear") != nil {
		t.Fatal("'Clear' should not match prefix 'Wr'")
	}
}

func TestCompletionMembersEmptyPrefix(t *testing.T) {
	da := analyzeDoc(t, "Clock.")
	list := buildCompletion(da, position{Line: 0, Character: 6})
	if len(list.Items) == 0 {
		t.Fatal("expected all members after bare dot")
	}
	if findCompletion(list.Items, "Time") == nil {
		t.Fatalf("missing 'Time' member: %+v", list.Items)
	}
}

func TestCompletionUnknownReceiver(t *testing.T) {
	da := analyzeDoc(t, "foo.b")
	list := buildCompletion(da, position{Line: 0, Character: 5})
	if len(list.Items) != 0 {
		t.Fatalf("expected no completions for unknown receiver, got %d", len(list.Items))
	}
}

func TestCompletionKeywordRanking(t *testing.T) {
	da := analyzeDoc(t, "Wh")
	list := buildCompletion(da, position{Line: 0, Character: 2})
	if len(list.Items) == 0 {
		t.Fatal("expected keyword completions")
	}
	if list.Items[0].Label != "While" {
		t.Fatalf("expected 'While' ranked first, got %q", list.Items[0].Label)
	}
	if item := findCompletion(list.Items, "EndWhile"); item == nil {
		t.Fatal("missing fuzzy match 'EndWhile'")
	}
}

func TestCompletionIncludesDocumentSymbols(t *testing.T) {
	src := "total = 1\nSub Greet\nEndSub\n"
	da := analyzeDoc(t, src)
	list := buildCompletion(da, position{Line: 3, Character: 0})

	if item := findCompletion(list.Items, "While"); item == nil || item.Kind != completionItemKindKeyword {
		t.Fatalf("missing keyword completion: %+v", item)
	}
	if item := findCompletion(list.Items, "TextWindow"); item == nil || item.Kind != completionItemKindClass {
		t.Fatalf("missing object completion: %+v", item)
	}
	if item := findCompletion(list.Items, "Greet"); item == nil || item.Kind != completionItemKindFunction {
		t.Fatalf("missing sub completion: %+v", item)
	}
	if item := findCompletion(list.Items, "total"); item == nil || item.Kind != completionItemKindVariable {
		t.Fatalf("missing variable completion: %+v", item)
	}
}

func TestCompletionMemberKinds(t *testing.T) {
	da := analyzeDoc(t, "TextWindow.")
	list := buildCompletion(da, position{Line: 0, Character: 11})
	if item := findCompletion(list.Items, "Title"); item == nil || item.Kind != completionItemKindProperty {
		t.Fatalf("expected property kind for 'Title': %+v", item)
	}
	if item := findCompletion(list.Items, "Read"); item == nil || item.Kind != completionItemKindMethod {
		t.Fatalf("expected method kind for 'Read': %+v", item)
	}
}
