package lsp

import (
	"bufio"
	"encoding/json"
	"testing"

	"sbx/internal/analysis"
	"sbx/internal/driver"
)

func analyzeDoc(t *testing.T, content string) *docAnalysis {
	t.Helper()
	check := driver.CheckSource("test.sb", []byte(content), 100)
	return &docAnalysis{
		check:   check,
		symbols: analysis.CollectSymbols(check.File),
	}
}

func findCompletion(items []completionItem, label string) *completionItem {
	for i := range items {
		if items[i].Label == label {
			return &items[i]
		}
	}
	return nil
}

func readOutMessage(t *testing.T, reader *bufio.Reader) rpcMessage {
	t.Helper()
	payload, err := readMessage(reader)
	if err != nil {
		t.Fatalf("read message: %v", err)
	}
	var msg rpcMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		t.Fatalf("decode message: %v", err)
	}
	return msg
}
