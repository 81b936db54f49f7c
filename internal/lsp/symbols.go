package lsp

import (
	"encoding/json"
	"sort"

	"sbx/internal/source"
)

const (
	symbolKindFunction = 12
	symbolKindVariable = 13
)

func (s *Server) handleDocumentSymbol(msg *rpcMessage) error {
	var params documentSymbolParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	da, ok := s.analysisFor(canonicalURI(params.TextDocument.URI))
	if !ok {
		return s.sendResponse(msg.ID, []documentSymbol{})
	}
	return s.sendResponse(msg.ID, buildDocumentSymbols(da))
}

// buildDocumentSymbols — плоский список: подпрограммы целиком от Sub до
// EndSub, переменные по месту первого присваивания, всё в порядке строк.
func buildDocumentSymbols(da *docAnalysis) []documentSymbol {
	file := da.check.File
	out := make([]documentSymbol, 0, len(da.symbols.Subs)+len(da.symbols.Vars))

	for _, sub := range da.symbols.Subs {
		full := source.Span{
			File:  file.ID,
			Start: file.LineSpan(sub.Line).Start,
			End:   file.LineSpan(sub.EndLine).End,
		}
		out = append(out, documentSymbol{
			Name:           sub.Name,
			Kind:           symbolKindFunction,
			Range:          rangeForSpan(file, full),
			SelectionRange: rangeForSpan(file, sub.Span),
		})
	}
	for _, v := range da.symbols.Vars {
		r := rangeForSpan(file, v.Span)
		out = append(out, documentSymbol{
			Name:           v.Name,
			Kind:           symbolKindVariable,
			Range:          r,
			SelectionRange: r,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Range.Start.Line != out[j].Range.Start.Line {
			return out[i].Range.Start.Line < out[j].Range.Start.Line
		}
		return out[i].Range.Start.Character < out[j].Range.Start.Character
	})
	return out
}
