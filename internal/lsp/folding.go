package lsp

import (
	"encoding/json"
	"sort"
)

func (s *Server) handleFoldingRange(msg *rpcMessage) error {
	var params foldingRangeParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	da, ok := s.analysisFor(canonicalURI(params.TextDocument.URI))
	if !ok {
		return s.sendResponse(msg.ID, []foldingRange{})
	}
	return s.sendResponse(msg.ID, buildFoldingRanges(da))
}

// buildFoldingRanges сворачивает каждую сматченную пару блоков от строки
// открывашки до строки закрывашки. Однострочные пары не сворачиваются.
func buildFoldingRanges(da *docAnalysis) []foldingRange {
	pairs := da.check.Balance.Pairs
	ranges := make([]foldingRange, 0, len(pairs))
	for _, pair := range pairs {
		start := int(pair.Open.Line) - 1
		end := int(pair.Close.Line) - 1
		if start >= end {
			continue
		}
		ranges = append(ranges, foldingRange{StartLine: start, EndLine: end})
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].StartLine == ranges[j].StartLine {
			return ranges[i].EndLine < ranges[j].EndLine
		}
		return ranges[i].StartLine < ranges[j].StartLine
	})
	return ranges
}
