package lsp

import (
	"encoding/json"
	"fmt"
	"strings"

	"sbx/internal/catalog"
	"sbx/internal/source"
)

func (s *Server) handleHover(msg *rpcMessage) error {
	var params hoverParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	da, ok := s.analysisFor(canonicalURI(params.TextDocument.URI))
	if !ok {
		return s.sendResponse(msg.ID, nil)
	}
	result := buildHover(da, params.Position)
	return s.sendResponse(msg.ID, result)
}

func buildHover(da *docAnalysis, pos position) *hover {
	file := da.check.File
	offset := offsetForPositionInFile(file, pos)
	word, span, ok := wordAt(file, offset)
	if !ok {
		return nil
	}

	// Слово после точки: член встроенного объекта.
	if span.Start > 0 && file.Content[span.Start-1] == '.' {
		recv := identBefore(file.Content, span.Start-1)
		if obj, found := catalog.LookupObject(recv); found {
			if m, found := obj.LookupMember(word); found {
				return hoverResult(file, span, obj.Name+"."+m.Label(), m.Doc)
			}
		}
		return nil
	}

	if obj, found := catalog.LookupObject(word); found {
		return hoverResult(file, span, obj.Name, obj.Doc)
	}
	if kw, found := catalog.LookupKeyword(word); found {
		return hoverResult(file, span, kw.Name, kw.Doc)
	}
	for _, sub := range da.symbols.Subs {
		if strings.EqualFold(sub.Name, word) {
			return hoverResult(file, span, "Sub "+sub.Name, fmt.Sprintf("Defined on line %d", sub.Line))
		}
	}
	return nil
}

func hoverResult(file *source.File, span source.Span, signature, doc string) *hover {
	lines := make([]string, 0, 2)
	lines = append(lines, "```smallbasic\n"+signature+"\n```")
	if doc != "" {
		lines = append(lines, doc)
	}
	hoverRange := rangeForSpan(file, span)
	return &hover{
		Contents: markupContent{
			Kind:  "markdown",
			Value: strings.Join(lines, "\n\n"),
		},
		Range: &hoverRange,
	}
}

// wordAt возвращает идентификатор вокруг offset и его span.
func wordAt(file *source.File, offset uint32) (string, source.Span, bool) {
	content := file.Content
	n := safeUint32(len(content))
	if offset > n {
		offset = n
	}
	start := offset
	for start > 0 && isIdentByte(content[start-1]) {
		start--
	}
	end := offset
	for end < n && isIdentByte(content[end]) {
		end++
	}
	if start == end {
		return "", source.Span{}, false
	}
	span := source.Span{File: file.ID, Start: start, End: end}
	return string(content[start:end]), span, true
}
