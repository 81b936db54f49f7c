package lsp

import (
	"sort"
	"unicode/utf8"

	"fortio.org/safecast"

	"sbx/internal/source"
)

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

// lineBounds отдаёт байтовые границы строки line (0-based) в файле.
// Конец строки не включает '\n'.
func lineBounds(file *source.File, line int) (start, end uint32) {
	contentLen := safeUint32(len(file.Content))
	if line <= 0 {
		start = 0
	} else if line-1 < len(file.LineIdx) {
		start = file.LineIdx[line-1] + 1
	} else {
		return contentLen, contentLen
	}
	end = contentLen
	if line < len(file.LineIdx) {
		end = file.LineIdx[line]
	}
	if start > end {
		start = end
	}
	return start, end
}

// offsetForPositionInFile — LSP-позиция (UTF-16) → байтовый сдвиг в файле.
func offsetForPositionInFile(file *source.File, pos position) uint32 {
	if file == nil || pos.Line < 0 || pos.Character < 0 {
		return 0
	}
	if len(file.Content) == 0 {
		return 0
	}
	if pos.Line > len(file.LineIdx) {
		return safeUint32(len(file.Content))
	}
	lineStart, lineEnd := lineBounds(file, pos.Line)
	units := 0
	off := lineStart
	for off < lineEnd {
		r, size := utf8.DecodeRune(file.Content[off:lineEnd])
		w := utf16Width(r)
		if units+w > pos.Character {
			break
		}
		units += w
		off += safeUint32(size)
		if units == pos.Character {
			break
		}
	}
	return off
}

// positionForOffsetInFile — байтовый сдвиг → LSP-позиция (UTF-16).
func positionForOffsetInFile(file *source.File, offset uint32) position {
	if file == nil {
		return position{}
	}
	contentLen := safeUint32(len(file.Content))
	if offset > contentLen {
		offset = contentLen
	}
	lineIdx := file.LineIdx
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= offset })
	lineStart, _ := lineBounds(file, line)
	if lineStart > offset {
		lineStart = offset
	}
	units := 0
	for off := lineStart; off < offset; {
		r, size := utf8.DecodeRune(file.Content[off:offset])
		if off+safeUint32(size) > offset {
			break
		}
		units += utf16Width(r)
		off += safeUint32(size)
	}
	return position{Line: line, Character: units}
}

func rangeForSpan(file *source.File, span source.Span) lspRange {
	if file == nil {
		return lspRange{}
	}
	return lspRange{
		Start: positionForOffsetInFile(file, span.Start),
		End:   positionForOffsetInFile(file, span.End),
	}
}
