package lsp

import "unicode/utf8"

// applyChanges накладывает правки didChange по порядку. Правка без Range
// означает полную замену текста.
func applyChanges(text string, changes []textDocumentContentChangeEvent) string {
	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			continue
		}
		start := offsetForPosition(text, change.Range.Start)
		end := offsetForPosition(text, change.Range.End)
		if end < start {
			end = start
		}
		text = text[:start] + change.Text + text[end:]
	}
	return text
}

// offsetForPosition переводит LSP-позицию (строка + UTF-16 колонка) в байтовый
// сдвиг. Позиция за концом строки прижимается к её концу, за концом текста —
// к концу текста.
func offsetForPosition(text string, pos position) int {
	if pos.Line < 0 || pos.Character < 0 {
		return 0
	}
	i := lineStartIndex(text, pos.Line)
	if i < 0 {
		return len(text)
	}
	units := 0
	for i < len(text) && text[i] != '\n' {
		r, size := utf8.DecodeRuneInString(text[i:])
		w := utf16Width(r)
		if units+w > pos.Character {
			break
		}
		units += w
		i += size
		if units == pos.Character {
			break
		}
	}
	return i
}

// lineStartIndex возвращает байтовый сдвиг начала строки line (0-based)
// или -1, если строк меньше.
func lineStartIndex(text string, line int) int {
	i := 0
	for n := 0; n < line; n++ {
		for i < len(text) && text[i] != '\n' {
			i++
		}
		if i == len(text) {
			return -1
		}
		i++ // пропускаем '\n'
	}
	return i
}

// utf16Width — сколько UTF-16 единиц занимает руна: 2 для суррогатных пар.
func utf16Width(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}
