package lsp

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"sbx/internal/catalog"
)

const (
	completionItemKindMethod   = 2
	completionItemKindFunction = 3
	completionItemKindVariable = 6
	completionItemKindClass    = 7
	completionItemKindProperty = 10
	completionItemKindKeyword  = 14
	completionItemKindEvent    = 23
)

func (s *Server) handleCompletion(msg *rpcMessage) error {
	var params completionParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, -32602, "invalid params")
		}
	}
	da, ok := s.analysisFor(canonicalURI(params.TextDocument.URI))
	if !ok {
		return s.sendResponse(msg.ID, completionList{IsIncomplete: false, Items: nil})
	}
	result := buildCompletion(da, params.Position)
	return s.sendResponse(msg.ID, result)
}

func buildCompletion(da *docAnalysis, pos position) completionList {
	file := da.check.File
	offset := offsetForPositionInFile(file, pos)
	content := file.Content

	// Префикс набираемого слова слева от курсора.
	wordStart := offset
	for wordStart > 0 && isIdentByte(content[wordStart-1]) {
		wordStart--
	}
	prefix := string(content[wordStart:offset])

	// Точка перед словом означает обращение к члену объекта.
	if wordStart > 0 && content[wordStart-1] == '.' {
		recv := identBefore(content, wordStart-1)
		if obj, ok := catalog.LookupObject(recv); ok {
			return completionList{IsIncomplete: false, Items: rankItems(memberItems(obj), prefix)}
		}
		// Неизвестный приёмник: предлагать нечего.
		return completionList{IsIncomplete: false, Items: nil}
	}

	return completionList{IsIncomplete: false, Items: rankItems(generalItems(da), prefix)}
}

// identBefore возвращает идентификатор, заканчивающийся прямо перед end.
func identBefore(content []byte, end uint32) string {
	start := end
	for start > 0 && isIdentByte(content[start-1]) {
		start--
	}
	return string(content[start:end])
}

func isIdentByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '_':
		return true
	}
	return false
}

func memberItems(obj *catalog.Object) []completionItem {
	items := make([]completionItem, 0, len(obj.Members))
	for i := range obj.Members {
		m := &obj.Members[i]
		items = append(items, completionItem{
			Label:         m.Name,
			Kind:          memberCompletionKind(m.Kind),
			Detail:        memberDetail(m),
			Documentation: m.Doc,
		})
	}
	return items
}

func memberCompletionKind(kind catalog.MemberKind) int {
	switch kind {
	case catalog.Method:
		return completionItemKindMethod
	case catalog.Event:
		return completionItemKindEvent
	default:
		return completionItemKindProperty
	}
}

func memberDetail(m *catalog.Member) string {
	if m.Kind == catalog.Method {
		return m.Label()
	}
	return m.Kind.String()
}

// generalItems собирает ключевые слова, встроенные объекты и символы
// документа. Повторы по имени схлопываются: каталог выигрывает у документа.
func generalItems(da *docAnalysis) []completionItem {
	items := make([]completionItem, 0, 64)
	seen := make(map[string]struct{})
	add := func(item completionItem) {
		key := strings.ToLower(item.Label)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		items = append(items, item)
	}

	for _, kw := range catalog.Keywords() {
		add(completionItem{
			Label:         kw.Name,
			Kind:          completionItemKindKeyword,
			Detail:        "keyword",
			Documentation: kw.Doc,
		})
	}
	objects := catalog.Objects()
	for i := range objects {
		add(completionItem{
			Label:         objects[i].Name,
			Kind:          completionItemKindClass,
			Detail:        "object",
			Documentation: objects[i].Doc,
		})
	}
	for _, sub := range da.symbols.Subs {
		add(completionItem{
			Label:  sub.Name,
			Kind:   completionItemKindFunction,
			Detail: "Sub",
		})
	}
	for _, v := range da.symbols.Vars {
		add(completionItem{
			Label:  v.Name,
			Kind:   completionItemKindVariable,
			Detail: "variable",
		})
	}
	return items
}

// rankItems фильтрует и упорядочивает кандидатов по префиксу: без префикса
// порядок исходный, иначе нечёткий матч с сортировкой по дистанции.
func rankItems(items []completionItem, prefix string) []completionItem {
	if prefix == "" {
		for i := range items {
			items[i].SortText = fmt.Sprintf("%04d", i)
		}
		return items
	}
	labels := make([]string, len(items))
	for i := range items {
		labels[i] = items[i].Label
	}
	ranks := fuzzy.RankFindFold(prefix, labels)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]completionItem, 0, len(ranks))
	for i, rank := range ranks {
		item := items[rank.OriginalIndex]
		item.SortText = fmt.Sprintf("%04d", i)
		out = append(out, item)
	}
	return out
}
