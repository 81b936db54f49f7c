package lsp

import (
	"sbx/internal/analysis"
	"sbx/internal/driver"
)

// docState — открытый документ. rev растёт на каждом didOpen/didChange/didSave
// и отличает содержимое надёжнее клиентской version: didSave с includeText
// может подменить текст, не меняя version.
type docState struct {
	text    string
	version int
	rev     int64
}

// docKey идентифицирует конкретную ревизию документа в кеше анализа.
type docKey struct {
	uri string
	rev int64
}

// docAnalysis — всё, что сервер знает об одной ревизии документа.
type docAnalysis struct {
	check   *driver.CheckResult
	symbols analysis.DocumentSymbols
}

// analysisFor возвращает анализ текущей ревизии документа, считая его
// заново только если ревизия ещё не в кеше.
func (s *Server) analysisFor(uri string) (*docAnalysis, bool) {
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok {
		s.mu.Unlock()
		return nil, false
	}
	key := docKey{uri: uri, rev: doc.rev}
	text := doc.text
	maxDiagnostics := s.maxDiagnostics
	s.mu.Unlock()

	if cached, ok := s.analyses.Get(key); ok {
		return cached, true
	}

	check := driver.CheckSource(uriToPath(uri), []byte(text), maxDiagnostics)
	da := &docAnalysis{
		check:   check,
		symbols: analysis.CollectSymbols(check.File),
	}
	s.analyses.Add(key, da)
	return da, true
}

func (s *Server) docStateLocked(uri string) (docState, bool) {
	doc, ok := s.docs[uri]
	return doc, ok
}

func (s *Server) currentTrace() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.traceLSP
}
