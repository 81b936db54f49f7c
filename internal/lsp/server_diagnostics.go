package lsp

import (
	"sort"
	"sync/atomic"
	"time"

	"sbx/internal/diag"
)

// scheduleDiagnostics (пере)взводит общий дебаунс-таймер. Каждый вызов
// получает новый номер seq; прогон с устаревшим номером публиковать не будет.
func (s *Server) scheduleDiagnostics() {
	s.mu.Lock()
	seq := atomic.AddUint64(&s.analysisSeq, 1)
	atomic.StoreUint64(&s.latestSeq, seq)
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	s.debounceTimer = time.AfterFunc(s.debounce, func() {
		s.runDiagnostics(seq)
	})
	s.mu.Unlock()
}

// runDiagnostics публикует диагностики всех открытых документов. Каждая
// публикация целиком заменяет предыдущий набор URI; для документов,
// пропавших из набора, отправляется пустой список.
func (s *Server) runDiagnostics(seq uint64) {
	if !s.isLatestSeq(seq) {
		return
	}

	s.mu.Lock()
	uris := make([]string, 0, len(s.docs))
	for uri := range s.docs {
		uris = append(uris, uri)
	}
	s.mu.Unlock()
	sort.Strings(uris)

	if len(uris) == 0 {
		s.clearPublishedDiagnostics()
		return
	}

	current := make(map[string]struct{}, len(uris))
	for _, uri := range uris {
		current[uri] = struct{}{}
	}
	s.mu.Lock()
	prev := s.published
	s.published = current
	s.mu.Unlock()

	for _, uri := range uris {
		if !s.isLatestSeq(seq) {
			return
		}
		// analysisFor читает текущую ревизию документа, так что результат
		// не бывает старее правки, которая нас запланировала. Закрытый
		// по дороге документ просто пропускаем.
		da, ok := s.analysisFor(uri)
		if !ok {
			continue
		}
		list := diagnosticsForDoc(da)
		if err := s.sendPublish(uri, list); err != nil {
			s.logf("failed to publish diagnostics: %v", err)
		}
		s.logPublishDiagnostics(uri, len(list))
	}

	for uri := range prev {
		if _, ok := current[uri]; ok {
			continue
		}
		if !s.isLatestSeq(seq) {
			return
		}
		if err := s.sendPublish(uri, nil); err != nil {
			s.logf("failed to clear diagnostics: %v", err)
		}
		s.logPublishDiagnostics(uri, 0)
	}
}

func diagnosticsForDoc(da *docAnalysis) []lspDiagnostic {
	items := da.check.Bag.Items()
	file := da.check.File
	list := make([]lspDiagnostic, 0, len(items))
	for _, d := range items {
		list = append(list, lspDiagnostic{
			Range:    rangeForSpan(file, d.Primary),
			Severity: lspSeverity(d.Severity),
			Code:     d.Code.ID(),
			Source:   "sbx",
			Message:  d.Message,
		})
	}
	return list
}

func lspSeverity(sev diag.Severity) int {
	switch sev {
	case diag.SevError:
		return 1
	case diag.SevWarning:
		return 2
	default:
		return 3
	}
}

func (s *Server) clearPublishedDiagnostics() {
	s.mu.Lock()
	if len(s.published) == 0 {
		s.mu.Unlock()
		return
	}
	prev := s.published
	s.published = make(map[string]struct{})
	s.mu.Unlock()
	for uri := range prev {
		if err := s.sendPublish(uri, nil); err != nil {
			s.logf("failed to clear diagnostics: %v", err)
		}
	}
}

func (s *Server) logPublishDiagnostics(uri string, count int) {
	if !s.currentTrace() {
		return
	}
	s.mu.Lock()
	doc, ok := s.docStateLocked(uri)
	s.mu.Unlock()
	if ok {
		s.logf("publishDiagnostics: uri=%s version=%d rev=%d diags=%d", uri, doc.version, doc.rev, count)
		return
	}
	s.logf("publishDiagnostics: uri=%s version=unknown diags=%d", uri, count)
}
