package lsp

import "encoding/json"

func (s *Server) handleDidChangeConfiguration(msg *rpcMessage) error {
	if len(msg.Params) == 0 {
		return nil
	}
	var params didChangeConfigurationParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return nil
	}
	s.applySettings(params.Settings)
	s.scheduleDiagnostics()
	return nil
}

func (s *Server) applySettings(raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	var settings lspSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if settings.Sbx.MaxDiagnostics != nil && *settings.Sbx.MaxDiagnostics > 0 {
		s.maxDiagnostics = *settings.Sbx.MaxDiagnostics
	}
	if settings.Sbx.LSP.Trace != nil {
		s.traceLSP = *settings.Sbx.LSP.Trace
	}
}
