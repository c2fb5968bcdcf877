package ast

import (
	"sift/internal/source"
)

// ImportStmt records a top-level `import ... from "spec";`. Only the
// shape that flips a file into module mode matters to the engine; the
// imported names are kept for completeness.
type ImportStmt struct {
	Names []string
	From  string
	Span  source.Span
}

// ExportStmt wraps an exported declaration: `export <stmt>`.
type ExportStmt struct {
	Inner StmtID
}

func (s *Stmts) NewImport(names []string, from string, span source.Span) StmtID {
	payload := s.Imports.Allocate(ImportStmt{Names: names, From: from, Span: span})
	return s.New(StmtImport, span, PayloadID(payload))
}

func (s *Stmts) Import(id StmtID) (*ImportStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtImport {
		return nil, false
	}
	return s.Imports.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewExport(inner StmtID, span source.Span) StmtID {
	payload := s.Exports.Allocate(ExportStmt{Inner: inner})
	return s.New(StmtExport, span, PayloadID(payload))
}

func (s *Stmts) Export(id StmtID) (*ExportStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtExport {
		return nil, false
	}
	return s.Exports.Get(uint32(stmt.Payload)), true
}
