package ast

import (
	"sift/internal/source"
)

// TypeSynKind classifies type-annotation syntax. Everything under a
// TypeID is type-only and subject to traversal pruning.
type TypeSynKind uint8

const (
	TypeRef TypeSynKind = iota
)

type TypeSyn struct {
	Kind    TypeSynKind
	Span    source.Span
	Payload PayloadID
}

// TypeRefSyn is a named type reference with optional generic arguments:
// `number`, `Array<string>`, `Map<string, Foo>`.
type TypeRefSyn struct {
	Name string
	Args []TypeID
}

type Types struct {
	Arena *Arena[TypeSyn]
	Refs  *Arena[TypeRefSyn]
}

func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 5
	}
	return &Types{
		Arena: NewArena[TypeSyn](capHint),
		Refs:  NewArena[TypeRefSyn](capHint),
	}
}

func (t *Types) Get(id TypeID) *TypeSyn {
	return t.Arena.Get(uint32(id))
}

func (t *Types) NewRef(name string, args []TypeID, span source.Span) TypeID {
	payload := t.Refs.Allocate(TypeRefSyn{Name: name, Args: args})
	return TypeID(t.Arena.Allocate(TypeSyn{
		Kind:    TypeRef,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

func (t *Types) Ref(id TypeID) (*TypeRefSyn, bool) {
	syn := t.Arena.Get(uint32(id))
	if syn == nil || syn.Kind != TypeRef {
		return nil, false
	}
	return t.Refs.Get(uint32(syn.Payload)), true
}
