package lint

import (
	"sift/internal/ast"
)

// Visitor is a partial handler table over node kinds: a rule fills in
// only the hooks it cares about and the walk supplies "descend, report
// nothing" for everything else. Hooks fire pre-order, before children;
// siblings are visited in source order.
//
// Type-only syntax (type aliases, interface bodies, type annotations)
// is pruned before descent unless VisitTypes is set. Most rules reason
// about runtime semantics, and type-level syntax shares node shapes
// with value-level syntax, so pruning is the default policy rather
// than an optimization.
type Visitor struct {
	builder *ast.Builder

	// VisitTypes opts in to descending into type-annotation subtrees.
	VisitTypes bool

	VarDecl   func(ast.StmtID, *ast.VarDeclStmt)
	ExprStmt  func(ast.StmtID, *ast.ExprStmt)
	Block     func(ast.StmtID, *ast.BlockStmt)
	If        func(ast.StmtID, *ast.IfStmt)
	While     func(ast.StmtID, *ast.WhileStmt)
	For       func(ast.StmtID, *ast.ForStmt)
	Return    func(ast.StmtID, *ast.ReturnStmt)
	FnDecl    func(ast.StmtID, *ast.FnDeclStmt)
	Debugger  func(ast.StmtID)
	TypeAlias func(ast.StmtID, *ast.TypeAliasStmt)
	Interface func(ast.StmtID, *ast.InterfaceStmt)
	Import    func(ast.StmtID, *ast.ImportStmt)
	Export    func(ast.StmtID, *ast.ExportStmt)

	Ident   func(ast.ExprID, *ast.IdentExpr)
	Number  func(ast.ExprID, *ast.NumberExpr)
	String  func(ast.ExprID, *ast.StringExpr)
	Bool    func(ast.ExprID, *ast.BoolExpr)
	Null    func(ast.ExprID)
	Unary   func(ast.ExprID, *ast.UnaryExpr)
	Binary  func(ast.ExprID, *ast.BinaryExpr)
	Assign  func(ast.ExprID, *ast.AssignExpr)
	Call    func(ast.ExprID, *ast.CallExpr)
	Member  func(ast.ExprID, *ast.MemberExpr)
	TypeRef func(ast.TypeID, *ast.TypeRefSyn)
}

// NewVisitor binds a visitor to the builder it will read from.
func NewVisitor(builder *ast.Builder) *Visitor {
	return &Visitor{builder: builder}
}

// WalkProgram visits every reachable node exactly once. It never
// panics on a well-formed tree, and a missing or empty root visits
// nothing. Module and script programs share the same dispatch; the
// variant only picks the entry root.
func (v *Visitor) WalkProgram(program Program) {
	root := program.Root()
	if root == nil {
		return
	}
	for _, id := range root.Stmts {
		v.walkStmt(id)
	}
}

func (v *Visitor) walkStmt(id ast.StmtID) {
	if !id.IsValid() {
		return
	}
	stmt := v.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}

	switch stmt.Kind {
	case ast.StmtVarDecl:
		payload, ok := v.builder.Stmts.VarDecl(id)
		if !ok {
			return
		}
		if v.VarDecl != nil {
			v.VarDecl(id, payload)
		}
		for _, declID := range payload.Decls {
			decl := v.builder.Stmts.Declarator(declID)
			if decl == nil {
				continue
			}
			if v.VisitTypes {
				v.walkType(decl.Type)
			}
			v.walkExpr(decl.Init)
		}

	case ast.StmtExpr:
		payload, ok := v.builder.Stmts.ExprStmt(id)
		if !ok {
			return
		}
		if v.ExprStmt != nil {
			v.ExprStmt(id, payload)
		}
		v.walkExpr(payload.Expr)

	case ast.StmtBlock:
		payload, ok := v.builder.Stmts.Block(id)
		if !ok {
			return
		}
		if v.Block != nil {
			v.Block(id, payload)
		}
		for _, child := range payload.Body {
			v.walkStmt(child)
		}

	case ast.StmtIf:
		payload, ok := v.builder.Stmts.If(id)
		if !ok {
			return
		}
		if v.If != nil {
			v.If(id, payload)
		}
		v.walkExpr(payload.Cond)
		v.walkStmt(payload.Then)
		v.walkStmt(payload.Else)

	case ast.StmtWhile:
		payload, ok := v.builder.Stmts.While(id)
		if !ok {
			return
		}
		if v.While != nil {
			v.While(id, payload)
		}
		v.walkExpr(payload.Cond)
		v.walkStmt(payload.Body)

	case ast.StmtFor:
		payload, ok := v.builder.Stmts.For(id)
		if !ok {
			return
		}
		if v.For != nil {
			v.For(id, payload)
		}
		v.walkStmt(payload.Init)
		v.walkExpr(payload.Cond)
		v.walkExpr(payload.Post)
		v.walkStmt(payload.Body)

	case ast.StmtReturn:
		payload, ok := v.builder.Stmts.Return(id)
		if !ok {
			return
		}
		if v.Return != nil {
			v.Return(id, payload)
		}
		v.walkExpr(payload.Value)

	case ast.StmtFnDecl:
		payload, ok := v.builder.Stmts.FnDecl(id)
		if !ok {
			return
		}
		if v.FnDecl != nil {
			v.FnDecl(id, payload)
		}
		if v.VisitTypes {
			for _, paramID := range payload.Params {
				if param := v.builder.Stmts.Param(paramID); param != nil {
					v.walkType(param.Type)
				}
			}
			v.walkType(payload.Return)
		}
		v.walkStmt(payload.Body)

	case ast.StmtDebugger:
		if v.Debugger != nil {
			v.Debugger(id)
		}

	case ast.StmtTypeAlias:
		// Type-only subtree: the hook still fires so a rule can flag
		// the declaration itself, but descent needs VisitTypes.
		payload, ok := v.builder.Stmts.TypeAlias(id)
		if !ok {
			return
		}
		if v.TypeAlias != nil {
			v.TypeAlias(id, payload)
		}
		if v.VisitTypes {
			v.walkType(payload.Aliased)
		}

	case ast.StmtInterface:
		payload, ok := v.builder.Stmts.Interface(id)
		if !ok {
			return
		}
		if v.Interface != nil {
			v.Interface(id, payload)
		}
		if v.VisitTypes {
			for _, member := range payload.Members {
				v.walkType(member.Type)
			}
		}

	case ast.StmtImport:
		payload, ok := v.builder.Stmts.Import(id)
		if !ok {
			return
		}
		if v.Import != nil {
			v.Import(id, payload)
		}

	case ast.StmtExport:
		payload, ok := v.builder.Stmts.Export(id)
		if !ok {
			return
		}
		if v.Export != nil {
			v.Export(id, payload)
		}
		v.walkStmt(payload.Inner)

	default:
		// Unknown kinds are a no-op so new statement kinds never break
		// existing rules.
	}
}

func (v *Visitor) walkExpr(id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	expr := v.builder.Exprs.Get(id)
	if expr == nil {
		return
	}

	switch expr.Kind {
	case ast.ExprIdent:
		if payload, ok := v.builder.Exprs.Ident(id); ok && v.Ident != nil {
			v.Ident(id, payload)
		}

	case ast.ExprNumber:
		if payload, ok := v.builder.Exprs.Number(id); ok && v.Number != nil {
			v.Number(id, payload)
		}

	case ast.ExprString:
		if payload, ok := v.builder.Exprs.String(id); ok && v.String != nil {
			v.String(id, payload)
		}

	case ast.ExprBool:
		if payload, ok := v.builder.Exprs.Bool(id); ok && v.Bool != nil {
			v.Bool(id, payload)
		}

	case ast.ExprNull:
		if v.Null != nil {
			v.Null(id)
		}

	case ast.ExprUnary:
		payload, ok := v.builder.Exprs.Unary(id)
		if !ok {
			return
		}
		if v.Unary != nil {
			v.Unary(id, payload)
		}
		v.walkExpr(payload.Operand)

	case ast.ExprBinary:
		payload, ok := v.builder.Exprs.Binary(id)
		if !ok {
			return
		}
		if v.Binary != nil {
			v.Binary(id, payload)
		}
		v.walkExpr(payload.Left)
		v.walkExpr(payload.Right)

	case ast.ExprAssign:
		payload, ok := v.builder.Exprs.Assign(id)
		if !ok {
			return
		}
		if v.Assign != nil {
			v.Assign(id, payload)
		}
		v.walkExpr(payload.Target)
		v.walkExpr(payload.Value)

	case ast.ExprCall:
		payload, ok := v.builder.Exprs.Call(id)
		if !ok {
			return
		}
		if v.Call != nil {
			v.Call(id, payload)
		}
		v.walkExpr(payload.Callee)
		for _, arg := range payload.Args {
			v.walkExpr(arg)
		}

	case ast.ExprMember:
		payload, ok := v.builder.Exprs.Member(id)
		if !ok {
			return
		}
		if v.Member != nil {
			v.Member(id, payload)
		}
		v.walkExpr(payload.Object)

	case ast.ExprParen:
		if payload, ok := v.builder.Exprs.Paren(id); ok {
			v.walkExpr(payload.Inner)
		}

	default:
		// ExprBad and future kinds: no-op.
	}
}

func (v *Visitor) walkType(id ast.TypeID) {
	if !id.IsValid() {
		return
	}
	syn := v.builder.Types.Get(id)
	if syn == nil {
		return
	}

	switch syn.Kind {
	case ast.TypeRef:
		payload, ok := v.builder.Types.Ref(id)
		if !ok {
			return
		}
		if v.TypeRef != nil {
			v.TypeRef(id, payload)
		}
		for _, arg := range payload.Args {
			v.walkType(arg)
		}

	default:
	}
}
