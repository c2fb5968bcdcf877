package ast

type (
	// main entities
	FileID uint32
	StmtID uint32
	ExprID uint32
	TypeID uint32
	// sub-entities
	DeclID    uint32 // variable declarator inside a var/let/const statement
	ParamID   uint32
	PayloadID uint32
)

const (
	NoFileID    FileID    = 0
	NoStmtID    StmtID    = 0
	NoExprID    ExprID    = 0
	NoTypeID    TypeID    = 0
	NoDeclID    DeclID    = 0
	NoParamID   ParamID   = 0
	NoPayloadID PayloadID = 0
)

func (id FileID) IsValid() bool    { return id != NoFileID }
func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id TypeID) IsValid() bool    { return id != NoTypeID }
func (id DeclID) IsValid() bool    { return id != NoDeclID }
func (id ParamID) IsValid() bool   { return id != NoParamID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
