// Package sqlparser implements the hand-rolled scanner that drives SQL
// sanitization and summarization: literal and comment skipping, and a small
// keyword-chain state machine used to recognize the shape of a statement.
package sqlparser

// Category is the logical role of a matched keyword, used to decide which
// keywords may legitimately follow it (the follow-on set) and whether a
// keyword contributes to the summary given what came before it.
type Category int

const (
	Unknown Category = iota

	Select
	Insert
	Update
	Delete
	From
	Into
	Join
	On
	Create
	Alter
	Drop
	Table
	Index
	Procedure
	View
	Database
	Trigger
	Schema
	Function
	User
	Role
	Sequence
	Unique
	Clustered
	NonClustered
	Distinct
)

func (c Category) String() string {
	return categoryToDescription[c]
}

func init() {
	// make sure we panic if a description isn't declared
	for c := Category(1); c <= Distinct; c++ {
		if categoryToDescription[c] == "" {
			panic("you have not updated categoryToDescription")
		}
	}
}

var categoryToDescription = map[Category]string{
	Unknown: "Unknown",

	Select: "Select",
	Insert: "Insert",
	Update: "Update",
	Delete: "Delete",
	From:   "From",
	Into:   "Into",
	Join:   "Join",
	On:     "On",

	Create: "Create",
	Alter:  "Alter",
	Drop:   "Drop",

	Table:     "Table",
	Index:     "Index",
	Procedure: "Procedure",
	View:      "View",
	Database:  "Database",
	Trigger:   "Trigger",
	Schema:    "Schema",
	Function:  "Function",
	User:      "User",
	Role:      "Role",
	Sequence:  "Sequence",

	Unique:       "Unique",
	Clustered:    "Clustered",
	NonClustered: "NonClustered",

	Distinct: "Distinct",
}

// TokenType describes what kind of thing the scanner last consumed. Unlike
// Category it says nothing about a keyword's role in a chain. Run reports it
// through Scanner.OnToken so tracing callers can talk about "what did we
// just see" without re-deriving it from raw bytes.
type TokenType int

const (
	WhitespaceToken TokenType = iota + 1
	CommentToken
	StringLiteralToken
	HexLiteralToken
	NumericLiteralToken
	KeywordToken
	IdentifierToken
	OtherToken
	EOFToken
)

func (tt TokenType) String() string {
	return tokenToDescription[tt]
}

func init() {
	for tt := TokenType(1); tt != EOFToken; tt++ {
		if tokenToDescription[tt] == "" {
			panic("you have not updated tokenToDescription")
		}
	}
}

var tokenToDescription = map[TokenType]string{
	WhitespaceToken:     "WhitespaceToken",
	CommentToken:        "CommentToken",
	StringLiteralToken:  "StringLiteralToken",
	HexLiteralToken:     "HexLiteralToken",
	NumericLiteralToken: "NumericLiteralToken",
	KeywordToken:        "KeywordToken",
	IdentifierToken:     "IdentifierToken",
	OtherToken:          "OtherToken",
	EOFToken:            "EOFToken",
}
