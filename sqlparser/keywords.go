package sqlparser

// Keyword is a single entry in the static keyword table: its literal text,
// its logical Category, whether a match is immediately followed by an
// identifier the summary should capture, the follow-on set restricting what
// may legitimately come next, and the predicate deciding whether a match
// contributes to the summary.
//
// The predicate receives two categories: immediate (the category of the
// literal previous matched keyword) and root (the category of the most
// recent top-level verb - SELECT/INSERT/UPDATE/DELETE/CREATE/ALTER/DROP -
// which persists across a whole keyword chain). SELECT/DISTINCT-style
// predicates key off immediate; the CREATE/ALTER/DROP target-and-modifier
// chain (TABLE, INDEX, UNIQUE, CLUSTERED, ...) keys off root, since a
// keyword like CLUSTERED in "CREATE UNIQUE CLUSTERED INDEX" has UNIQUE, not
// CREATE, as its immediate predecessor, but still needs to be recognized as
// part of the CREATE chain.
//
// Keyword intentionally carries all of its own fields rather than splitting
// across a "variant" struct and a category->record lookup: one table keyed
// by Category returning *Keyword is enough, and avoids the
// in-struct-variant-plus-enum-lookup duplication the scanner this package
// is modeled on used for two different purposes (token kind and reserved
// word kind).
type Keyword struct {
	Text             string
	Category         Category
	FollowedByIdent  bool
	FollowOn         []Category
	CaptureInSummary func(immediate, root Category) bool
}

func never(Category, Category) bool { return false }

// oneOf captures based on the immediate predecessor keyword's category.
func oneOf(cats ...Category) func(Category, Category) bool {
	return func(immediate, _ Category) bool {
		for _, c := range cats {
			if immediate == c {
				return true
			}
		}
		return false
	}
}

// rootOneOf captures based on the chain's root top-level verb, regardless of
// how many intermediate keywords separate this match from it.
func rootOneOf(cats ...Category) func(Category, Category) bool {
	return func(_, root Category) bool {
		for _, c := range cats {
			if root == c {
				return true
			}
		}
		return false
	}
}

// ddlFollowOn is the set of keywords that may follow CREATE/ALTER/DROP,
// including the three that chain into `CREATE UNIQUE CLUSTERED INDEX`.
var ddlFollowOn = []Category{
	Table, Index, View, Procedure, Trigger, Database, Schema,
	Function, User, Role, Sequence, Unique, Clustered, NonClustered,
}

// keywordTable is the closed set of keywords the tokenizer knows about,
// indexed by Category. Category Unknown has no entry: it is the initial
// prev_keyword state, never something the scanner tries to match.
var keywordTable = map[Category]*Keyword{
	Select: {
		Text: "SELECT", Category: Select,
		FollowOn:         []Category{Distinct, From},
		CaptureInSummary: oneOf(Unknown, Select),
	},
	Distinct: {
		Text: "DISTINCT", Category: Distinct,
		FollowOn:         []Category{From},
		CaptureInSummary: oneOf(Select),
	},
	From: {
		Text: "FROM", Category: From,
		FollowOn:         []Category{Join},
		FollowedByIdent:  true,
		CaptureInSummary: never,
	},
	Join: {
		Text: "JOIN", Category: Join,
		FollowedByIdent:  true,
		CaptureInSummary: never,
	},
	Into: {
		Text: "INTO", Category: Into,
		FollowedByIdent:  true,
		CaptureInSummary: never,
	},
	On: {
		Text: "ON", Category: On,
		FollowedByIdent:  true,
		CaptureInSummary: never,
	},

	Insert: {
		Text: "INSERT", Category: Insert,
		FollowOn:         []Category{Into},
		CaptureInSummary: oneOf(Unknown),
	},
	Update: {
		// UPDATE has no follow-on keyword chain ("standalone verb" per spec
		// section 3), but unlike INSERT/DELETE it has no INTO/FROM of its
		// own to arm identifier capture, and the worked example (spec
		// section 8, scenario S3: "UPDATE Orders SET ..." summarizes to
		// "UPDATE Orders") requires the table name right after it to land
		// in the summary regardless. Treated as identifier-expecting.
		Text: "UPDATE", Category: Update,
		FollowedByIdent:  true,
		CaptureInSummary: oneOf(Unknown),
	},
	Delete: {
		// Unlike UPDATE, DELETE does reach its target table through a
		// keyword of its own (FROM), the same way SELECT does - it just
		// needs FROM in its follow-on set so candidateSet() tries it
		// instead of falling through to topLevelVerbs, where FROM isn't a
		// member.
		Text: "DELETE", Category: Delete,
		FollowOn:         []Category{From},
		CaptureInSummary: oneOf(Unknown),
	},

	Create: {
		Text: "CREATE", Category: Create,
		FollowOn:         ddlFollowOn,
		CaptureInSummary: oneOf(Unknown),
	},
	Alter: {
		Text: "ALTER", Category: Alter,
		FollowOn:         ddlFollowOn,
		CaptureInSummary: oneOf(Unknown),
	},
	Drop: {
		Text: "DROP", Category: Drop,
		FollowOn:         ddlFollowOn,
		CaptureInSummary: oneOf(Unknown),
	},

	Table: {
		Text: "TABLE", Category: Table,
		FollowedByIdent:  true,
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},
	Index: {
		Text: "INDEX", Category: Index,
		FollowOn:         []Category{On},
		FollowedByIdent:  true,
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},
	View: {
		Text: "VIEW", Category: View,
		FollowedByIdent:  true,
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},
	Procedure: {
		Text: "PROCEDURE", Category: Procedure,
		FollowedByIdent:  true,
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},
	Trigger: {
		Text: "TRIGGER", Category: Trigger,
		FollowedByIdent:  true,
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},
	Database: {
		Text: "DATABASE", Category: Database,
		FollowedByIdent:  true,
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},
	Schema: {
		Text: "SCHEMA", Category: Schema,
		FollowedByIdent:  true,
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},
	Function: {
		Text: "FUNCTION", Category: Function,
		FollowedByIdent:  true,
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},
	User: {
		Text: "USER", Category: User,
		FollowedByIdent:  true,
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},
	Role: {
		Text: "ROLE", Category: Role,
		FollowedByIdent:  true,
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},
	Sequence: {
		Text: "SEQUENCE", Category: Sequence,
		FollowedByIdent:  true,
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},

	Unique: {
		Text: "UNIQUE", Category: Unique,
		FollowOn:         []Category{Index, Clustered, NonClustered},
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},
	Clustered: {
		Text: "CLUSTERED", Category: Clustered,
		FollowOn:         []Category{Index},
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},
	NonClustered: {
		Text: "NONCLUSTERED", Category: NonClustered,
		FollowOn:         []Category{Index},
		CaptureInSummary: rootOneOf(Create, Drop, Alter),
	},
}

// topLevelVerbs is the candidate set tried when there is no keyword chain in
// progress: the statement-opening verbs.
var topLevelVerbs = []Category{Select, Insert, Update, Delete, Create, Alter, Drop}

// subqueryCandidates is the candidate set tried right after an opening '(':
// only a nested SELECT is recognized there.
var subqueryCandidates = []Category{Select}

func init() {
	// every category referenced from a follow-on set or the top-level/subquery
	// candidate lists must have a table entry, or the scanner would silently
	// never match it.
	check := func(cats []Category) {
		for _, c := range cats {
			if _, ok := keywordTable[c]; !ok {
				panic("keyword category missing from keywordTable: " + c.String())
			}
		}
	}
	check(topLevelVerbs)
	check(subqueryCandidates)
	for _, kw := range keywordTable {
		check(kw.FollowOn)
	}
}
