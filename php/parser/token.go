package parser

import "strings"

type TokenKind int

const (
	TokenEndOfFile TokenKind = iota
	TokenMissing
	TokenSkipped
	TokenUnsupported
	TokenUnknown

	// Text/code boundaries
	TokenInlineText
	TokenScriptSectionStartTag
	TokenScriptSectionEndTag
	TokenScriptSectionPrependedText

	TokenName
	TokenVariableName

	// Literals
	TokenDecimalLiteral
	TokenOctalLiteral
	TokenHexadecimalLiteral
	TokenBinaryLiteral
	TokenFloatingLiteral
	TokenInvalidOctalLiteral
	TokenInvalidHexadecimalLiteral
	TokenInvalidBinaryLiteral
	TokenStringLiteral
	TokenUnterminatedStringLiteral
	TokenNoSubstitutionTemplateLiteral
	TokenUnterminatedNoSubstitutionTemplateLiteral
	TokenTemplateStringStart
	TokenTemplateStringMiddle
	TokenTemplateStringEnd

	// Keywords
	TokenAbstract
	TokenAnd
	TokenArray
	TokenAs
	TokenBreak
	TokenCallable
	TokenCase
	TokenCatch
	TokenClass
	TokenClone
	TokenConst
	TokenContinue
	TokenDeclare
	TokenDefault
	TokenDie
	TokenDo
	TokenEcho
	TokenElse
	TokenElseIf
	TokenEmpty
	TokenEndDeclare
	TokenEndFor
	TokenEndForeach
	TokenEndIf
	TokenEndSwitch
	TokenEndWhile
	TokenEval
	TokenExit
	TokenExtends
	TokenFinal
	TokenFinally
	TokenFor
	TokenForeach
	TokenFunction
	TokenGlobal
	TokenGoto
	TokenIf
	TokenImplements
	TokenInclude
	TokenIncludeOnce
	TokenInstanceOf
	TokenInsteadOf
	TokenInterface
	TokenIsSet
	TokenList
	TokenNamespace
	TokenNew
	TokenOr
	TokenPrint
	TokenPrivate
	TokenProtected
	TokenPublic
	TokenRequire
	TokenRequireOnce
	TokenReturn
	TokenStatic
	TokenSwitch
	TokenThrow
	TokenTrait
	TokenTry
	TokenUnset
	TokenUse
	TokenVar
	TokenWhile
	TokenXor
	TokenYield

	// Reserved type words
	TokenBoolReservedWord
	TokenFloatReservedWord
	TokenIntReservedWord
	TokenStringReservedWord

	// Punctuation and operators
	TokenOpenBracket
	TokenCloseBracket
	TokenOpenParen
	TokenCloseParen
	TokenOpenBrace
	TokenCloseBrace
	TokenDot
	TokenArrow
	TokenPlusPlus
	TokenMinusMinus
	TokenAsteriskAsterisk
	TokenAsterisk
	TokenPlus
	TokenMinus
	TokenTilde
	TokenExclamation
	TokenDollar
	TokenSlash
	TokenPercent
	TokenLessThanLessThan
	TokenGreaterThanGreaterThan
	TokenLessThan
	TokenGreaterThan
	TokenLessThanEquals
	TokenGreaterThanEquals
	TokenEqualsEquals
	TokenEqualsEqualsEquals
	TokenExclamationEquals
	TokenExclamationEqualsEquals
	TokenLessThanGreaterThan
	TokenLessThanEqualsGreaterThan
	TokenCaret
	TokenBar
	TokenAmpersand
	TokenAmpersandAmpersand
	TokenBarBar
	TokenQuestion
	TokenQuestionQuestion
	TokenColon
	TokenColonColon
	TokenSemicolon
	TokenEquals
	TokenAsteriskAsteriskEquals
	TokenAsteriskEquals
	TokenSlashEquals
	TokenPercentEquals
	TokenPlusEquals
	TokenMinusEquals
	TokenDotEquals
	TokenLessThanLessThanEquals
	TokenGreaterThanGreaterThanEquals
	TokenAmpersandEquals
	TokenCaretEquals
	TokenBarEquals
	TokenQuestionQuestionEquals
	TokenComma
	TokenDotDotDot
	TokenBackslash
	TokenDoubleArrow
	TokenAt
)

var tokenKindNames = map[TokenKind]string{
	TokenEndOfFile:                  "EndOfFile",
	TokenMissing:                    "Missing",
	TokenSkipped:                    "Skipped",
	TokenUnsupported:                "Unsupported",
	TokenUnknown:                    "Unknown",
	TokenInlineText:                 "InlineText",
	TokenScriptSectionStartTag:      "ScriptSectionStartTag",
	TokenScriptSectionEndTag:        "ScriptSectionEndTag",
	TokenScriptSectionPrependedText: "ScriptSectionPrependedText",
	TokenName:                       "Name",
	TokenVariableName:               "VariableName",

	TokenDecimalLiteral:                            "DecimalLiteral",
	TokenOctalLiteral:                              "OctalLiteral",
	TokenHexadecimalLiteral:                        "HexadecimalLiteral",
	TokenBinaryLiteral:                             "BinaryLiteral",
	TokenFloatingLiteral:                           "FloatingLiteral",
	TokenInvalidOctalLiteral:                       "InvalidOctalLiteral",
	TokenInvalidHexadecimalLiteral:                 "InvalidHexadecimalLiteral",
	TokenInvalidBinaryLiteral:                      "InvalidBinaryLiteral",
	TokenStringLiteral:                             "StringLiteral",
	TokenUnterminatedStringLiteral:                 "UnterminatedStringLiteral",
	TokenNoSubstitutionTemplateLiteral:             "NoSubstitutionTemplateLiteral",
	TokenUnterminatedNoSubstitutionTemplateLiteral: "UnterminatedNoSubstitutionTemplateLiteral",
	TokenTemplateStringStart:                       "TemplateStringStart",
	TokenTemplateStringMiddle:                      "TemplateStringMiddle",
	TokenTemplateStringEnd:                         "TemplateStringEnd",

	TokenAbstract:    "abstract",
	TokenAnd:         "and",
	TokenArray:       "array",
	TokenAs:          "as",
	TokenBreak:       "break",
	TokenCallable:    "callable",
	TokenCase:        "case",
	TokenCatch:       "catch",
	TokenClass:       "class",
	TokenClone:       "clone",
	TokenConst:       "const",
	TokenContinue:    "continue",
	TokenDeclare:     "declare",
	TokenDefault:     "default",
	TokenDie:         "die",
	TokenDo:          "do",
	TokenEcho:        "echo",
	TokenElse:        "else",
	TokenElseIf:      "elseif",
	TokenEmpty:       "empty",
	TokenEndDeclare:  "enddeclare",
	TokenEndFor:      "endfor",
	TokenEndForeach:  "endforeach",
	TokenEndIf:       "endif",
	TokenEndSwitch:   "endswitch",
	TokenEndWhile:    "endwhile",
	TokenEval:        "eval",
	TokenExit:        "exit",
	TokenExtends:     "extends",
	TokenFinal:       "final",
	TokenFinally:     "finally",
	TokenFor:         "for",
	TokenForeach:     "foreach",
	TokenFunction:    "function",
	TokenGlobal:      "global",
	TokenGoto:        "goto",
	TokenIf:          "if",
	TokenImplements:  "implements",
	TokenInclude:     "include",
	TokenIncludeOnce: "include_once",
	TokenInstanceOf:  "instanceof",
	TokenInsteadOf:   "insteadof",
	TokenInterface:   "interface",
	TokenIsSet:       "isset",
	TokenList:        "list",
	TokenNamespace:   "namespace",
	TokenNew:         "new",
	TokenOr:          "or",
	TokenPrint:       "print",
	TokenPrivate:     "private",
	TokenProtected:   "protected",
	TokenPublic:      "public",
	TokenRequire:     "require",
	TokenRequireOnce: "require_once",
	TokenReturn:      "return",
	TokenStatic:      "static",
	TokenSwitch:      "switch",
	TokenThrow:       "throw",
	TokenTrait:       "trait",
	TokenTry:         "try",
	TokenUnset:       "unset",
	TokenUse:         "use",
	TokenVar:         "var",
	TokenWhile:       "while",
	TokenXor:         "xor",
	TokenYield:       "yield",

	TokenBoolReservedWord:   "bool",
	TokenFloatReservedWord:  "float",
	TokenIntReservedWord:    "int",
	TokenStringReservedWord: "string",

	TokenOpenBracket:                  "[",
	TokenCloseBracket:                 "]",
	TokenOpenParen:                    "(",
	TokenCloseParen:                   ")",
	TokenOpenBrace:                    "{",
	TokenCloseBrace:                   "}",
	TokenDot:                          ".",
	TokenArrow:                        "->",
	TokenPlusPlus:                     "++",
	TokenMinusMinus:                   "--",
	TokenAsteriskAsterisk:             "**",
	TokenAsterisk:                     "*",
	TokenPlus:                         "+",
	TokenMinus:                        "-",
	TokenTilde:                        "~",
	TokenExclamation:                  "!",
	TokenDollar:                       "$",
	TokenSlash:                        "/",
	TokenPercent:                      "%",
	TokenLessThanLessThan:             "<<",
	TokenGreaterThanGreaterThan:       ">>",
	TokenLessThan:                     "<",
	TokenGreaterThan:                  ">",
	TokenLessThanEquals:               "<=",
	TokenGreaterThanEquals:            ">=",
	TokenEqualsEquals:                 "==",
	TokenEqualsEqualsEquals:           "===",
	TokenExclamationEquals:            "!=",
	TokenExclamationEqualsEquals:      "!==",
	TokenLessThanGreaterThan:          "<>",
	TokenLessThanEqualsGreaterThan:    "<=>",
	TokenCaret:                        "^",
	TokenBar:                          "|",
	TokenAmpersand:                    "&",
	TokenAmpersandAmpersand:           "&&",
	TokenBarBar:                       "||",
	TokenQuestion:                     "?",
	TokenQuestionQuestion:             "??",
	TokenColon:                        ":",
	TokenColonColon:                   "::",
	TokenSemicolon:                    ";",
	TokenEquals:                       "=",
	TokenAsteriskAsteriskEquals:       "**=",
	TokenAsteriskEquals:               "*=",
	TokenSlashEquals:                  "/=",
	TokenPercentEquals:                "%=",
	TokenPlusEquals:                   "+=",
	TokenMinusEquals:                  "-=",
	TokenDotEquals:                    ".=",
	TokenLessThanLessThanEquals:       "<<=",
	TokenGreaterThanGreaterThanEquals: ">>=",
	TokenAmpersandEquals:              "&=",
	TokenCaretEquals:                  "^=",
	TokenBarEquals:                    "|=",
	TokenQuestionQuestionEquals:       "??=",
	TokenComma:                        ",",
	TokenDotDotDot:                    "...",
	TokenBackslash:                    "\\",
	TokenDoubleArrow:                  "=>",
	TokenAt:                           "@",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsError reports whether the kind marks a recovery placeholder in the tree.
func (k TokenKind) IsError() bool {
	return k == TokenMissing || k == TokenSkipped || k == TokenUnsupported
}

// Token is one lexical unit. FullStart..Start is leading trivia,
// Start..Start+Length is the significant text.
type Token struct {
	Kind      TokenKind
	FullStart int
	Start     int
	Length    int

	// ErrorKind is set on error leaves: the expected kind for Missing,
	// the original kind for Skipped and Unsupported. A Missing token
	// standing in for a whole statement or expression has TokenUnknown.
	ErrorKind TokenKind
}

func (t *Token) element() {}

// End is the offset just past the significant text.
func (t *Token) End() int {
	return t.Start + t.Length
}

func (t *Token) FullWidth() int {
	return t.End() - t.FullStart
}

func (t *Token) Text(src []byte) string {
	return string(src[t.Start:t.End()])
}

func (t *Token) FullText(src []byte) string {
	return string(src[t.FullStart:t.End()])
}

func (t *Token) Trivia(src []byte) string {
	return string(src[t.FullStart:t.Start])
}

func newMissingToken(at int, expected TokenKind) *Token {
	return &Token{Kind: TokenMissing, FullStart: at, Start: at, ErrorKind: expected}
}

// reclassify turns t into an error leaf of the given kind in place.
func (t *Token) reclassify(kind TokenKind) {
	t.ErrorKind = t.Kind
	t.Kind = kind
}

// IsKeyword reports whether k is a reserved word. Reserved words are
// accepted as member names.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenAbstract && k <= TokenStringReservedWord
}

var keywords = map[string]TokenKind{
	"abstract":     TokenAbstract,
	"and":          TokenAnd,
	"array":        TokenArray,
	"as":           TokenAs,
	"break":        TokenBreak,
	"callable":     TokenCallable,
	"case":         TokenCase,
	"catch":        TokenCatch,
	"class":        TokenClass,
	"clone":        TokenClone,
	"const":        TokenConst,
	"continue":     TokenContinue,
	"declare":      TokenDeclare,
	"default":      TokenDefault,
	"die":          TokenDie,
	"do":           TokenDo,
	"echo":         TokenEcho,
	"else":         TokenElse,
	"elseif":       TokenElseIf,
	"empty":        TokenEmpty,
	"enddeclare":   TokenEndDeclare,
	"endfor":       TokenEndFor,
	"endforeach":   TokenEndForeach,
	"endif":        TokenEndIf,
	"endswitch":    TokenEndSwitch,
	"endwhile":     TokenEndWhile,
	"eval":         TokenEval,
	"exit":         TokenExit,
	"extends":      TokenExtends,
	"final":        TokenFinal,
	"finally":      TokenFinally,
	"for":          TokenFor,
	"foreach":      TokenForeach,
	"function":     TokenFunction,
	"global":       TokenGlobal,
	"goto":         TokenGoto,
	"if":           TokenIf,
	"implements":   TokenImplements,
	"include":      TokenInclude,
	"include_once": TokenIncludeOnce,
	"instanceof":   TokenInstanceOf,
	"insteadof":    TokenInsteadOf,
	"interface":    TokenInterface,
	"isset":        TokenIsSet,
	"list":         TokenList,
	"namespace":    TokenNamespace,
	"new":          TokenNew,
	"or":           TokenOr,
	"print":        TokenPrint,
	"private":      TokenPrivate,
	"protected":    TokenProtected,
	"public":       TokenPublic,
	"require":      TokenRequire,
	"require_once": TokenRequireOnce,
	"return":       TokenReturn,
	"static":       TokenStatic,
	"switch":       TokenSwitch,
	"throw":        TokenThrow,
	"trait":        TokenTrait,
	"try":          TokenTry,
	"unset":        TokenUnset,
	"use":          TokenUse,
	"var":          TokenVar,
	"while":        TokenWhile,
	"xor":          TokenXor,
	"yield":        TokenYield,

	"bool":   TokenBoolReservedWord,
	"float":  TokenFloatReservedWord,
	"int":    TokenIntReservedWord,
	"string": TokenStringReservedWord,
}

// LookupKeyword classifies a name. Keywords are case-insensitive.
func LookupKeyword(name string) TokenKind {
	if kind, ok := keywords[strings.ToLower(name)]; ok {
		return kind
	}
	return TokenName
}

// operators is ordered by descending length so the first match is the longest.
var operators = []struct {
	text string
	kind TokenKind
}{
	{"<=>", TokenLessThanEqualsGreaterThan},
	{"===", TokenEqualsEqualsEquals},
	{"!==", TokenExclamationEqualsEquals},
	{"**=", TokenAsteriskAsteriskEquals},
	{"<<=", TokenLessThanLessThanEquals},
	{">>=", TokenGreaterThanGreaterThanEquals},
	{"??=", TokenQuestionQuestionEquals},
	{"...", TokenDotDotDot},
	{"->", TokenArrow},
	{"++", TokenPlusPlus},
	{"--", TokenMinusMinus},
	{"**", TokenAsteriskAsterisk},
	{"<<", TokenLessThanLessThan},
	{">>", TokenGreaterThanGreaterThan},
	{"<=", TokenLessThanEquals},
	{">=", TokenGreaterThanEquals},
	{"==", TokenEqualsEquals},
	{"!=", TokenExclamationEquals},
	{"<>", TokenLessThanGreaterThan},
	{"&&", TokenAmpersandAmpersand},
	{"||", TokenBarBar},
	{"??", TokenQuestionQuestion},
	{"::", TokenColonColon},
	{"*=", TokenAsteriskEquals},
	{"/=", TokenSlashEquals},
	{"%=", TokenPercentEquals},
	{"+=", TokenPlusEquals},
	{"-=", TokenMinusEquals},
	{".=", TokenDotEquals},
	{"&=", TokenAmpersandEquals},
	{"^=", TokenCaretEquals},
	{"|=", TokenBarEquals},
	{"=>", TokenDoubleArrow},
	{"[", TokenOpenBracket},
	{"]", TokenCloseBracket},
	{"(", TokenOpenParen},
	{")", TokenCloseParen},
	{"{", TokenOpenBrace},
	{"}", TokenCloseBrace},
	{".", TokenDot},
	{"*", TokenAsterisk},
	{"+", TokenPlus},
	{"-", TokenMinus},
	{"~", TokenTilde},
	{"!", TokenExclamation},
	{"$", TokenDollar},
	{"/", TokenSlash},
	{"%", TokenPercent},
	{"<", TokenLessThan},
	{">", TokenGreaterThan},
	{"^", TokenCaret},
	{"|", TokenBar},
	{"&", TokenAmpersand},
	{"?", TokenQuestion},
	{":", TokenColon},
	{";", TokenSemicolon},
	{"=", TokenEquals},
	{",", TokenComma},
	{"\\", TokenBackslash},
	{"@", TokenAt},
}
