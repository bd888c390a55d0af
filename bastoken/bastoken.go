// Package bastoken holds the static token tables for the supported
// Microsoft BASIC save-file dialects. A table maps the leading byte of a
// token to what it introduces: fixed keyword text, an extension page, an
// identifier reference, or a numeric literal with a fixed byte width.
package bastoken

// Kind tells the expander how many bytes a token consumes and how to
// render them.
type Kind int

const (
	Keyword  Kind = iota + 1 // fixed text, no further bytes
	Extended                 // one more byte selects from the Ext page
	IdentRef                 // 16-bit index into the identifier table
	IdentDef                 // inline definition: length byte + name bytes
	LabelRef                 // 32-bit index into the identifier table
	LineRef                  // 32-bit literal line/label number
	Internal                 // 32-bit interpreter-internal value, discarded
	OctalLit                 // 16-bit unsigned, rendered &O...
	HexLit                   // 16-bit unsigned, rendered &H...
	HexLongLit               // 32-bit unsigned, rendered &H...&
	ByteLit                  // 8-bit unsigned decimal
	IntLit                   // signed 16-bit decimal
	LongLit                  // signed 32-bit decimal with & suffix
	SingleLit                // 32-bit float
	DoubleLit                // 64-bit float with # suffix
)

// Entry describes one token leading byte.
type Entry struct {
	Kind Kind
	Text string          // keyword/operator text when Kind == Keyword
	Ext  map[byte]string // second-byte page when Kind == Extended
}

// Mac looks up a leading byte in the Macintosh MS BASIC token table.
func Mac(bt byte) (Entry, bool) {
	e, ok := macTokens[bt]
	return e, ok
}

// DOS looks up a leading byte in the MS-DOS QuickBASIC near-text table.
// Keywords are stored as literal text in that format, so the table only
// carries identifier and numeric markers.
func DOS(bt byte) (Entry, bool) {
	e, ok := dosTokens[bt]
	return e, ok
}

func kw(text string) Entry { return Entry{Kind: Keyword, Text: text} }

const (
	varRef_TOK   = 0x01
	labelDef_TOK = 0x02
	labelRef_TOK = 0x03
	internal_TOK = 0x08
	oct_TOK      = 0x0b
	hex_TOK      = 0x0c
	lineRef_TOK  = 0x0e
	int1Byte_TOK = 0x0f
	hexLong_TOK  = 0x1b
	int2Byte_TOK = 0x1c
	flt4Byte_TOK = 0x1d
	long_TOK     = 0x1e
	flt8Byte_TOK = 0x1f

	else_TOK     = 0x8e
	rem_TOK      = 0xaf
	quoteRem_TOK = 0xe8
	plus_TOK     = 0xec

	// near-text markers share the low byte values but split
	// definition and reference
	varDef_TOK    = 0x01
	varRefDOS_TOK = 0x02
)

var macTokens = map[byte]Entry{
	// markers with trailing data
	varRef_TOK:   {Kind: IdentRef},
	labelDef_TOK: {Kind: IdentRef}, // label definition, followed by ':'
	labelRef_TOK: {Kind: LabelRef},
	internal_TOK: {Kind: Internal}, // emitted after THEN/ELSE/CASE
	oct_TOK:      {Kind: OctalLit},
	hex_TOK:      {Kind: HexLit},
	lineRef_TOK:  {Kind: LineRef},
	int1Byte_TOK: {Kind: ByteLit},
	hexLong_TOK:  {Kind: HexLongLit},
	int2Byte_TOK: {Kind: IntLit},
	flt4Byte_TOK: {Kind: SingleLit},
	long_TOK:     {Kind: LongLit},
	flt8Byte_TOK: {Kind: DoubleLit},

	// digit tokens
	0x11: kw("0"), 0x12: kw("1"), 0x13: kw("2"), 0x14: kw("3"), 0x15: kw("4"),
	0x16: kw("5"), 0x17: kw("6"), 0x18: kw("7"), 0x19: kw("8"), 0x1A: kw("9"),

	// single byte keywords
	0x80: kw("ABS"), 0x81: kw("ASC"), 0x82: kw("ATN"), 0x83: kw("CALL"),
	0x84: kw("CDBL"), 0x85: kw("CHR$"), 0x86: kw("CINT"), 0x87: kw("CLOSE"),
	0x88: kw("COMMON"), 0x89: kw("COS"), 0x8A: kw("CVD"), 0x8B: kw("CVI"),
	0x8C: kw("CVS"), 0x8D: kw("DATA"), else_TOK: kw("ELSE"), 0x8F: kw("EOF"),

	0x90: kw("EXP"), 0x91: kw("FIELD"), 0x92: kw("FIX"), 0x93: kw("FN"),
	0x94: kw("FOR"), 0x95: kw("GET"), 0x96: kw("GOSUB"), 0x97: kw("GOTO"),
	0x98: kw("IF"), 0x99: kw("INKEY$"), 0x9A: kw("INPUT"), 0x9B: kw("INT"),
	0x9C: kw("LEFT$"), 0x9D: kw("LEN"), 0x9E: kw("LET"), 0x9F: kw("LINE"),

	0xA1: kw("LOC"), 0xA2: kw("LOF"), 0xA3: kw("LOG"), 0xA4: kw("LSET"),
	0xA5: kw("MID$"), 0xA6: kw("MKD$"), 0xA7: kw("MKI$"), 0xA8: kw("MKS$"),
	0xA9: kw("NEXT"), 0xAA: kw("ON"), 0xAB: kw("OPEN"), 0xAC: kw("PRINT"),
	0xAD: kw("PUT"), 0xAE: kw("READ"), rem_TOK: kw("REM"),

	0xB0: kw("RETURN"), 0xB1: kw("RIGHT$"), 0xB2: kw("RND"), 0xB3: kw("RSET"),
	0xB4: kw("SGN"), 0xB5: kw("SIN"), 0xB6: kw("SPACE$"), 0xB7: kw("SQR"),
	0xB8: kw("STR$"), 0xB9: kw("STRING$"), 0xBA: kw("TAN"),
	0xBC: kw("VAL"), 0xBD: kw("WEND"), 0xBE: kw("WHILE"), 0xBF: kw("WRITE"),

	0xC0: kw("ELSEIF"), 0xC1: kw("CLNG"), 0xC2: kw("CVL"), 0xC3: kw("MKL$"),

	0xE3: kw("STATIC"), 0xE4: kw("USING"), 0xE5: kw("TO"), 0xE6: kw("THEN"),
	0xE7: kw("NOT"), quoteRem_TOK: kw("'"), 0xE9: kw(">"), 0xEA: kw("="),
	0xEB: kw("<"), plus_TOK: kw("+"), 0xED: kw("-"), 0xEE: kw("*"),
	0xEF: kw("/"),

	0xF0: kw("^"), 0xF1: kw("AND"), 0xF2: kw("OR"), 0xF3: kw("XOR"),
	0xF4: kw("EQV"), 0xF5: kw("IMP"), 0xF6: kw("MOD"), 0xF7: kw("\\"),

	// two byte extension pages
	0xF8: {Kind: Extended, Ext: macExtStmt},
	0xF9: {Kind: Extended, Ext: macExtMisc},
	0xFA: {Kind: Extended, Ext: macExtSound},
	0xFB: {Kind: Extended, Ext: macExtDraw},
}

// statement page, second byte after 0xF8
var macExtStmt = map[byte]string{
	0x80: "AUTO", 0x81: "CHAIN", 0x82: "CLEAR", 0x83: "CLS", 0x84: "CONT",
	0x85: "CSNG", 0x86: "DATE$", 0x87: "DEFINT", 0x88: "DEFSNG",
	0x89: "DEFDBL", 0x8A: "DEFSTR", 0x8B: "DEF", 0x8C: "DELETE", 0x8D: "DIM",
	0x8E: "EDIT", 0x8F: "END",

	0x90: "ERASE", 0x91: "ERL", 0x92: "ERROR", 0x93: "ERR", 0x94: "FILES",
	0x95: "FRE", 0x96: "HEX$", 0x97: "INSTR", 0x98: "KILL", 0x99: "LIST",
	0x9A: "LLIST", 0x9B: "LOAD", 0x9C: "LPOS", 0x9D: "LPRINT", 0x9E: "MERGE",
	0x9F: "NAME",

	0xA0: "NEW", 0xA1: "OCT$", 0xA2: "OPTION", 0xA3: "PEEK", 0xA4: "POKE",
	0xA5: "POS", 0xA6: "RANDOMIZE", 0xA7: "RENUM", 0xA8: "RESTORE",
	0xA9: "RESUME", 0xAA: "RUN", 0xAB: "SAVE", 0xAC: "SHELL", 0xAD: "STOP",
	0xAE: "SWAP", 0xAF: "SYSTEM",

	0xB0: "TIME$", 0xB1: "TRON", 0xB2: "TROFF", 0xB3: "VARPTR", 0xB4: "WIDTH",
	0xB5: "BEEP", 0xB6: "CIRCLE", 0xB7: "LCOPY", 0xB8: "MOUSE", 0xB9: "POINT",
	0xBA: "PRESET", 0xBB: "PSET", 0xBC: "RESET", 0xBD: "TIMER", 0xBE: "SUB",
	0xBF: "EXIT",

	0xC0: "SOUND", 0xC1: "BUTTON", 0xC2: "MENU", 0xC3: "WINDOW",
	0xC4: "DIALOG", 0xC5: "LOCATE", 0xC6: "CSRLIN", 0xC7: "LBOUND",
	0xC8: "UBOUND", 0xC9: "SHARED", 0xCA: "UCASE$", 0xCB: "SCROLL",
	0xCC: "LIBRARY", 0xCD: "CVSBCD", 0xCE: "CVDBCD", 0xCF: "MKSBCD$",

	0xD0: "MKDBCD$", 0xD6: "DEFLNG", 0xD7: "SADD", 0xD9: "COLOR",
	0xDB: "PALETTE", 0xDD: "CHDIR",

	0xE0: "CASE", 0xE1: "PRINTDIALOG", 0xE2: "SCROLLBAR", 0xE3: "SELECT",
}

// misc page, second byte after 0xF9
var macExtMisc = map[byte]string{
	0xF2: "IS", 0xF3: "ABOUT", 0xF4: "OFF", 0xF5: "BREAK", 0xF6: "WAIT",
	0xF7: "USR", 0xF8: "TAB", 0xF9: "STEP", 0xFA: "SPC", 0xFB: "OUTPUT",
	0xFC: "BASE", 0xFD: "AS", 0xFE: "APPEND", 0xFF: "ALL",
}

// sound and memory page, second byte after 0xFA
var macExtSound = map[byte]string{
	0x80: "PICTURE", 0x81: "WAVE", 0x82: "POKEW", 0x83: "POKEL",
	0x84: "PEEKW", 0x85: "PEEKL",
}

// QuickDraw/TextEdit page, second byte after 0xFB
var macExtDraw = map[byte]string{
	0xC8: "TECALTEXT", 0xC9: "TEUPDATE", 0xCA: "TEDEACTIVATE",
	0xCB: "TEACTIVATE", 0xCC: "TEINSERT", 0xCD: "TEDELETE", 0xCE: "TEKEY",
	0xCF: "TESCROLL",

	0xD0: "TESETSELECT", 0xD1: "TESETTEXT", 0xD2: "FILLPOLY",
	0xD3: "INVERTPOLY", 0xD4: "ERASEPOLY", 0xD5: "PAINTPOLY",
	0xD6: "FRAMEPOLY", 0xD7: "PTAB", 0xD8: "FILLARC", 0xD9: "INVERTARC",
	0xDA: "ERASEARC", 0xDB: "PAINTARC", 0xDC: "FRAMEARC",
	0xDD: "FILLROUNDRECT", 0xDE: "INVERTROUNDRECT", 0xDF: "ERASEROUNDRECT",

	0xE0: "PAINTROUNDRECT", 0xE1: "FRAMEROUNDRECT", 0xE2: "FILLOVAL",
	0xE3: "INVERTOVAL", 0xE4: "ERASEOVAL", 0xE5: "PAINTOVAL",
	0xE6: "FRAMEOVAL", 0xE7: "FILLRECT", 0xE8: "INVERTRECT",
	0xE9: "ERASERECT", 0xEA: "PAINTRECT", 0xEB: "FRAMERECT",
	0xEC: "TEXTSIZE", 0xED: "TEXTMODE", 0xEE: "TEXTFACE", 0xEF: "TEXTFONT",

	0xF0: "LINETO", 0xF1: "MOVE", 0xF2: "MOVETO", 0xF3: "PENNORMAL",
	0xF4: "PENPAT", 0xF5: "PENMODE", 0xF6: "PENSIZE", 0xF7: "GETPEN",
	0xF8: "SHOWPEN", 0xF9: "HIDEPEN", 0xFA: "OBSCURECURSOR",
	0xFB: "SHOWCURSOR", 0xFC: "HIDECURSOR", 0xFD: "SETCURSOR",
	0xFE: "INITCURSOR", 0xFF: "BACKPAT",
}

// the near-text format spells keywords out in ASCII, only identifiers and
// numeric literals are marker coded
var dosTokens = map[byte]Entry{
	varDef_TOK:    {Kind: IdentDef},
	varRefDOS_TOK: {Kind: IdentRef},
	oct_TOK:       {Kind: OctalLit},
	hex_TOK:       {Kind: HexLit},
	int1Byte_TOK:  {Kind: ByteLit},
	hexLong_TOK:   {Kind: HexLongLit},
	int2Byte_TOK:  {Kind: IntLit},
	flt4Byte_TOK:  {Kind: SingleLit},
	long_TOK:      {Kind: LongLit},
	flt8Byte_TOK:  {Kind: DoubleLit},
}
