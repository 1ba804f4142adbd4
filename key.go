package tuikit

// Canonical key names produced by the decoder. Printable characters use the
// character itself as the name.
const (
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyHome      = "home"
	KeyEnd       = "end"
	KeyPageUp    = "pageup"
	KeyPageDown  = "pagedown"
	KeyInsert    = "insert"
	KeyDelete    = "delete"
	KeyTab       = "tab"
	KeyEnter     = "enter"
	KeyBackspace = "backspace"
	KeyEscape    = "escape"
	KeySpace     = "space"
	KeyResize    = "resize"

	KeyF1  = "f1"
	KeyF2  = "f2"
	KeyF3  = "f3"
	KeyF4  = "f4"
	KeyF5  = "f5"
	KeyF6  = "f6"
	KeyF7  = "f7"
	KeyF8  = "f8"
	KeyF9  = "f9"
	KeyF10 = "f10"
	KeyF11 = "f11"
	KeyF12 = "f12"
)

const (
	escByte = 0x1b

	// mousePrefix introduces an X10 mouse report: ESC [ M Cb Cx Cy.
	mousePrefix    = "\x1b[M"
	mouseReportLen = 6
)

// keySpec is what a known byte sequence decodes to.
type keySpec struct {
	name  string
	shift bool
}

// keySequences maps complete byte runs to keys. Runs are matched whole,
// never by prefix.
var keySequences = map[string]keySpec{
	// Arrow keys, CSI and SS3 (application cursor) forms
	"\x1b[A": {name: KeyUp},
	"\x1b[B": {name: KeyDown},
	"\x1b[C": {name: KeyRight},
	"\x1b[D": {name: KeyLeft},
	"\x1bOA": {name: KeyUp},
	"\x1bOB": {name: KeyDown},
	"\x1bOC": {name: KeyRight},
	"\x1bOD": {name: KeyLeft},

	// Function keys: SS3 (xterm F1-F4), CSI n ~ (vt220), CSI [ x (linux console)
	"\x1bOP":   {name: KeyF1},
	"\x1bOQ":   {name: KeyF2},
	"\x1bOR":   {name: KeyF3},
	"\x1bOS":   {name: KeyF4},
	"\x1b[11~": {name: KeyF1},
	"\x1b[12~": {name: KeyF2},
	"\x1b[13~": {name: KeyF3},
	"\x1b[14~": {name: KeyF4},
	"\x1b[15~": {name: KeyF5},
	"\x1b[17~": {name: KeyF6},
	"\x1b[18~": {name: KeyF7},
	"\x1b[19~": {name: KeyF8},
	"\x1b[20~": {name: KeyF9},
	"\x1b[21~": {name: KeyF10},
	"\x1b[23~": {name: KeyF11},
	"\x1b[24~": {name: KeyF12},
	"\x1b[[A":  {name: KeyF1},
	"\x1b[[B":  {name: KeyF2},
	"\x1b[[C":  {name: KeyF3},
	"\x1b[[D":  {name: KeyF4},
	"\x1b[[E":  {name: KeyF5},

	// Home/End in xterm, SS3, vt220 and rxvt encodings
	"\x1b[H":  {name: KeyHome},
	"\x1b[F":  {name: KeyEnd},
	"\x1bOH":  {name: KeyHome},
	"\x1bOF":  {name: KeyEnd},
	"\x1b[1~": {name: KeyHome},
	"\x1b[4~": {name: KeyEnd},
	"\x1b[7~": {name: KeyHome},
	"\x1b[8~": {name: KeyEnd},

	"\x1b[5~": {name: KeyPageUp},
	"\x1b[6~": {name: KeyPageDown},
	"\x1b[2~": {name: KeyInsert},
	"\x1b[3~": {name: KeyDelete},

	// Backtab
	"\x1b[Z": {name: KeyTab, shift: true},

	// Single bytes with dedicated names; these take precedence over the
	// control-code table.
	"\t":   {name: KeyTab},
	"\r":   {name: KeyEnter},
	"\n":   {name: KeyEnter},
	"\x7f": {name: KeyBackspace},
	"\x08": {name: KeyBackspace},
}

// controlKeys maps control bytes to the key pressed with Ctrl.
// 0x01-0x1a are Ctrl+A..Ctrl+Z; 0x1b (escape) is deliberately absent.
var controlKeys = map[byte]string{
	0x00: KeySpace,
	0x1c: "\\",
	0x1d: "]",
	0x1e: "^",
	0x1f: "_",
}

func init() {
	for b := byte(1); b <= 26; b++ {
		controlKeys[b] = string(rune('a' + b - 1))
	}
}

// sequencePrefixes holds every strict prefix of a known multi-byte sequence.
// A residual buffer equal to one of these may still complete.
var sequencePrefixes = buildPrefixes()

func buildPrefixes() map[string]struct{} {
	prefixes := make(map[string]struct{})
	for seq := range keySequences {
		for i := 1; i < len(seq); i++ {
			prefixes[seq[:i]] = struct{}{}
		}
	}
	for i := 1; i < len(mousePrefix); i++ {
		prefixes[mousePrefix[:i]] = struct{}{}
	}
	return prefixes
}
