package levels

// BuiltinID identifies the level compiled into the binary.
const BuiltinID = "classic-1"

var builtinRows = []string{
	"#######",
	"#.@ # #",
	"#$* $ #",
	"#   $ #",
	"# ..  #",
	"#  *  #",
	"#######",
}

// Builtin returns the level compiled into the binary.
// The returned value is a fresh copy.
func Builtin() Level {
	return MustParse(BuiltinID, "Classic", builtinRows)
}
