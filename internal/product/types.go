// Package product describes the JetBrains-style IDEs jbinventory recognizes
// and the installs detected on disk.
package product

import "fmt"

// Kind identifies a supported product.
type Kind int

const (
	IntelliJIdea Kind = iota
	PyCharm
	WebStorm
	PhpStorm
	CLion
	GoLand
	Rider
	DataGrip
	RubyMine
	RustRover
	AndroidStudio
	Fleet
)

type entry struct {
	kind   Kind
	prefix string
	name   string
	icon   string
}

// catalog is matched in order by Identify.
var catalog = []entry{
	{IntelliJIdea, "IntelliJIdea", "IntelliJ IDEA", "🧠"},
	{PyCharm, "PyCharm", "PyCharm", "🐍"},
	{WebStorm, "WebStorm", "WebStorm", "🌐"},
	{PhpStorm, "PhpStorm", "PhpStorm", "🐘"},
	{CLion, "CLion", "CLion", "⚙️"},
	{GoLand, "GoLand", "GoLand", "🐹"},
	{Rider, "Rider", "Rider", "🎮"},
	{DataGrip, "DataGrip", "DataGrip", "🗄️"},
	{RubyMine, "RubyMine", "RubyMine", "💎"},
	{RustRover, "RustRover", "RustRover", "🦀"},
	{AndroidStudio, "AndroidStudio", "Android Studio", "🤖"},
	{Fleet, "Fleet", "Fleet", "🚀"},
}

// Identify returns the product whose directory prefix matches dirName.
// The match is a case-sensitive prefix match.
func Identify(dirName string) (Kind, bool) {
	for _, e := range catalog {
		if len(dirName) >= len(e.prefix) && dirName[:len(e.prefix)] == e.prefix {
			return e.kind, true
		}
	}
	return 0, false
}

// Kinds returns every supported product in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, len(catalog))
	for i, e := range catalog {
		kinds[i] = e.kind
	}
	return kinds
}

func (k Kind) lookup() entry {
	for _, e := range catalog {
		if e.kind == k {
			return e
		}
	}
	return entry{kind: k, name: fmt.Sprintf("Kind(%d)", int(k)), icon: "?"}
}

// DisplayName returns the human-readable product name.
func (k Kind) DisplayName() string { return k.lookup().name }

// Icon returns the glyph shown next to the product in listings.
func (k Kind) Icon() string { return k.lookup().icon }

// DirPrefix returns the config directory prefix for the product.
func (k Kind) DirPrefix() string { return k.lookup().prefix }

func (k Kind) String() string { return k.DisplayName() }

// Install is one detected product instance.
type Install struct {
	Product     Kind
	Version     string
	ConfigPath  string
	DataPath    string
	TrialStatus Status
}

// Label returns "<product>_<version>", used to name backups.
func (i Install) Label() string {
	return fmt.Sprintf("%s_%s", i.Product.DisplayName(), i.Version)
}
