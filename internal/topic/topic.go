package topic

// Kind distinguishes how a source-root entry participates in the book.
type Kind int

const (
	// KindLeaf is a single standalone document.
	KindLeaf Kind = iota
	// KindChaptered is a directory with a README.md landing page and
	// ordered sub-chapter files.
	KindChaptered
	// KindSkipped is an entry that produces no outline entry, such as a
	// directory without a README.md.
	KindSkipped
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindChaptered:
		return "chaptered"
	case KindSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// SubChapter is one ordered chapter file inside a chaptered topic.
type SubChapter struct {
	File  string // filename within the topic directory, e.g. "01-intro.md"
	Title string // display title, front matter or the filename portion after the first '-'
}

// Topic is one classified immediate child of the source root.
type Topic struct {
	Name        string // filesystem entry name
	Slug        string // normalized identifier derived from the entry name
	Kind        Kind
	Title       string       // display title; empty for skipped entries
	Path        string       // outline link target relative to the source root, slash-separated
	SubChapters []SubChapter // populated only for chaptered topics
	SkipReason  string       // populated only for skipped entries
}
