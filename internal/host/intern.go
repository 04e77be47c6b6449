package host

// InternedString is a deduplicated string handle: two interned strings with
// equal text compare equal by pointer, so identifier and literal names can
// be compared by identity rather than content once interned.
type InternedString struct {
	Text string
}

func (s *InternedString) TypeName() string { return "string" }
func (s *InternedString) String() string   { return s.Text }

// Interner deduplicates strings so that repeated identifiers and string
// literals share one allocation and compare by pointer.
type Interner struct {
	table map[string]*InternedString
}

// NewInterner returns an empty interning table.
func NewInterner() *Interner {
	return &Interner{table: make(map[string]*InternedString)}
}

// Intern returns the canonical *InternedString for s, creating it on first
// use.
func (in *Interner) Intern(s string) *InternedString {
	if existing, ok := in.table[s]; ok {
		return existing
	}
	interned := &InternedString{Text: s}
	in.table[s] = interned
	return interned
}
