package suffixtrie

import "curgo/internal/domain/models"

// Alphabet interns canonical lines into dense Symbols. Two canonical lines
// compare equal iff they intern to the same Symbol; distinct lines never
// collide onto the same Symbol, unlike a raw hash table keyed by hash(line)
// would risk.
type Alphabet struct {
	index map[string]models.Symbol
	text  []string
}

// NewAlphabet returns an empty, ready-to-use Alphabet.
func NewAlphabet() *Alphabet {
	return &Alphabet{
		index: make(map[string]models.Symbol),
	}
}

// Intern returns the Symbol for line, assigning a fresh one the first time
// this exact canonical string is seen.
func (a *Alphabet) Intern(line string) models.Symbol {
	if sym, ok := a.index[line]; ok {
		return sym
	}
	sym := models.Symbol(len(a.text))
	a.index[line] = sym
	a.text = append(a.text, line)
	return sym
}

// TextOf resolves a Symbol back to the canonical line it was interned from.
func (a *Alphabet) TextOf(sym models.Symbol) string {
	return a.text[sym]
}

// Len reports how many distinct canonical lines have been interned.
func (a *Alphabet) Len() int {
	return len(a.text)
}
