package mcdc

import (
	"sort"
	"strings"

	"github.com/cznic/sortutil"
)

// TestVector assigns a truth value to each condition of an expression.
// The alphabetically first condition is the most significant bit.
type TestVector uint64

// SymbolTable collects the conditions that appear in an expression.
//
// Expressions may use letters with gaps, such as "a+d+z". Compact maps
// these letters to consecutive bit positions, so that the test vectors
// stay small.
type SymbolTable struct {
	letters    []int // letter indexes, sorted and unique after dedupe
	normalized map[int]int
}

// Record adds the letter to the table. Uppercase letters are recorded
// as their lowercase counterpart.
func (st *SymbolTable) Record(letter byte) {
	if 'A' <= letter && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	if 'a' <= letter && letter <= 'z' {
		st.letters = append(st.letters, int(letter-'a'))
	}
}

func (st *SymbolTable) dedupe() {
	sort.Ints(st.letters)
	st.letters = st.letters[:sortutil.Dedupe(sort.IntSlice(st.letters))]
}

// Compact assigns the bit positions from scratch. The alphabetically
// first letter gets the most significant position.
func (st *SymbolTable) Compact() {
	st.dedupe()

	st.normalized = make(map[int]int, len(st.letters))
	pos := len(st.letters) - 1
	for _, letter := range st.letters {
		st.normalized[letter] = pos
		pos--
	}
}

// Position returns the bit position of the letter index 0 to 25.
func (st *SymbolTable) Position(letter int) (int, bool) {
	pos, ok := st.normalized[letter]
	return pos, ok
}

// Mask returns the bit of the letter index in a test vector,
// or 0 if the letter is not in the table.
func (st *SymbolTable) Mask(letter int) TestVector {
	pos, ok := st.normalized[letter]
	if !ok {
		return 0
	}
	return 1 << uint(pos)
}

// Len returns the number of distinct letters.
func (st *SymbolTable) Len() int {
	st.dedupe()
	return len(st.letters)
}

// Letters returns the distinct letters in alphabetical order.
func (st *SymbolTable) Letters() []byte {
	st.dedupe()
	letters := make([]byte, len(st.letters))
	for i, letter := range st.letters {
		letters[i] = byte('a' + letter)
	}
	return letters
}

// Describe returns the assignment of the test vector in the form
// "a=0,b=1".
func (st *SymbolTable) Describe(v TestVector) string {
	var parts []string
	for _, letter := range st.Letters() {
		bit := 0
		if v&st.Mask(int(letter-'a')) != 0 {
			bit = 1
		}
		parts = append(parts, string([]byte{letter, '=', byte('0' + bit)}))
	}
	return strings.Join(parts, ",")
}
