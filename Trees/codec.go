package Trees

import (
	"math/bits"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

const (
	// Absent is the token standing for an absent child.
	Absent = "#"
	// Delim separates tokens.
	Delim = ","
)

func appendKey[T constraints.Integer](b []byte, v T) []byte {
	if ^T(0) < 0 {
		return strconv.AppendInt(b, int64(v), 10)
	}
	return strconv.AppendUint(b, uint64(v), 10)
}

// parseKey parses a base 10 integer that fits in T.
// A sign other than a leading '-' and leading zeros are rejected, so every key
// has exactly one spelling.
func parseKey[T constraints.Integer](s string) (T, error) {
	if d := strings.TrimPrefix(s, "-"); strings.HasPrefix(s, "+") || (len(d) > 1 && d[0] == '0') || s == "-0" {
		return 0, &strconv.NumError{Func: "parseKey", Num: s, Err: strconv.ErrSyntax}
	}
	bitSize := int(unsafe.Sizeof(T(0))) * 8
	if ^T(0) < 0 {
		v, err := strconv.ParseInt(s, 10, bitSize)
		return T(v), err
	}
	v, err := strconv.ParseUint(s, 10, bitSize)
	return T(v), err
}

// serialize the subtree rooting at i in preorder, each token followed by Delim.
func (u *AVLTree[T, S]) serialize(b []byte, i S) []byte {
	if i == 0 {
		return append(b, Absent+Delim...)
	}
	b = append(appendKey(b, u.key(i)), Delim...)
	b = u.serialize(b, u.ifs[i].l)
	return u.serialize(b, u.ifs[i].r)
}

// AppendText appends the serialization of the tree to b. Recursive.
// Time: O(n)
func (u *AVLTree[T, S]) AppendText(b []byte) []byte {
	if u.root == 0 {
		return b
	}
	b = u.serialize(b, u.root)
	return b[:len(b)-len(Delim)]
}

// Serialize [Tree.Serialize]. The tree is written in preorder: the key of a node,
// then its left subtree, then its right subtree, with Absent in place of every
// absent child and tokens separated by Delim. The empty tree is the empty string.
// Recursive.
// Time: O(n)
func (u *AVLTree[T, S]) Serialize() string {
	return string(u.AppendText(nil))
}

// String is the same as Serialize.
func (u *AVLTree[T, S]) String() string {
	return u.Serialize()
}

// MarshalText implements encoding.TextMarshaler.
func (u *AVLTree[T, S]) MarshalText() ([]byte, error) {
	return u.AppendText(nil), nil
}

type decoder[T constraints.Integer, S constraints.Unsigned] struct {
	t     *AVLTree[T, S]
	toks  []string
	pos   []int // pos[i] is the index of the token of node i+1.
	next  int
	limit int // no balanced tree with len(toks) tokens is deeper than limit.
}

// node decodes the subtree starting at the next token, whose keys must lie
// strictly between the bounds.
func (d *decoder[T, S]) node(depth int, lo, hi *T) (S, error) {
	if d.next == len(d.toks) {
		return 0, &ParseError{Pos: d.next, Err: ErrTruncated}
	}
	at, tok := d.next, d.toks[d.next]
	d.next++
	if tok == Absent {
		return 0, nil
	}
	if depth > d.limit {
		return 0, &ParseError{at, tok, ErrUnbalanced}
	}
	v, err := parseKey[T](tok)
	if err != nil {
		return 0, &ParseError{at, tok, err}
	}
	if (lo != nil && v <= *lo) || (hi != nil && v >= *hi) {
		return 0, &ParseError{at, tok, ErrOrder}
	}
	if d.t.full() {
		return 0, &ParseError{at, tok, ErrCapacity}
	}
	i := d.t.alloc(v)
	d.pos = append(d.pos, at)
	d.t.sz++
	l, err := d.node(depth+1, lo, &v)
	if err != nil {
		return 0, err
	}
	d.t.setL(i, l)
	r, err := d.node(depth+1, &v, hi)
	if err != nil {
		return 0, err
	}
	d.t.setR(i, r)
	return i, nil
}

// decode data into u, which must be empty.
func (u *AVLTree[T, S]) decode(data string) error {
	if data == "" {
		return nil
	}
	d := decoder[T, S]{t: u, toks: strings.Split(data, Delim)}
	d.limit = 2*bits.Len(uint(len(d.toks))) + 2
	r, err := d.node(1, nil, nil)
	if err != nil {
		return err
	}
	if d.next != len(d.toks) {
		return &ParseError{d.next, d.toks[d.next], ErrTrailing}
	}
	u.setRoot(r)
	if bad := u.settle(); bad != 0 {
		at := d.pos[bad-1]
		return &ParseError{at, d.toks[at], ErrUnbalanced}
	}
	return nil
}

// Deserialize builds a new tree from the text produced by Serialize, with the
// same keys in the same places. The cached heights aren't part of the text; the
// new tree gets the lowest heights that keep it balanced. Recursive.
// Returns a *ParseError if data isn't a valid serialization.
// Time: O(n)
func Deserialize[T constraints.Integer, S constraints.Unsigned](data string) (*AVLTree[T, S], error) {
	t := New[T, S](S(strings.Count(data, Delim) / 2))
	if err := t.decode(data); err != nil {
		return nil, err
	}
	return t, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It replaces the contents
// of u with the tree decoded from text; u is left untouched on error.
func (u *AVLTree[T, S]) UnmarshalText(text []byte) error {
	t, err := Deserialize[T, S](string(text))
	if err != nil {
		return err
	}
	u.MoveFrom(t)
	return nil
}
