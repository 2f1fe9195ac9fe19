package Trees

// Tree represents a set of unique ordered keys implemented as a search tree.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if v was added, false if it was
	//already present, in which case the Tree is left exactly as it was.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if v was removed, false if it
	//wasn't present, in which case the Tree is left exactly as it was.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Serialize the exact shape of the tree, so that decoding the result
	//reproduces the same nodes in the same places.
	Serialize() string
	//Clear the tree. Clearing an empty tree is a no-op.
	Clear()
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//For balanced trees, this includes the balance itself.
	Corrupt() bool
}

var _ Tree[int] = (*AVLTree[int, uint32])(nil)
