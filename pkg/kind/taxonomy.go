package kind

import "strings"

// Node is one entry in the category taxonomy. Abstract nodes group
// related categories and carry no category themselves.
type Node struct {
	Name     string
	Category Category
	Children []*Node
}

// taxonomy is the fixed category tree. It mirrors the abstract type
// hierarchy of the documented language: categories nest under abstract
// supertypes, and resolution always lands on a leaf, never on an
// abstract node.
var taxonomy = &Node{
	Name: "Any",
	Children: []*Node{
		{
			Name: "Number",
			Children: []*Node{
				{Name: "Complex", Category: Complex},
				{
					Name: "Real",
					Children: []*Node{
						{Name: "AbstractFloat", Category: Float},
						{
							Name:     "Integer",
							Category: Integer,
							Children: []*Node{
								{Name: "Bool", Category: Boolean},
							},
						},
						{Name: "Rational", Category: Rational},
						{Name: "Irrational", Category: Irrational},
					},
				},
			},
		},
		{
			Name: "AbstractChar",
			Children: []*Node{
				{Name: "Char", Category: Character},
			},
		},
		{
			Name: "AbstractString",
			Children: []*Node{
				{Name: "String", Category: String},
			},
		},
		{Name: "Symbol", Category: Symbol},
		{
			Name: "AbstractArray",
			Children: []*Node{
				{
					Name: "AbstractRange",
					Children: []*Node{
						{Name: "UnitRange", Category: Range},
					},
				},
				{Name: "Array", Category: Array},
			},
		},
		{
			Name: "AbstractDict",
			Children: []*Node{
				{Name: "Dict", Category: Dict},
			},
		},
		{
			Name: "AbstractSet",
			Children: []*Node{
				{Name: "Set", Category: Set},
			},
		},
		{Name: "Tuple", Category: Tuple},
		{
			Name:     "Type",
			Category: Type,
			Children: []*Node{
				{Name: "DataType"},
				{Name: "UnionAll"},
			},
		},
		{Name: "Function", Category: Function},
		{Name: "Module", Category: Module},
		{
			Name: "IO",
			Children: []*Node{
				{Name: "IOStream", Category: File},
			},
		},
		{Name: "Regex", Category: Regex},
		{
			Name: "TimeType",
			Children: []*Node{
				{Name: "Date"},
				{Name: "DateTime", Category: Datetime},
			},
		},
		{Name: "AbstractRNG", Category: Random},
	},
}

// Taxonomy returns the root of the category tree. The tree is shared
// immutable data; callers must not modify it.
func Taxonomy() *Node {
	return taxonomy
}

// FindNode returns the first node whose name matches, searching the
// tree depth-first. Matching is case-insensitive, like name-based topic
// resolution. Returns nil when no node matches.
func FindNode(name string) *Node {
	return findNode(taxonomy, name)
}

func findNode(n *Node, name string) *Node {
	if strings.EqualFold(n.Name, name) {
		return n
	}
	for _, c := range n.Children {
		if found := findNode(c, name); found != nil {
			return found
		}
	}
	return nil
}
