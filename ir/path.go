package ir

// Path returns a dotted name of the block, such as "model.User".
func (b *Block) Path() string {
	return b.Kind + "." + b.Name
}

// MemberPath returns a dotted name of a member of b, such as
// "model.User.combos".
func (b *Block) MemberPath(m *Member) string {
	if m.Name == "" {
		return b.Path()
	}
	return b.Path() + "." + m.Name
}
