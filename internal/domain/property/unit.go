package property

// Unit is a leaf of the hierarchy, owned by a Mall
type Unit struct {
	ID     uint
	Name   string
	MallID uint
	Mall   *Mall
}

// NewUnit holds the fields needed to create a unit
type NewUnit struct {
	Name   string
	MallID uint
}

// UnitUpdate carries a partial update. Nil fields are left unchanged.
type UnitUpdate struct {
	Name *string
}

// IsEmpty reports whether the update changes nothing
func (u UnitUpdate) IsEmpty() bool {
	return u.Name == nil
}
