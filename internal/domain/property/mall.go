package property

// Mall belongs to an Account and owns Units
type Mall struct {
	ID        uint
	Name      string
	AccountID uint
	Account   *Account
	Units     []Unit
}

// NewMall holds the fields needed to create a mall
type NewMall struct {
	Name      string
	AccountID uint
}

// MallUpdate carries a partial update. Nil fields are left unchanged.
type MallUpdate struct {
	Name *string
}

// IsEmpty reports whether the update changes nothing
func (u MallUpdate) IsEmpty() bool {
	return u.Name == nil
}
