package property

// Account is the root of the ownership hierarchy
type Account struct {
	ID    uint
	Name  string
	Malls []Mall
}

// NewAccount holds the fields needed to create an account
type NewAccount struct {
	Name string
}

// AccountUpdate carries a partial update. Nil fields are left unchanged.
type AccountUpdate struct {
	Name *string
}

// IsEmpty reports whether the update changes nothing
func (u AccountUpdate) IsEmpty() bool {
	return u.Name == nil
}
