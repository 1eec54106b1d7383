package model

// Contact is an address-book entry owned by exactly one user. OwnerID is
// fixed at creation and never changes.
type Contact struct {
	ID      uint64 `json:"id"`
	OwnerID uint64 `json:"ownerId"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// ContactUpdate carries a partial update. Nil fields are left untouched;
// id and owner are not part of the update surface at all.
type ContactUpdate struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}
