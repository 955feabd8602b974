package domain

// swagger:model domain.Record
type Record struct {
	// ID is zero until the store assigns it on insert, after which it is
	// immutable and unique within the store.
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name" validate:"required,min=3,alphaspace"`
	Email     string `json:"email" validate:"required,contains=@"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Address   string `json:"address" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}

// Persisted reports whether the record has been assigned an identity
// by the store.
func (r *Record) Persisted() bool {
	return r.ID != 0
}
