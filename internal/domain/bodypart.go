package domain

import "errors"

// ErrInvalidBodyPartID is returned when a body part ID is not positive.
var ErrInvalidBodyPartID = errors.New("body part ID must be a positive number")

// BodyPart represents a trainable body part owned by a user.
// Names are unique per user.
type BodyPart struct {
	ID     int64  `json:"id"`
	UserID string `json:"user_id"`
	name   BodyPartName
}

// NewBodyPartFromStorage reconstructs a BodyPart from a persisted row,
// re-running all invariants.
func NewBodyPartFromStorage(id int64, userID, name string) (*BodyPart, error) {
	if id <= 0 {
		return nil, ErrInvalidBodyPartID
	}
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	nameVO, err := NewBodyPartName(name)
	if err != nil {
		return nil, err
	}

	return &BodyPart{
		ID:     id,
		UserID: userID,
		name:   nameVO,
	}, nil
}

// Name returns the body part's name.
func (b *BodyPart) Name() string {
	return b.name.String()
}

// BelongsTo reports whether the body part is owned by the given user.
func (b *BodyPart) BelongsTo(userID string) bool {
	return b.UserID == userID
}

// HasName reports whether the body part's name matches.
func (b *BodyPart) HasName(name string) bool {
	return b.name.String() == name
}
