package resolver

import (
	"errors"
	"fmt"
	"strings"

	"party-room-api/models"

	"gorm.io/gorm"
)

// ErrInvalidFamilyIndex means the submitted family index does not point into
// the room's settings.families list.
var ErrInvalidFamilyIndex = errors.New("invalid family index")

// ResolveMember maps (room, 1-based family index, display name) to a Member
// row, lazily materializing the Family and Member on first use. Repeated calls
// with the same inputs converge on the same rows: uniqueness is enforced by
// the (room_id, name) and (family_id, name) indexes, and a lost insert race is
// resolved by re-fetching the winning row.
func ResolveMember(db *gorm.DB, room *models.Room, familyIndex int, fullName string) (*models.Member, error) {
	if room.Settings == nil || len(room.Settings.Families) == 0 {
		return nil, fmt.Errorf("%w: room %s has no families configured", ErrInvalidFamilyIndex, room.Seed)
	}
	if familyIndex < 1 || familyIndex > len(room.Settings.Families) {
		return nil, fmt.Errorf("%w: %d (room has %d families)",
			ErrInvalidFamilyIndex, familyIndex, len(room.Settings.Families))
	}
	familyName := room.Settings.Families[familyIndex-1]

	var family models.Family
	if err := firstOrCreate(db, &family,
		models.Family{RoomID: room.ID, Name: familyName}); err != nil {
		return nil, err
	}

	var member models.Member
	if err := firstOrCreate(db, &member,
		models.Member{FamilyID: family.ID, Name: fullName}); err != nil {
		return nil, err
	}
	return &member, nil
}

// firstOrCreate looks up dest by the attrs, inserting it when absent. When a
// concurrent request wins the insert, the unique index rejects ours and the
// winner is fetched instead.
func firstOrCreate[T any](db *gorm.DB, dest *T, attrs T) error {
	err := db.Where(attrs).FirstOrCreate(dest).Error
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return db.Where(attrs).First(dest).Error
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "constraint failed")
}
