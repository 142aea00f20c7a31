package profile

// PlayerRecord is the part of the profile service response the renderer reads.
type PlayerRecord struct {
	ProfileInfo ProfileInfo `json:"profileInfo"`
	PetInfo     PetInfo     `json:"petInfo"`
	BasicInfo   BasicInfo   `json:"basicInfo"`
}

type ProfileInfo struct {
	Clothes       []int64 `json:"clothes"`
	EquipedSkills []int64 `json:"equipedSkills"`
}

type PetInfo struct {
	ID *int64 `json:"id"`
}

type BasicInfo struct {
	WeaponSkinShows []int64 `json:"weaponSkinShows"`
}

// ClothingIDs returns the owned clothing ids in profile order.
func (r *PlayerRecord) ClothingIDs() []int64 { return r.ProfileInfo.Clothes }

// EquippedSkillIDs returns the equipped skill ids in profile order.
func (r *PlayerRecord) EquippedSkillIDs() []int64 { return r.ProfileInfo.EquipedSkills }

// WeaponSkinIDs returns the displayed weapon skins in profile order.
func (r *PlayerRecord) WeaponSkinIDs() []int64 { return r.BasicInfo.WeaponSkinShows }

// PetID returns the pet id, if the player has one.
func (r *PlayerRecord) PetID() (int64, bool) {
	if r.PetInfo.ID == nil {
		return 0, false
	}
	return *r.PetInfo.ID, true
}
