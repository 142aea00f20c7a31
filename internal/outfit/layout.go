package outfit

import (
	"image"

	imagepkg "github.com/youruser/outfitapp/internal/image"
)

const (
	CanvasSize = 1024
	IconSize   = 170

	AvatarWidth     = 650
	AvatarHeight    = 780
	AvatarY         = 154
	DefaultAvatarID = 406

	WeaponWidth  = 360
	WeaponHeight = 180
)

// WeaponPos is the top-left corner of the weapon layer.
var WeaponPos = image.Pt(670, 564)

// DefaultRules returns the seven outfit rules; index i is drawn in slot i.
func DefaultRules() []MatchRule {
	return []MatchRule{
		{Prefix: "211", FallbackID: "211000000"},
		{Prefix: "214", FallbackID: "214000000"},
		{Prefix: "211", FallbackID: "208000000"},
		{Prefix: "203", FallbackID: "203000000"},
		{Prefix: "204", FallbackID: "204000000"},
		{Prefix: "205", FallbackID: "205000000"},
		{Prefix: "203", FallbackID: "212000000"},
	}
}

// declaredSlots is the slot table before the swap and nudge corrections in DefaultSlots.
func declaredSlots() []imagepkg.Slot {
	return []imagepkg.Slot{
		{X: 728, Y: 170, Width: 170, Height: 170},
		{X: 142, Y: 142, Width: 170, Height: 170},
		{X: 839, Y: 362, Width: 170, Height: 170},
		{X: 710, Y: 763, Width: 140, Height: 140},
		{X: 38, Y: 575, Width: 170, Height: 170},
		{X: 164, Y: 752, Width: 170, Height: 170},
		{X: 42, Y: 334, Width: 170, Height: 170},
	}
}

// DefaultSlots returns the outfit slots in rule order.
//
// The swaps below leave slot 1 where it was declared and exchange slots 3 and 6. They
// are kept as a literal sequence because the nudges that follow were tuned against it.
func DefaultSlots() []imagepkg.Slot {
	s := declaredSlots()
	s[1], s[3] = s[3], s[1]
	s[1], s[6] = s[6], s[1]
	s[3], s[1] = s[1], s[3]

	s[6].X += 10
	s[6].Y -= 80

	s[3].X -= 14
	s[3].Y += 46

	s[1].X -= 20
	s[1].Y += 50
	return s
}
