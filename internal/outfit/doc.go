// Package outfit turns a player record into an outfit card.
//
// Resolve picks one asset id per MatchRule from the player's clothes, falling back to
// the rule's default when nothing owned is left. Pipeline fetches the background, the
// seven icons, the avatar and the weapon skin in one concurrent batch, then pastes them
// in that order onto the background. Only a missing player record or a missing
// background fails a render; any other missing image is left out of the card.
package outfit
