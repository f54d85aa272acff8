package models

// MenuLevel identifies the node in the dialogue state machine a user is at.
type MenuLevel string

const (
	MenuLanguageSelect       MenuLevel = "language_select"
	MenuMain                 MenuLevel = "main_menu"
	MenuTempleInfo           MenuLevel = "temple_info_menu"
	MenuParkingAwaitingRoute MenuLevel = "parking_awaiting_route"
	MenuNearbySearch         MenuLevel = "nearby_search"
)

// UserState stores the conversation position for a single visitor
type UserState struct {
	UserID    string    `json:"user_id"`
	Language  string    `json:"language"` // "en" or "ta", defaults to "en"
	MenuLevel MenuLevel `json:"menu_level"`
}

// NewUserState creates a fresh state at language selection
func NewUserState(userID string) *UserState {
	return &UserState{
		UserID:    userID,
		Language:  "en",
		MenuLevel: MenuLanguageSelect,
	}
}
