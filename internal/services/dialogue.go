package services

import (
	"log"
	"strings"

	"github.com/arulmigu/tiruchendur-assist-backend/internal/locales"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/models"
)

// actionKind tags what a main menu choice does
type actionKind int

const (
	actionTransition actionKind = iota // move to another menu level
	actionCategory                     // format a local info category
	actionText                         // return a fixed text key
	actionFeedback                     // return the feedback form link
	actionLanguage                     // restart language selection
)

// mainMenuAction is one entry in the main menu transition table: either a
// menu-level transition with its prompt, or an immediate action whose
// result is appended with the main menu.
type mainMenuAction struct {
	kind      actionKind
	nextLevel models.MenuLevel
	promptKey string // prompt for transitions, text key for actionText
	category  string
}

var mainMenuActions = map[string]mainMenuAction{
	"1":  {kind: actionTransition, nextLevel: models.MenuParkingAwaitingRoute, promptKey: "parking_route_prompt"},
	"2":  {kind: actionTransition, nextLevel: models.MenuTempleInfo},
	"3":  {kind: actionCategory, category: "Help_Centres"},
	"4":  {kind: actionCategory, category: "First_Aid_Stations"},
	"5":  {kind: actionCategory, category: "Temp_Bus_Stands"},
	"6":  {kind: actionCategory, category: "Toilets_Near_Temple"},
	"7":  {kind: actionCategory, category: "Annadhanam_Details"},
	"8":  {kind: actionText, promptKey: "emergency_contacts_info"},
	"9":  {kind: actionTransition, nextLevel: models.MenuNearbySearch, promptKey: "freestyle_query_prompt"},
	"10": {kind: actionLanguage},
	"11": {kind: actionFeedback},
}

// templeInfoTexts maps temple submenu choices to their detail text keys
var templeInfoTexts = map[string]string{
	"1": "temple_timings_details",
	"2": "temple_dress_code_details",
	"3": "temple_seva_tickets_menu_item",
}

// DialogueEngine drives the per-user menu state machine
type DialogueEngine struct {
	states       StateStore
	catalog      *locales.Catalog
	parking      *ParkingFinder
	info         *InfoFormatter
	feedbackLink string
}

// NewDialogueEngine wires the engine to its collaborators
func NewDialogueEngine(states StateStore, catalog *locales.Catalog,
	parking *ParkingFinder, info *InfoFormatter, feedbackLink string) *DialogueEngine {
	return &DialogueEngine{
		states:       states,
		catalog:      catalog,
		parking:      parking,
		info:         info,
		feedbackLink: feedbackLink,
	}
}

// Process handles one user turn: it resolves the user's state, dispatches
// on the current menu level and returns the response envelope. Blank
// rawText is the start signal. Every path produces some text.
func (e *DialogueEngine) Process(userID, rawText, displayName string) *models.Response {
	input := strings.TrimSpace(rawText)

	state, exists := e.states.Get(userID)
	if input == "" || !exists {
		state = models.NewUserState(userID)
		e.states.Put(state)
		return e.promptLanguage(state, true, displayName)
	}

	if state.MenuLevel == models.MenuLanguageSelect {
		return e.handleLanguageSelect(state, input)
	}

	if strings.EqualFold(input, "x") {
		goodbye := e.catalog.GetText(state.Language, "goodbye_message", nil)
		e.states.Delete(userID)
		return models.NewResponse(goodbye)
	}

	switch state.MenuLevel {
	case models.MenuMain:
		return e.handleMainMenu(state, input)
	case models.MenuTempleInfo:
		return e.handleTempleInfoMenu(state, input)
	case models.MenuParkingAwaitingRoute:
		return e.handleParkingRoute(state, input)
	case models.MenuNearbySearch:
		return e.handleNearbySearch(state, input)
	default:
		log.Printf("⚠️  User %s in unknown menu level '%s' - resetting to main menu", userID, state.MenuLevel)
		return e.invalidOption(state)
	}
}

// promptLanguage moves the user to language selection. The welcome banner
// is only shown on true first contact.
func (e *DialogueEngine) promptLanguage(state *models.UserState, isInitial bool, displayName string) *models.Response {
	state.MenuLevel = models.MenuLanguageSelect
	e.states.Put(state)

	text := ""
	if isInitial {
		text = e.catalog.GetText(state.Language, "welcome_tiruchendur", map[string]string{
			"user_name": displayName,
		}) + "\n"
	}
	text += e.catalog.GetText(state.Language, "select_language_prompt", nil)

	buttons := make([]models.Button, 0, len(locales.LanguageCodes))
	for _, code := range locales.LanguageCodes {
		buttons = append(buttons, models.Button{Label: locales.LanguageNames[code], Value: code})
	}
	return models.NewResponse(text, buttons...)
}

func (e *DialogueEngine) handleLanguageSelect(state *models.UserState, rawText string) *models.Response {
	choice := strings.ToLower(strings.TrimSpace(rawText))
	if !locales.IsSupported(choice) {
		return e.promptLanguage(state, false, "")
	}

	state.Language = choice
	state.MenuLevel = models.MenuMain
	e.states.Put(state)

	confirmation := e.catalog.GetText(choice, "language_selected", map[string]string{
		"language_name": locales.LanguageNames[choice],
	})
	return models.NewResponse(confirmation + "\n\n" + e.catalog.MenuText("main_menu", choice))
}

func (e *DialogueEngine) handleMainMenu(state *models.UserState, choice string) *models.Response {
	action, ok := mainMenuActions[choice]
	if !ok {
		return e.invalidOption(state)
	}

	switch action.kind {
	case actionTransition:
		state.MenuLevel = action.nextLevel
		e.states.Put(state)
		if action.nextLevel == models.MenuTempleInfo {
			return models.NewResponse(e.catalog.MenuText("temple_info_menu", state.Language))
		}
		return models.NewResponse(e.catalog.GetText(state.Language, action.promptKey, nil))

	case actionCategory:
		result := e.info.FormatCategory(state.Language, action.category)
		return e.withMainMenu(state, result)

	case actionText:
		return e.withMainMenu(state, e.catalog.GetText(state.Language, action.promptKey, nil))

	case actionFeedback:
		result := e.catalog.GetText(state.Language, "feedback_response", map[string]string{
			"feedback_link": e.feedbackLink,
		})
		return e.withMainMenu(state, result)

	case actionLanguage:
		return e.promptLanguage(state, false, "")
	}
	return e.invalidOption(state)
}

func (e *DialogueEngine) handleTempleInfoMenu(state *models.UserState, choice string) *models.Response {
	if choice == "0" {
		state.MenuLevel = models.MenuMain
		e.states.Put(state)
		return models.NewResponse(e.catalog.MenuText("main_menu", state.Language))
	}

	textKey, ok := templeInfoTexts[choice]
	if !ok {
		textKey = "invalid_menu_option"
	}
	text := e.catalog.GetText(state.Language, textKey, nil)
	return models.NewResponse(text + "\n\n" + e.catalog.MenuText("temple_info_menu", state.Language))
}

// handleParkingRoute scans free text for a route token, computes the
// parking result and always drops the user back to the main menu
func (e *DialogueEngine) handleParkingRoute(state *models.UserState, input string) *models.Response {
	state.MenuLevel = models.MenuMain
	e.states.Put(state)

	routePref := parseRoutePreference(input)
	return e.withMainMenu(state, e.parking.FindAvailableParking(state.Language, routePref))
}

func parseRoutePreference(input string) string {
	lowered := strings.ToLower(input)
	switch {
	case strings.Contains(lowered, "1") || strings.Contains(lowered, "tirunelveli"):
		return "tirunelveli"
	case strings.Contains(lowered, "2") || strings.Contains(lowered, "thoothukudi"):
		return "thoothukudi"
	case strings.Contains(lowered, "3") || strings.Contains(lowered, "nagercoil"):
		return "nagercoil"
	}
	return "any"
}

func (e *DialogueEngine) handleNearbySearch(state *models.UserState, input string) *models.Response {
	state.MenuLevel = models.MenuMain
	e.states.Put(state)
	return e.withMainMenu(state, e.info.FormatNearby(state.Language, input))
}

// invalidOption forces the user back to the main menu with guidance text
func (e *DialogueEngine) invalidOption(state *models.UserState) *models.Response {
	state.MenuLevel = models.MenuMain
	e.states.Put(state)
	return e.withMainMenu(state, e.catalog.GetText(state.Language, "invalid_menu_option", nil))
}

func (e *DialogueEngine) withMainMenu(state *models.UserState, text string) *models.Response {
	return models.NewResponse(text + "\n\n" + e.catalog.MenuText("main_menu", state.Language))
}
