package locales

// menuTexts holds every user-facing template keyed by language then key.
// Tamil is partial; the catalog falls back to English for absent keys.
var menuTexts = map[string]map[string]string{
	"en": {
		"welcome_tiruchendur":          "Vanakkam {user_name}! I'm your Tiruchendur Assistant. 😊",
		"select_language_prompt":       "Please select your preferred language.",
		"invalid_language_selection":   "Invalid selection. Please click one of the buttons.",
		"language_selected":            "You have selected {language_name}.",
		"main_menu_prompt":             "Tiruchendur Main Menu - Type the number for your choice:",
		"option_parking_availability":  "1. 🅿️ Live Parking Availability",
		"option_temple_info":           "2. Murugan Temple Info",
		"option_help_centres":          "3. 'May I Help You?' Centres",
		"option_first_aid":             "4. First Aid Stations",
		"option_temp_bus_stands":       "5. Temporary Bus Stands",
		"option_toilets_temple":        "6. Toilets Near Temple",
		"option_annadhanam":            "7. Annadhanam Details",
		"option_emergency_contacts":    "8. Emergency Helpline Numbers",
		"option_nearby_facilities":     "9. Search Nearby (ATM, Hotel etc.)",
		"option_change_language":       "10. Change Language",
		"option_feedback":              "11. Feedback",
		"option_end_conversation_text": "\nType 'X' to End Conversation.",
		"feedback_response":            "Thank you for helping us improve! 🙏\nPlease share your valuable feedback using the link below:\n\n<a href=\"{feedback_link}\" target=\"_blank\">Open Feedback Form</a>",
		"invalid_menu_option":          "Invalid option. Please type a number from the menu or 'X' to end.",
		"temple_info_menu_prompt":      "Murugan Temple Information - Type the number:",
		"temple_timings_menu_item":     "1. Temple Open/Close & Pooja Times",
		"temple_dress_code_menu_item":  "2. Dress Code",
		"temple_seva_tickets_menu_item": "3. Seva & Ticket Details",
		"option_go_back_text":          "0. Go Back to Main Menu",
		"freestyle_query_prompt":       "Okay, what would you like to search for nearby (e.g., 'ATM', 'hotels', 'restaurants')?",
		"emergency_contacts_info":      "Tiruchendur Emergency Contacts:\nPolice: 100\nFire: 101\nAmbulance: 108\nTemple Office: 04639-242221",
		"local_info_title_format":      "--- {category_name} in Tiruchendur ---",
		"local_info_item_format":       "\n➡️ {ItemName}\n🗺️ {ViewMapLink}\n📝 Notes: {Notes}",
		"local_info_item_format_bus":   "\n➡️ {ItemName}\n🛣️ Route: {RouteInfo}\n🗺️ {ViewMapLink}\n🕒 Active: {ActiveDuring}\n📝 Notes: {Notes}",
		"local_info_item_format_annadhanam": "\n🍚 {ItemName}\n🗺️ {ViewMapLink}\n🕒 Timings: {Timings}\n📞 Contact: {ContactInfo}\n📝 Notes: {Notes}",
		"no_local_info_found":          "No information currently available for {category_name} in Tiruchendur.",
		"fetching_data_error":          "Sorry, I couldn't fetch the latest information.",
		"parking_route_prompt":         "Which route are you primarily arriving from for parking?\n(Type the number or name)\n1. Tirunelveli Route\n2. Thoothukudi Route\n3. Nagercoil Route\n4. Other/Already in Tiruchendur",
		"parking_for_route_title":      "--- Parking Options for {RouteName} Route ---",
		"parking_info_title":           "--- Tiruchendur Parking Availability ---",
		"no_parking_available":         "Sorry, no suitable parking spots are currently available or all are nearly full.",
		"parking_lot_details_format":   "\n🅿️ {ParkingName}\n🗺️ {ViewMapLink}\n📍 Approx. {Distance} km away\n📦 Availability: {Availability}/{TotalCapacity} slots ({PercentageFull}% full)",
		"overall_parking_map_link_text": "\n\n<a href=\"{overall_map_url}\" data-embed=\"true\">🗺️ View All Parking Lots for the {RouteName} Route</a>",
		"temple_timings_details":       "Tiruchendur Murugan Temple General Timings:\nTimings can vary on festival days. It's best to check locally.",
		"temple_dress_code_details":    "Dress Code: Traditional Indian attire is recommended. Men: Dhoti/Pants. Women: Saree/Salwar Kameez.",
		"goodbye_message":              "Nandri! Vanakkam!",
		"nearest_place_intro":          "📍 Here are results for {place_type_display_name} in the Tiruchendur area:",
		"place_details_maps":           "\n{name}\nAddress: {address}\n🗺️ {maps_url}",
	},
	"ta": {
		"welcome_tiruchendur":         "வணக்கம் {user_name}! நான் உங்கள் திருச்செந்தூர் உதவியாளர். 😊",
		"select_language_prompt":      "உங்கள் மொழியைத் தேர்ந்தெடுக்கவும்.",
		"language_selected":           "நீங்கள் {language_name} தேர்ந்தெடுத்துள்ளீர்கள்.",
		"main_menu_prompt":            "திருச்செந்தூர் முதன்மை பட்டியல் - எண்ணை உள்ளிடவும்:",
		"option_parking_availability": "1. 🅿️ வாகன நிறுத்தம் (நேரலை)",
		"option_temple_info":          "2. முருகன் கோவில் தகவல்",
		"option_help_centres":         "3. உதவி மையங்கள்",
		"option_first_aid":            "4. முதலுதவி நிலையங்கள்",
		"option_temp_bus_stands":      "5. தற்காலிக பேருந்து நிலையங்கள்",
		"option_toilets_temple":       "6. கோவில் அருகே கழிப்பறைகள்",
		"option_annadhanam":           "7. அன்னதானம் விவரங்கள்",
		"option_emergency_contacts":   "8. அவசர உதவி எண்கள்",
		"option_nearby_facilities":    "9. அருகில் தேடுங்கள் (ATM, ஹோட்டல்)",
		"option_change_language":      "10. மொழியை மாற்றவும்",
		"option_feedback":             "11. கருத்து",
		"option_end_conversation_text": "\nமுடிக்க 'X' என்று உள்ளிடவும்.",
		"invalid_menu_option":         "தவறான தேர்வு. பட்டியலில் உள்ள எண்ணை அல்லது 'X' உள்ளிடவும்.",
		"no_parking_available":        "மன்னிக்கவும், தற்போது பொருத்தமான நிறுத்துமிடங்கள் இல்லை அல்லது அனைத்தும் நிரம்பியுள்ளன.",
		"goodbye_message":             "நன்றி! வணக்கம்!",
	},
}

// menuKeys lists, per composite menu, the ordered keys joined into one block
var menuKeys = map[string][]string{
	"main_menu": {
		"main_menu_prompt",
		"option_parking_availability",
		"option_temple_info",
		"option_help_centres",
		"option_first_aid",
		"option_temp_bus_stands",
		"option_toilets_temple",
		"option_annadhanam",
		"option_emergency_contacts",
		"option_nearby_facilities",
		"option_change_language",
		"option_feedback",
		"option_end_conversation_text",
	},
	"temple_info_menu": {
		"temple_info_menu_prompt",
		"temple_timings_menu_item",
		"temple_dress_code_menu_item",
		"temple_seva_tickets_menu_item",
		"option_go_back_text",
	},
}
