package state

// UserState is the current dialog step of a chat
type UserState string

const (
	StateNone UserState = "" // no active dialog

	// Login dialog
	StateLoginEmail    UserState = "login_email"
	StateLoginPassword UserState = "login_password"

	// Registration dialog
	StateRegisterName     UserState = "register_name"
	StateRegisterEmail    UserState = "register_email"
	StateRegisterPassword UserState = "register_password"

	// Booking form (student)
	StateBookTopics     UserState = "book_topics"
	StateBookAttachment UserState = "book_attachment"

	// Slot browse filters (student)
	StateFilterTopic UserState = "filter_topic"

	// Add-slot form (teacher)
	StateAddSlotTopic UserState = "add_slot_topic"
	StateAddSlotLink  UserState = "add_slot_link"
)

// UserData keeps the transient values a dialog collected so far
type UserData struct {
	State UserState
	Data  map[string]interface{}
}
