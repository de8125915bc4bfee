package change_session_context

// ChangeContextRequest HTTP request model
type ChangeContextRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Hour string `json:"hour"` // HH:MM
}
