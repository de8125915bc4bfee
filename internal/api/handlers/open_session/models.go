package open_session

// OpenSessionRequest HTTP request model
type OpenSessionRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Hour string `json:"hour"` // HH:MM
}
