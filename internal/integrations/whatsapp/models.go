package whatsapp

// sendTextRequest тело запроса Z-API /send-text
type sendTextRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
