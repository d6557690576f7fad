package whatsapp

import "errors"

var (
	// ErrSendFailed возвращается, когда Z-API не принял сообщение
	ErrSendFailed = errors.New("whatsapp client: failed to send message")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")
)
