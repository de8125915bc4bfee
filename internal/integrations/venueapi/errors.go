package venueapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, сеть)
	ErrInternal = errors.New("venueapi client: internal error")

	// ErrInvalidResponse возвращается при неожиданном статусе или ответе, который не является JSON
	ErrInvalidResponse = errors.New("venueapi client: invalid response")
)
