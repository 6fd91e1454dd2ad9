package constvars

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodOptions = "OPTIONS"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEImagePNG        = "image/png"
)

const (
	StatusOK                    = 200
	StatusBadRequest            = 400
	StatusNotFound              = 404
	StatusConflict              = 409
	StatusRequestEntityTooLarge = 413
	StatusUnprocessableEntity   = 422
	StatusTooManyRequests       = 429
	StatusInternalServerError   = 500
	StatusGatewayTimeout        = 504
)

const (
	HeaderAccept                   = "Accept"
	HeaderContentType              = "Content-Type"
	HeaderOrigin                   = "Origin"
	HeaderAccessControlAllowOrigin = "Access-Control-Allow-Origin"
	HeaderXRequestID               = "X-Request-ID"
)
