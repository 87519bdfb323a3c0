package messages

// Message codes shared by every service. Negative codes are hard errors,
// positive codes are warnings that still carry a payload.
const (
	CodeGenericError      = -1
	CodeSessionExpired    = -1000
	CodeRoleNotAuthorized = -1001
	CodeAccessDenied      = -2000
	CodeOutOfService      = -2001
)

// Error codes surfaced to callers inside the envelope message.
const (
	ErrCodeGeneric           = "MSCM0"
	ErrCodeSessionExpired    = "MSCS01"
	ErrCodeAccessDenied      = "MSCS02"
	ErrCodeRoleNotAuthorized = "MSCS03"
	ErrCodeOutOfService      = "MSCS04"
)

// Fallback texts used when the message catalog has no template for a code.
const (
	DefaultTitle       = "Atención"
	DefaultErrorText   = "Lamentamos los inconvenientes, intentalo nuevamente."
	DefaultSuccessText = "Operación Exitosa."
)
