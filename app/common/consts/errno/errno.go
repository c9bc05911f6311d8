package errno

const (
	StatusOK = 10000
)

const (
	SessionMissing = 40000 + iota
	Unauthorized
	AssistantBusy
)

const (
	InternalError = 50000 + iota
	InvalidParam
	BackendError
	NotFound
	ProductNotResolved
	CartEmpty
	CheckoutPending
	SuggestionsDisabled
)
