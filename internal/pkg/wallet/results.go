package wallet

// Outcome statuses carried in result envelopes. These are part of the
// API response contract, not internal state.
const (
	StatusCreated        = "created"
	StatusExists         = "exists"
	StatusInvalidRequest = "invalid_request"
	StatusError          = "error"
	StatusClassNotFound  = "class_not_found"
	StatusSuccess        = "success"
)

// ClassResult describes the outcome of ensuring a pass class exists.
// HasError is true for every outcome except a fresh create; callers that
// only need the class to be usable can ignore it, since an unusable class
// resurfaces on the object insert.
type ClassResult struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	IssuerID    string `json:"issuer_id,omitempty"`
	ClassSuffix string `json:"class_suffix,omitempty"`
	ClassID     string `json:"class_id,omitempty"`
	Error       any    `json:"error,omitempty"`
	Response    any    `json:"response,omitempty"`
	HasError    bool   `json:"has_error"`
}

// ObjectResult describes the outcome of ensuring a pass object exists.
type ObjectResult struct {
	ObjectID string `json:"object_id,omitempty"`
	Status   string `json:"status"`
	Message  string `json:"message"`
	Error    any    `json:"error,omitempty"`
	Response any    `json:"response,omitempty"`
	HasError bool   `json:"has_error"`
}

// SaveLinkResult carries a signed "Add to Google Wallet" link.
type SaveLinkResult struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	WalletLink string `json:"wallet_link"`
}
