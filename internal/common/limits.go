package common

// Field limits shared by server-side and client-side validation.
const (
	MaxListNameLength  = 256
	MaxItemValueLength = 2048
)
