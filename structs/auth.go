package structs

// AdminIdentity is the resolved caller of an admin operation. It is never
// persisted; it is re-derived from the session on every request.
type AdminIdentity struct {
	Email string `json:"email"`
}
