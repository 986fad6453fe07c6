package bot

// AccessDeniedMessage is the fixed denial for admin-only actions.
const AccessDeniedMessage = "❌ You are not allowed to perform this action"

// AdminGate answers the isAdmin capability for privileged bot actions. The
// shop runs with a single statically configured admin chat id, but every
// privileged handler goes through this check rather than comparing ids inline.
type AdminGate struct {
	adminChatID int64
}

// NewAdminGate creates a gate for the configured admin chat id
func NewAdminGate(adminChatID int64) *AdminGate {
	return &AdminGate{adminChatID: adminChatID}
}

// IsAdmin reports whether the user may perform privileged actions. A zero
// configured id admits nobody.
func (g *AdminGate) IsAdmin(userID int64) bool {
	return g.adminChatID != 0 && userID == g.adminChatID
}
