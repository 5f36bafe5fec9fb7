package usage

import "time"

// Plan is a billing plan name. Anything other than PRO is treated as FREE.
type Plan string

const (
	PlanFree Plan = "FREE"
	PlanPro  Plan = "PRO"
)

// Record is one user's stored usage counter
type Record struct {
	UserID           string    `json:"user_id"`
	AICallsThisMonth int       `json:"ai_calls_this_month"`
	LastResetAt      time.Time `json:"last_reset_at"`
}

// Info is the usage summary returned to callers gating AI interpretation
// requests.
type Info struct {
	AICallsThisMonth int       `json:"aiCallsThisMonth"`
	Limit            int       `json:"limit"`
	CanMakeCall      bool      `json:"canMakeCall"`
	ResetsAt         time.Time `json:"resetsAt"` // First day of next month
}
