package http

import (
	"github.com/rogerio-castellano/inventory-insights/internal/auth"
	rl "github.com/rogerio-castellano/inventory-insights/internal/http/rate_limiter"
)

var signer *auth.Signer
var visitors *rl.Visitors

func SetSigner(s *auth.Signer) {
	signer = s
}

// SetVisitors enables per-client rate limiting. A nil value disables it.
func SetVisitors(v *rl.Visitors) {
	visitors = v
}
