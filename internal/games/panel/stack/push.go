package stack

// PushController accumulates the board raise offset. Offset is measured in
// the same units as Config.CellHeight.
type PushController struct {
	Offset  int
	Blocked int  // cooldown frames left after a full-row raise
	Smooth  bool // fast manual raise in progress
}

// Step advances the controller by one frame and reports whether a full row
// has been raised. While frozen nothing moves: no increment, no shift and
// no cooldown countdown. Holding raise never shortens the cooldown.
func (p *PushController) Step(raise, frozen bool, cfg Config, level int) bool {
	if frozen {
		p.Smooth = false
		return false
	}
	if p.Blocked > 0 {
		p.Blocked--
		return false
	}
	if raise {
		p.Smooth = true
	}

	if p.Smooth {
		p.Offset += cfg.SmoothRaise
	} else {
		p.Offset += cfg.Raise[level]
	}
	if p.Offset < cfg.CellHeight {
		return false
	}

	p.Offset = 0
	p.Smooth = false
	p.Blocked = cfg.RaiseBlockedTime
	return true
}
