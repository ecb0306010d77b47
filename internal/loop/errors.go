package loop

import "errors"

// ErrFrameLimit indicates the loop hit its frame budget with work still queued.
var ErrFrameLimit = errors.New("loop: frame limit reached")
