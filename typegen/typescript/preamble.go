package typescript

import _ "embed"

// Preamble is the fixed block of declarations placed ahead of the generated
// classes: event subscriptions, hook interfaces and the MotionType enum.
// It is emitted verbatim.
//
//go:embed preamble.d.ts
var Preamble string
