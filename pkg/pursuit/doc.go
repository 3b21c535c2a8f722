// Package pursuit implements pure pursuit path tracking.
//
// A path is an ordered list of waypoints plus a lookahead radius. It is
// assembled with a Builder, either over a fixed-capacity flat buffer
// (NewFixedBuilder) or a growable list (NewDynamicBuilder); both produce
// the same Pursuer behaviour. On every control tick the caller passes the
// robot's position to Pursuer.Step and steers toward the returned point.
//
// Configuration problems are reported by Build and all wrap
// ErrConfiguration. Step itself never fails: when the lookahead circle
// does not reach the current segment it falls back to the nearer endpoint.
package pursuit
