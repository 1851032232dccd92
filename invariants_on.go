//go:build invariants

package skipnav

// invariantsEnabled makes every mutation validate the structure and panic on
// the first violation.
const invariantsEnabled = true
