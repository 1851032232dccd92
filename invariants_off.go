//go:build !invariants

package skipnav

const invariantsEnabled = false
