package valueobject

import "regexp"

// ---------------------------------------------------------------------------
// KYC identifier format checks
//
// These are pure format predicates: five uppercase letters, four digits and
// one uppercase letter for PAN; exactly twelve digits for Aadhaar. No
// checksum or registry verification is performed.
// ---------------------------------------------------------------------------

var (
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadhaarPattern = regexp.MustCompile(`^[0-9]{12}$`)
)

// IsValidPAN reports whether s matches the PAN card format.
func IsValidPAN(s string) bool {
	return panPattern.MatchString(s)
}

// IsValidAadhaar reports whether s matches the Aadhaar number format.
func IsValidAadhaar(s string) bool {
	return aadhaarPattern.MatchString(s)
}
