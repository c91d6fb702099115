// errors.go - core error taxonomy

package votrax

import "errors"

// ErrBadROMSize is returned by New when the supplied ROM blob is not
// exactly 512 bytes. This is the only fatal error the core raises;
// everything else (missing file, out-of-range phone code, ROM entries
// with no matching phone) is a collaborator concern or silently masked
// into a well-defined fallback, per the core's total/infallible runtime
// contract.
var ErrBadROMSize = errors.New("votrax: rom must be exactly 512 bytes")
