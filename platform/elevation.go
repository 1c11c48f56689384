package platform

import "errors"

// ErrElevationDeclined indicates the user rejected the elevation prompt.
var ErrElevationDeclined = errors.New("administrator elevation declined")
